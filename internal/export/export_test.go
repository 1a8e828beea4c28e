package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ginjaninja78/employee-records-book/internal/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

var fixedNow = time.Date(2024, 1, 15, 14, 30, 22, 0, time.UTC)

func sampleSnapshot() []directory.Department {
	d := directory.New([]string{"Engineering", "Sales", "Finance"})
	d.AddEmployee("Engineering", "Sally")
	d.AddEmployee("Sales", "Priya")
	d.AddEmployee("Sales", "Amir")
	return d.Snapshot()
}

func TestWriteWorkbook(t *testing.T) {
	dir := t.TempDir()

	path, err := Write(sampleSnapshot(), Options{
		Dir:      dir,
		Format:   "xlsx",
		FileName: "records_{timestamp}",
		Now:      func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "records_20240115_143022.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"All", "Engineering", "Sales", "Finance"}, f.GetSheetList())

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Name"}, {"Priya"}, {"Amir"}}, rows)

	rows, err = f.GetRows("Finance")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Name"}}, rows)

	rows, err = f.GetRows(AllSheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Department", "Name"},
		{"Engineering", "Sally"},
		{"Sales", "Priya"},
		{"Sales", "Amir"},
	}, rows)
}

func TestWriteYAML(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := Write(sampleSnapshot(), Options{
		Dir:      dir,
		Format:   "yaml",
		FileName: "book_{date}",
		Now:      func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "book_20240115.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.True(t, fixedNow.Equal(doc.GeneratedAt))
	assert.Equal(t, sampleSnapshot(), doc.Departments)
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()

	_, err := Write(sampleSnapshot(), Options{Dir: dir, Format: "csv", FileName: "x"})
	require.EqualError(t, err, `unsupported export format "csv"`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUniqueSheetName(t *testing.T) {
	used := map[string]bool{"all": true}

	assert.Equal(t, "R_D", uniqueSheetName("R/D", used))
	assert.Equal(t, "all (2)", uniqueSheetName("all", used))
	assert.Equal(t, "Department", uniqueSheetName("''", used))
	assert.Equal(t, "Department (2)", uniqueSheetName("", used))
	assert.Equal(t, "__", uniqueSheetName("[]", used))

	long := strings.Repeat("x", 40)
	first := uniqueSheetName(long, used)
	second := uniqueSheetName(long, used)
	assert.Len(t, first, maxSheetNameLength)
	assert.Len(t, second, maxSheetNameLength)
	assert.NotEqual(t, first, second)

	quoted := strings.Repeat("A", 30) + "'B"
	assert.Equal(t, strings.Repeat("A", 30), uniqueSheetName(quoted, used))
	assert.Equal(t, strings.Repeat("A", 27)+" (2)", uniqueSheetName(quoted, used))
}

func TestWriteWorkbookQuoteAtSheetNameLimit(t *testing.T) {
	name := strings.Repeat("A", 30) + "'B"
	snapshot := []directory.Department{{Name: name, Employees: []string{"Sally"}}}

	path, err := Write(snapshot, Options{Dir: t.TempDir(), Format: "xlsx", FileName: "records"})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"All", strings.Repeat("A", 30)}, f.GetSheetList())

	rows, err := f.GetRows(AllSheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Department", "Name"}, {name, "Sally"}}, rows)
}

func TestWriteWorkbookWithCollidingNames(t *testing.T) {
	d := directory.New([]string{"All", "Q1/Q2"})
	d.AddEmployee("All", "Sally")
	d.AddEmployee("Q1/Q2", "Amir")

	path, err := Write(d.Snapshot(), Options{Dir: t.TempDir(), FileName: "records"})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"All", "All (2)", "Q1_Q2"}, f.GetSheetList())
}
