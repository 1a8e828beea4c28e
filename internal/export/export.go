// =============================================================================
// Employee Records Book - Export Module
// =============================================================================
//
// This module writes a snapshot of the records book when the user exits.
// Exports are write-only reports; nothing is ever loaded back on startup.
//
// FORMATS:
//   xlsx : One sheet per department ("Name" column), plus an "All" sheet
//          with "Department" and "Name" columns.
//   yaml : A single document with generated_at and the department list.
//
// =============================================================================

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ginjaninja78/employee-records-book/internal/directory"
	"github.com/ginjaninja78/employee-records-book/pkg/utils"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// AllSheetName is the workbook sheet listing every employee.
const AllSheetName = "All"

// maxSheetNameLength is the Excel limit on sheet names.
const maxSheetNameLength = 31

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls where and how a snapshot is written.
type Options struct {
	// Dir is the output directory. It is created if missing.
	Dir string

	// Format is "xlsx" or "yaml".
	Format string

	// FileName is the file name format, see utils.GenerateOutputFileName.
	FileName string

	// Now returns the snapshot time. Defaults to time.Now.
	Now func() time.Time
}

// Document is the YAML export layout.
type Document struct {
	GeneratedAt time.Time              `yaml:"generated_at"`
	Departments []directory.Department `yaml:"departments"`
}

// =============================================================================
// MAIN EXPORT FUNCTION
// =============================================================================

// Write exports snapshot according to opts and returns the written file path.
func Write(snapshot []directory.Department, opts Options) (string, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	generatedAt := now()

	var ext string
	var write func(path string, snapshot []directory.Department, generatedAt time.Time) error
	switch strings.ToLower(opts.Format) {
	case "xlsx", "":
		ext, write = ".xlsx", writeWorkbook
	case "yaml":
		ext, write = ".yaml", writeYAML
	default:
		return "", fmt.Errorf("unsupported export format %q", opts.Format)
	}

	if err := utils.EnsureDirectory(opts.Dir); err != nil {
		return "", err
	}

	fileName := utils.GenerateOutputFileName(opts.FileName, ext, generatedAt)
	path := filepath.Join(opts.Dir, fileName)

	if err := write(path, snapshot, generatedAt); err != nil {
		return "", err
	}
	return path, nil
}

// =============================================================================
// XLSX EXPORT
// =============================================================================

// writeWorkbook writes one sheet per department plus the "All" sheet.
func writeWorkbook(path string, snapshot []directory.Department, _ time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes "All".
	if err := f.SetSheetName(f.GetSheetName(0), AllSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(AllSheetName, "A1", &[]interface{}{"Department", "Name"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	used := map[string]bool{strings.ToLower(AllSheetName): true}
	row := 2
	for _, dept := range snapshot {
		sheet := uniqueSheetName(dept.Name, used)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet for %s: %w", dept.Name, err)
		}
		if err := f.SetCellValue(sheet, "A1", "Name"); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}

		for i, name := range dept.Employees {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, name); err != nil {
				return fmt.Errorf("failed to write %s: %w", cell, err)
			}

			allCell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(AllSheetName, allCell, &[]interface{}{dept.Name, name}); err != nil {
				return fmt.Errorf("failed to write %s: %w", allCell, err)
			}
			row++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// uniqueSheetName turns a department name into a valid, unused sheet name.
func uniqueSheetName(name string, used map[string]bool) string {
	base := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)
	// Excel rejects a leading or trailing single quote, and truncation can
	// expose a new trailing one.
	base = strings.Trim(base, "'")
	base = strings.TrimRight(truncate(base, maxSheetNameLength), "'")
	if base == "" {
		base = "Department"
	}

	candidate := base
	for i := 2; used[strings.ToLower(candidate)]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		candidate = truncate(base, maxSheetNameLength-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// =============================================================================
// YAML EXPORT
// =============================================================================

func writeYAML(path string, snapshot []directory.Department, generatedAt time.Time) error {
	data, err := yaml.Marshal(Document{
		GeneratedAt: generatedAt,
		Departments: snapshot,
	})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
