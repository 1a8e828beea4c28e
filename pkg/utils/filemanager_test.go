package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOutputFileName(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 30, 22, 0, time.UTC)

	tests := []struct {
		name   string
		format string
		ext    string
		want   string
	}{
		{name: "timestamp", format: "records_{timestamp}", ext: ".xlsx", want: "records_20240115_143022.xlsx"},
		{name: "date and time", format: "{date}-{time}", ext: ".yaml", want: "20240115-143022.yaml"},
		{name: "extension kept", format: "book.XLSX", ext: ".xlsx", want: "book.XLSX"},
		{name: "unknown placeholder kept", format: "{dept}_{date}", ext: ".xlsx", want: "{dept}_20240115.xlsx"},
		{name: "path stripped", format: "../../etc/{date}", ext: ".yaml", want: "20240115.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateOutputFileName(tt.format, tt.ext, now))
		})
	}
}

func TestGenerateOutputFileNameUUID(t *testing.T) {
	now := time.Now()
	pattern := regexp.MustCompile(`^records_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.xlsx$`)

	first := GenerateOutputFileName("records_{uuid}", ".xlsx", now)
	second := GenerateOutputFileName("records_{uuid}", ".xlsx", now)

	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
}

func TestEnsureDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDirectory(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	require.NoError(t, EnsureDirectory(dir))

	assert.Error(t, EnsureDirectory(""))
}
