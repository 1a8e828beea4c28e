// =============================================================================
// Employee Records Book - File Manager Utilities
// =============================================================================
//
// This package provides file naming and directory helpers used when writing
// records book exports.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectory creates dir, and any missing parents, if it does not exist.
func EnsureDirectory(dir string) error {
	if dir == "" {
		return fmt.Errorf("directory path is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName generates a file name from a format string.
//
// PARAMETERS:
//   - format: The format string for the file name.
//             Placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Current date (YYYYMMDD)
//               {time}      - Current time (HHMMSS)
//   - ext:    The extension to ensure, e.g. ".xlsx".
//   - now:    The time used for the date placeholders.
//
// EXAMPLE:
//   format: "records_{timestamp}_{uuid}"
//   ext:    ".xlsx"
//   output: "records_20240115_143022_a1b2c3d4-e5f6-7890-abcd-ef1234567890.xlsx"
func GenerateOutputFileName(format, ext string, now time.Time) string {
	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	// Keep the name inside the target directory.
	result = filepath.Base(result)

	if !strings.HasSuffix(strings.ToLower(result), strings.ToLower(ext)) {
		result += ext
	}

	return result
}
