// =============================================================================
// Employee Records Book - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file.
//
// CONFIGURATION FILE (records.yaml):
//   departments:      [Engineering, Sales, Finance]
//   sort_names:       true
//   clear_screen:     true
//   log_file:         ""
//   log_level:        info
//   export_dir:       ""
//   export_format:    xlsx
//   export_file_name: "records_{timestamp}_{uuid}"
//
// Every setting is optional. Unset values fall back to the defaults below.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultDepartments is the department set used when the configuration file
// does not name one.
var DefaultDepartments = []string{"Engineering", "Sales", "Finance"}

const (
	// DefaultLogLevel is used when log_level is unset.
	DefaultLogLevel = "info"

	// DefaultExportFormat is used when export_format is unset.
	DefaultExportFormat = "xlsx"

	// DefaultExportFileName is used when export_file_name is unset.
	DefaultExportFileName = "records_{timestamp}_{uuid}"
)

// ExportFormats lists the supported export formats.
var ExportFormats = []string{"xlsx", "yaml"}

// LogLevels lists the accepted log_level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the application configuration.
type MainConfig struct {
	// =========================================================================
	// RECORDS BOOK SETTINGS
	// =========================================================================

	// Departments is the fixed department set seeded at startup.
	// Default: Engineering, Sales, Finance
	Departments []string `yaml:"departments"`

	// SortNames renders employee listings alphabetically.
	// Stored lists always keep insertion order.
	// Default: true
	SortNames *bool `yaml:"sort_names"`

	// ClearScreen clears the terminal before each menu is drawn.
	// Default: true
	ClearScreen *bool `yaml:"clear_screen"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogFile is the path of the diagnostic log.
	// Empty means logs are discarded unless --verbose sends them to stderr.
	LogFile string `yaml:"log_file"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// EXPORT SETTINGS
	// =========================================================================

	// ExportDir is where a snapshot is written when the user exits.
	// Empty disables the export.
	ExportDir string `yaml:"export_dir"`

	// ExportFormat selects the snapshot format: "xlsx" or "yaml".
	// Default: "xlsx"
	ExportFormat string `yaml:"export_format"`

	// ExportFileName is the snapshot file name without extension.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {date}      - Current date (YYYYMMDD)
	// Default: "records_{timestamp}_{uuid}"
	ExportFileName string `yaml:"export_file_name"`
}

// ShouldSortNames reports whether listings are rendered alphabetically.
func (c *MainConfig) ShouldSortNames() bool {
	return c.SortNames == nil || *c.SortNames
}

// ShouldClearScreen reports whether menus clear the terminal.
func (c *MainConfig) ShouldClearScreen() bool {
	return c.ClearScreen == nil || *c.ClearScreen
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *MainConfig {
	var config MainConfig
	applyMainConfigDefaults(&config)
	return &config
}

// LoadMainConfig loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - required:   When false, a missing file yields the defaults instead of
//                 an error.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file cannot be read, parsed or validated.
func LoadMainConfig(configPath string, required bool) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseMainConfig(data)
}

// ParseMainConfig parses YAML configuration data, applies defaults and
// validates the result.
func ParseMainConfig(data []byte) (*MainConfig, error) {
	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(config *MainConfig) {
	if len(config.Departments) == 0 {
		config.Departments = append([]string(nil), DefaultDepartments...)
	}
	for i, name := range config.Departments {
		config.Departments[i] = strings.TrimSpace(name)
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.ExportFormat == "" {
		config.ExportFormat = DefaultExportFormat
	}
	if config.ExportFileName == "" {
		config.ExportFileName = DefaultExportFileName
	}

	config.LogLevel = strings.ToLower(config.LogLevel)
	config.ExportFormat = strings.ToLower(config.ExportFormat)
}

// validateMainConfig validates the configuration.
func validateMainConfig(config *MainConfig) error {
	seen := make(map[string]bool, len(config.Departments))
	for i, name := range config.Departments {
		if name == "" {
			return fmt.Errorf("department %d has an empty name", i+1)
		}
		if seen[name] {
			return fmt.Errorf("department %q is listed more than once", name)
		}
		seen[name] = true
	}

	if !contains(LogLevels, config.LogLevel) {
		return fmt.Errorf("unknown log_level %q (expected one of %s)",
			config.LogLevel, strings.Join(LogLevels, ", "))
	}

	if !contains(ExportFormats, config.ExportFormat) {
		return fmt.Errorf("unknown export_format %q (expected one of %s)",
			config.ExportFormat, strings.Join(ExportFormats, ", "))
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
