// =============================================================================
// Employee Records Book - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Running the root
// command without a subcommand starts the interactive records book.
//
// COBRA CLI STRUCTURE:
//   rootCmd (records)
//   └── versionCmd (records version)
//
// STARTUP:
//   1. Load the configuration file (defaults if the default file is missing)
//   2. Set up logging
//   3. Seed the directory with the configured departments
//   4. Run the menu until the user exits
//   5. Write the export snapshot, if one is configured
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/employee-records-book/internal/config"
	"github.com/ginjaninja78/employee-records-book/internal/directory"
	"github.com/ginjaninja78/employee-records-book/internal/export"
	"github.com/ginjaninja78/employee-records-book/internal/logging"
	"github.com/ginjaninja78/employee-records-book/internal/menu"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose enables debug logging to stderr when no log file is configured.
var verbose bool

// exportDir overrides export_dir from the configuration file.
var exportDir string

// noClear disables the clear-screen sequence.
var noClear bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "records",
	Short: "Employee Records Book - keep employee names by department",
	Long: `Employee Records Book is an interactive text menu for recording employee
names by department and listing them again, per department or all at once.

Records live in memory only and are gone when the program exits. Use --export
to write a snapshot (xlsx or yaml) when you choose Exit.

Example Usage:
  records                          # Start the interactive menu
  records --config ./records.yaml  # Use a custom department list
  records --export ./exports       # Write a workbook on exit`,

	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecords(cmd)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"records.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	rootCmd.Flags().StringVar(
		&exportDir,
		"export",
		"",
		"Write a snapshot of the records book to this directory on exit",
	)

	rootCmd.Flags().BoolVar(
		&noClear,
		"no-clear",
		false,
		"Do not clear the terminal between screens",
	)
}

// =============================================================================
// MAIN FUNCTION
// =============================================================================

// runRecords loads the configuration, runs the menu and writes the export.
func runRecords(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadMainConfig(cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if exportDir != "" {
		cfg.ExportDir = exportDir
	}

	logger, closeLog, err := logging.New(logging.Options{
		File:    cfg.LogFile,
		Level:   cfg.LogLevel,
		Verbose: verbose,
		Stderr:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer reportCloseError(cmd.ErrOrStderr(), "log file", closeLog)

	logger.Info().
		Str("config", cfgFile).
		Strs("departments", cfg.Departments).
		Msg("records book started")

	dir := directory.New(cfg.Departments)

	m := menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), dir, menu.Options{
		SortNames:   cfg.ShouldSortNames(),
		ClearScreen: cfg.ShouldClearScreen() && !noClear,
		Logger:      logger,
	})
	if err := m.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("menu stopped")
		return err
	}

	if cfg.ExportDir == "" {
		return nil
	}

	path, err := export.Write(dir.Snapshot(), export.Options{
		Dir:      cfg.ExportDir,
		Format:   cfg.ExportFormat,
		FileName: cfg.ExportFileName,
	})
	if err != nil {
		return fmt.Errorf("failed to export records: %w", err)
	}

	logger.Info().Str("path", path).Int("employees", dir.Len()).Msg("export written")
	fmt.Fprintf(cmd.OutOrStdout(), "Records exported to %s\n", path)
	return nil
}

// reportCloseError runs closeFn and prints its error, if any, to w.
// It is used in defers where the command's own error takes precedence.
func reportCloseError(w io.Writer, what string, closeFn func() error) {
	if err := closeFn(); err != nil {
		fmt.Fprintf(w, "Error: failed to close %s: %v\n", what, err)
	}
}
