// =============================================================================
// Employee Records Book - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Employee Records Book CLI application.
// It delegates command execution to the cmd package.
//
// USAGE:
//   records                 - Start the interactive menu
//   records version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/                  : CLI command definitions (Cobra)
//   - internal/directory    : In-memory department -> employees records
//   - internal/menu         : Interactive text menu
//   - internal/config       : YAML configuration
//   - internal/logging      : Diagnostic logging (zerolog)
//   - internal/export       : Snapshot export on exit (xlsx, yaml)
//   - pkg/utils             : File naming helpers
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/employee-records-book/cmd"
)

func main() {
	cmd.Execute()
}
