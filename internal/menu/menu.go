// =============================================================================
// Employee Records Book - Menu Loop
// =============================================================================
//
// This package drives the interactive text menu. It reads one line of input
// per step and translates numbered choices into directory calls.
//
// SCREENS:
//   Main menu      : Add Employee, Retrieve Data, Exit
//   Add submenu    : departments..., Back
//   Retrieve menu  : departments..., Show all, Back
//
// Every screen clears the terminal before drawing and shows the error left
// by the previous invalid choice, if any. Invalid choices never mutate the
// directory.
//
// =============================================================================

package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ginjaninja78/employee-records-book/internal/directory"
	"github.com/rs/zerolog"
)

// clearSequence moves the cursor home and clears the terminal.
const clearSequence = "\033[H\033[2J"

// Error messages shown after an invalid choice.
const (
	mainMenuError = "Invalid Choice. Try again"
	subMenuError  = "Invalid choice. Try again"
)

// ErrInputClosed is returned when standard input ends before the user exits.
var ErrInputClosed = errors.New("input closed")

// =============================================================================
// TYPES
// =============================================================================

// Options tunes how the menu renders.
type Options struct {
	// SortNames renders listings alphabetically.
	SortNames bool

	// ClearScreen emits the terminal clear sequence before each screen.
	ClearScreen bool

	// Logger receives diagnostic events. Use zerolog.Nop() to disable.
	Logger zerolog.Logger
}

// lister is the read-only view of the directory used by the retrieve menu.
type lister interface {
	Departments() []string
	ListAll() []string
	ListByDepartment(department string) []string
}

// Menu is the interactive records book front end.
type Menu struct {
	in     *bufio.Reader
	out    io.Writer
	dir    *directory.Directory
	opts   Options
	logger zerolog.Logger
}

// New creates a menu reading from in and drawing to out.
func New(in io.Reader, out io.Writer, dir *directory.Directory, opts Options) *Menu {
	return &Menu{
		in:     bufio.NewReader(in),
		out:    out,
		dir:    dir,
		opts:   opts,
		logger: opts.Logger,
	}
}

// =============================================================================
// MAIN MENU
// =============================================================================

// Run shows the main menu until the user chooses Exit.
//
// RETURNS:
//   - nil when the user exits.
//   - An error wrapping ErrInputClosed, or the read error, if input fails.
//   - An error wrapping ctx.Err() if the context is done between two reads.
func (m *Menu) Run(ctx context.Context) error {
	var errMsg string
	for {
		m.clearScreen(errMsg)
		m.println("**Employee Records Book**")
		m.println("\t1. Add Employee")
		m.println("\t2. Retrieve Data")
		m.println("\t3. Exit")

		choice, err := m.readLine(ctx)
		if err != nil {
			return fmt.Errorf("failed to read menu choice: %w", err)
		}

		errMsg = ""
		switch choice {
		case "1":
			if err := m.addEmployeeMenu(ctx, m.dir); err != nil {
				return err
			}
		case "2":
			if err := m.retrieveMenu(ctx, m.dir); err != nil {
				return err
			}
		case "3":
			m.logger.Debug().Msg("exit chosen")
			return nil
		default:
			m.logger.Debug().Str("screen", "main").Str("input", choice).Msg("invalid choice")
			errMsg = mainMenuError
		}
	}
}

// =============================================================================
// ADD EMPLOYEE SUBMENU
// =============================================================================

// addEmployeeMenu asks for a department and an employee name, then stores
// the employee. Back returns without changing anything.
func (m *Menu) addEmployeeMenu(ctx context.Context, dir *directory.Directory) error {
	departments := dir.Departments()
	goBack := len(departments) + 1

	var errMsg string
	for {
		m.clearScreen(errMsg)
		m.println("**Add Employees**\nChoose department:")
		for i, dep := range departments {
			m.printf("\t%d %s\n", i+1, dep)
		}
		m.printf("\t%d Back\n", goBack)

		line, err := m.readLine(ctx)
		if err != nil {
			return fmt.Errorf("failed to read department choice: %w", err)
		}

		choice, ok := parseChoice(line, goBack)
		if !ok {
			m.logger.Debug().Str("screen", "add").Str("input", line).Msg("invalid choice")
			errMsg = subMenuError
			continue
		}
		if choice == goBack {
			return nil
		}

		m.println("Name of the employee:")
		name, err := m.readLine(ctx)
		if err != nil {
			return fmt.Errorf("failed to read employee name: %w", err)
		}

		department := departments[choice-1]
		m.printf("Adding %s to %s\n", name, department)
		if dir.AddEmployee(department, name) {
			m.logger.Info().Str("department", department).Str("employee", name).Msg("employee added")
		} else {
			m.logger.Warn().Str("department", department).Msg("unknown department ignored")
		}

		return m.pressEnterToContinue(ctx)
	}
}

// =============================================================================
// RETRIEVE SUBMENU
// =============================================================================

// retrieveMenu prints a department's employees, or everybody, until the
// user goes back.
func (m *Menu) retrieveMenu(ctx context.Context, dir lister) error {
	departments := dir.Departments()
	showAll := len(departments) + 1
	goBack := len(departments) + 2

	var errMsg string
	for {
		m.clearScreen(errMsg)
		m.println("**Retrieve Employees**\nChoose department:")
		for i, dep := range departments {
			m.printf("\t%d %s\n", i+1, dep)
		}
		m.printf("\t%d Show all\n", showAll)
		m.printf("\t%d Back\n", goBack)

		line, err := m.readLine(ctx)
		if err != nil {
			return fmt.Errorf("failed to read department choice: %w", err)
		}

		choice, ok := parseChoice(line, goBack)
		if !ok {
			m.logger.Debug().Str("screen", "retrieve").Str("input", line).Msg("invalid choice")
			errMsg = subMenuError
			continue
		}
		errMsg = ""

		switch choice {
		case goBack:
			return nil
		case showAll:
			m.println(m.formatNames(dir.ListAll()))
		default:
			m.println(m.formatNames(dir.ListByDepartment(departments[choice-1])))
		}

		if err := m.pressEnterToContinue(ctx); err != nil {
			return err
		}
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// parseChoice parses a 1-based menu choice no greater than last.
func parseChoice(line string, last int) (int, bool) {
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > last {
		return 0, false
	}
	return n, true
}

// formatNames renders names as "[a, b]", sorted when configured.
func (m *Menu) formatNames(names []string) string {
	if m.opts.SortNames {
		names = directory.Sorted(names)
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// readLine reads one line of input with surrounding whitespace trimmed.
// A final line without a newline is still returned.
func (m *Menu) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimSpace(line), nil
			}
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) pressEnterToContinue(ctx context.Context) error {
	m.println("Press enter to continue")
	if _, err := m.readLine(ctx); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (m *Menu) clearScreen(message string) {
	if m.opts.ClearScreen {
		fmt.Fprint(m.out, clearSequence)
	}
	if message != "" {
		m.println(message)
	}
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}
