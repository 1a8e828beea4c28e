// =============================================================================
// Employee Records Book - Directory
// =============================================================================
//
// This package holds the in-memory records book: a fixed set of departments,
// each owning an ordered list of employee names.
//
// RULES:
//   - The department set is established by Seed and never changes afterwards.
//   - Adding to an unknown department is a silent no-op.
//   - Employee lists keep insertion order. Alphabetical order is produced on
//     demand with Sorted.
//
// =============================================================================

package directory

import (
	"sort"
)

// =============================================================================
// TYPES
// =============================================================================

// Department is an ordered copy of a single department and its employees.
type Department struct {
	// Name is the department name, e.g. "Engineering".
	Name string `yaml:"name"`

	// Employees holds the employee names in insertion order.
	Employees []string `yaml:"employees"`
}

// Directory maps department names to their employee lists.
//
// The zero value is an empty directory with no departments; call Seed before
// adding employees.
type Directory struct {
	// order is the seed order of the departments.
	// It drives ListAll, Departments and Snapshot.
	order []string

	// employees maps a department name to its employees.
	employees map[string][]string
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a directory seeded with the given departments.
func New(departments []string) *Directory {
	d := &Directory{}
	d.Seed(departments)
	return d
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Seed resets the directory to contain exactly the given departments, each
// with an empty employee list. Any previous contents are discarded.
// Repeated names collapse into a single department at their first position.
func (d *Directory) Seed(departments []string) {
	d.order = make([]string, 0, len(departments))
	d.employees = make(map[string][]string, len(departments))

	for _, name := range departments {
		if _, exists := d.employees[name]; exists {
			continue
		}
		d.order = append(d.order, name)
		d.employees[name] = []string{}
	}
}

// AddEmployee appends name to the department's list.
//
// If the department is unknown nothing happens. The returned bool reports
// whether the name was stored; callers are free to ignore it.
func (d *Directory) AddEmployee(department, name string) bool {
	list, ok := d.employees[department]
	if !ok {
		return false
	}
	d.employees[department] = append(list, name)
	return true
}

// ListAll returns every employee, department by department in seed order,
// with insertion order preserved within each department.
func (d *Directory) ListAll() []string {
	all := []string{}
	for _, name := range d.order {
		all = append(all, d.employees[name]...)
	}
	return all
}

// ListByDepartment returns a copy of the department's employees in insertion
// order, or an empty slice if the department is unknown.
func (d *Directory) ListByDepartment(department string) []string {
	list := d.employees[department]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Departments returns the seeded department names in seed order.
func (d *Directory) Departments() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the total number of employee entries.
func (d *Directory) Len() int {
	n := 0
	for _, list := range d.employees {
		n += len(list)
	}
	return n
}

// Snapshot returns an ordered deep copy of the directory.
func (d *Directory) Snapshot() []Department {
	snapshot := make([]Department, 0, len(d.order))
	for _, name := range d.order {
		snapshot = append(snapshot, Department{
			Name:      name,
			Employees: d.ListByDepartment(name),
		})
	}
	return snapshot
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// Sorted returns an alphabetically sorted copy of names.
// The comparison is byte-wise, so "Zoe" sorts before "amir".
func Sorted(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}
