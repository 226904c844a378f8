// Package throwback is a small test harness: test files register their test
// cases, the runner discovers the files on disk, executes every test method
// and reports each recorded assertion.
package throwback

// Test is a single named test procedure declared by a test case. Only
// procedures whose name starts with "test" (any casing of the prefix) are
// executed; others in the list are ignored.
type Test struct {
	Name string
	Fn   func()
}

// Case is the contract every test case satisfies. Concrete cases embed Unit,
// which provides the assertion primitives and capabilities, and declare
// their procedures through Tests.
type Case interface {
	// Tests returns the case's test procedures in declaration order.
	Tests() []Test

	// control exposes the embedded Unit to the runner. Satisfied by
	// embedding Unit; cases cannot implement it themselves.
	control() *Unit
}

// Config is the settings object handed to every test case. It is owned by
// the caller and never mutated by the harness.
type Config struct {
	// Parameters holds arbitrary named values test cases can look up.
	Parameters map[string]any `yaml:"parameters"`
	// Databases holds named connection options for GetDatabase.
	Databases map[string]DatabaseOptions `yaml:"databases"`
}

// DatabaseOptions describes one named database connection.
type DatabaseOptions struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}
