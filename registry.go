package throwback

import (
	"path/filepath"
	"runtime"
	"sort"
)

// Constructor builds a fresh test case value. It returns any so that
// registrations which do not satisfy Case can be detected during discovery
// instead of silently running.
type Constructor func() any

// Registry maps test source files to the constructors they registered.
// Test files register from init, so the registry is populated before main
// runs and needs no locking afterwards.
type Registry struct {
	byFile map[string][]Constructor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byFile: make(map[string][]Constructor)}
}

// Add records a constructor under the given source file name (base name,
// e.g. "math_test.go").
func (r *Registry) Add(file string, ctor Constructor) {
	r.byFile[file] = append(r.byFile[file], ctor)
}

// ForFile returns the constructors registered by the named file, in
// registration order.
func (r *Registry) ForFile(file string) []Constructor {
	return r.byFile[file]
}

// Files returns the registered file names, sorted.
func (r *Registry) Files() []string {
	files := make([]string, 0, len(r.byFile))
	for f := range r.byFile {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry that Register writes to.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register records a test case constructor under the calling source file.
// Test files call it from init:
//
//	func init() {
//		throwback.Register(func() any { return &MathTest{} })
//	}
func Register(ctor Constructor) {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		file = "unknown"
	}
	defaultRegistry.Add(filepath.Base(file), ctor)
}
