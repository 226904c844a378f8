package throwback

import (
	"fmt"
	"strings"
	"time"
)

// RunOptions tunes a single case run.
type RunOptions struct {
	// CommandTimeout bounds each RunCommand call. Zero means no limit.
	CommandTimeout time.Duration
}

// Run executes every test procedure of c whose name starts with the "test"
// prefix (case-insensitive), in declaration order, and returns the recorded
// assertions. The case's cached connections are released on every exit
// path; a panic from a test method propagates after cleanup, there is no
// per-method isolation.
func Run(c Case, cfg *Config, opts RunOptions) ([]Record, error) {
	u := c.control()
	u.bind(cfg, ClassName(c), opts.CommandTimeout)
	defer u.Close()

	for _, t := range c.Tests() {
		if !IsTestName(t.Name) {
			continue
		}
		u.beginTest(t.Name)
		t.Fn()
	}

	records := u.Assertions()
	if err := u.Close(); err != nil {
		return records, fmt.Errorf("close %s: %w", ClassName(c), err)
	}
	return records, nil
}

// IsTestName reports whether a procedure name carries the reserved "test"
// prefix. Only the prefix is case-insensitive.
func IsTestName(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), "test")
}

// ClassName returns the bare type name of a test case, without package
// qualifier or pointer marker.
func ClassName(c Case) string {
	name := fmt.Sprintf("%T", c)
	name = strings.TrimPrefix(name, "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
