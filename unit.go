package throwback

import (
	"database/sql"
	"time"
)

// Unit is the base every test case embeds. It stores the configuration the
// runner binds at the start of the run and provides the assertion primitives
// and the parameter, database and command capabilities.
type Unit struct {
	cfg        *Config
	rec        recorder
	dbs        map[string]*sql.DB
	cmdTimeout time.Duration
}

// bind attaches the run configuration to the unit. Called by Run before any
// test procedure executes.
func (u *Unit) bind(cfg *Config, class string, cmdTimeout time.Duration) {
	u.cfg = cfg
	u.rec.class = class
	u.cmdTimeout = cmdTimeout
}

// beginTest marks the test method that subsequent assertions belong to.
func (u *Unit) beginTest(method string) {
	u.rec.method = method
}

func (u *Unit) control() *Unit { return u }

// Parameter looks up a named value from the configuration's parameters
// section. The second return value reports whether the parameter exists; a
// missing parameter is not an error.
func (u *Unit) Parameter(name string) (any, bool) {
	if u.cfg == nil || u.cfg.Parameters == nil {
		return nil, false
	}
	v, ok := u.cfg.Parameters[name]
	return v, ok
}

// Assertions returns the records accumulated so far, in call order.
func (u *Unit) Assertions() []Record {
	return u.rec.records
}

// Close releases every cached database connection. The runner calls it on
// all exit paths, including a panicking test method.
func (u *Unit) Close() error {
	var first error
	for name, db := range u.dbs {
		if err := db.Close(); err != nil && first == nil {
			first = err
		}
		delete(u.dbs, name)
	}
	return first
}
