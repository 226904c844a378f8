// Package execution runs discovered test cases one at a time.
package execution

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/leftnode/throwback"
	"github.com/leftnode/throwback/internal/discovery"
)

// Engine executes test cases strictly sequentially. There is no isolation
// between cases: a panic inside a test method aborts the remaining run.
type Engine struct {
	cfg        *throwback.Config
	log        *logrus.Logger
	cmdTimeout time.Duration
}

// NewEngine creates an Engine bound to one run's configuration.
func NewEngine(cfg *throwback.Config, log *logrus.Logger, cmdTimeout time.Duration) *Engine {
	return &Engine{cfg: cfg, log: log, cmdTimeout: cmdTimeout}
}

// Execute runs every test method of the loaded case and returns the
// assertions it recorded.
func (e *Engine) Execute(lc discovery.LoadedCase) ([]throwback.Record, error) {
	e.log.WithFields(logrus.Fields{
		"case": lc.Name,
		"file": lc.File,
	}).Debug("Running test case")

	records, err := throwback.Run(lc.Case, e.cfg, throwback.RunOptions{
		CommandTimeout: e.cmdTimeout,
	})
	if err != nil {
		return records, err
	}

	e.log.WithFields(logrus.Fields{
		"case":       lc.Name,
		"assertions": len(records),
	}).Debug("Test case finished")
	return records, nil
}
