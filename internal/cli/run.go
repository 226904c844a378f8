package cli

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/leftnode/throwback"
	"github.com/leftnode/throwback/internal/config"
	"github.com/leftnode/throwback/internal/discovery"
	"github.com/leftnode/throwback/internal/execution"
	"github.com/leftnode/throwback/internal/ui"
)

// runCommand is the run controller: configuration, discovery, execution and
// reporting in one linear pass.
type runCommand struct {
	flags *Flags
	log   *logrus.Logger
}

func newRunCommand(flags *Flags, log *logrus.Logger) *runCommand {
	return &runCommand{flags: flags, log: log}
}

// Execute runs the whole pipeline. Any error aborts the run; a failed
// assertion surfaces as ErrRunFailed after the summary has been printed.
func (rc *runCommand) Execute(cmd *cobra.Command, args []string) error {
	start := time.Now()

	// Configuration problems must surface before any test runs.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	scanner := discovery.NewScanner(throwback.DefaultRegistry(), rc.log)
	cases, err := scanner.Discover(dir)
	if err != nil {
		return err
	}

	engine := execution.NewEngine(cfg, rc.log, rc.flags.Timeout)
	formatter := ui.NewFormatter(os.Stdout)

	var bar *ui.ProgressBar
	if rc.flags.Progress {
		bar = ui.NewProgressBar(len(cases))
	}

	var stats ui.Stats
	var all []throwback.Record
	for i, lc := range cases {
		records, err := engine.Execute(lc)
		if err != nil {
			return err
		}

		formatter.PrintCaseHeader(lc.Name, lc.File)
		for _, r := range records {
			formatter.PrintRecord(r)
			stats.Add(r)
		}
		all = append(all, records...)

		if bar != nil {
			bar.Update(i+1, stats)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	formatter.PrintSummary(stats, time.Since(start))

	if stats.ExitCode() != 0 {
		if rc.flags.Interactive {
			if err := ui.NewViewer().View(all); err != nil {
				return err
			}
		}
		return ErrRunFailed
	}
	return nil
}
