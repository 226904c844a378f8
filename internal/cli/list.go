package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/leftnode/throwback"
	"github.com/leftnode/throwback/internal/discovery"
	"github.com/leftnode/throwback/internal/ui"
)

// listCommand discovers test cases and prints them without executing any.
type listCommand struct {
	flags *Flags
	log   *logrus.Logger
}

func newListCommand(flags *Flags, log *logrus.Logger) *listCommand {
	return &listCommand{flags: flags, log: log}
}

// Execute lists the discovered files and cases. No configuration is needed
// because nothing runs.
func (lc *listCommand) Execute(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	scanner := discovery.NewScanner(throwback.DefaultRegistry(), lc.log)
	cases, err := scanner.Discover(dir)
	if err != nil {
		return err
	}

	listings := make([]ui.CaseListing, 0, len(cases))
	for _, c := range cases {
		listing := ui.CaseListing{File: c.File, Name: c.Name}
		if lc.flags.Cases {
			for _, t := range c.Case.Tests() {
				if throwback.IsTestName(t.Name) {
					listing.Tests = append(listing.Tests, t.Name)
				}
			}
		}
		listings = append(listings, listing)
	}

	ui.NewFormatter(os.Stdout).PrintCaseList(listings, lc.flags.Cases)
	return nil
}
