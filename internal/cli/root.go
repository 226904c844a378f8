// Package cli wires the cobra commands for the throwback binary.
package cli

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// ErrUsageRequested signals an explicit help request, which exits with
	// status 1. Usage has already been printed when it is returned.
	ErrUsageRequested = errors.New("usage requested")
	// ErrRunFailed signals at least one failed assertion. The summary has
	// already been printed when it is returned.
	ErrRunFailed = errors.New("test run failed")
)

// NewRootCommand builds the root command: `throwback [test-directory]` runs
// the tests of the given directory (default "."), `list` only discovers,
// `help` prints usage.
func NewRootCommand(version string) *cobra.Command {
	flags := &Flags{}

	root := &cobra.Command{
		Use:     "throwback [test-directory]",
		Short:   "Discover and run throwback test files",
		Long:    "Discover *_test.go files in a directory, run the test cases they register and report every assertion.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newRunCommand(flags, newLogger(flags.Verbose)).Execute(cmd, args)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	root.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr while running")
	root.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Open the failure viewer when assertions failed")
	root.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Kill test shell commands after this duration (0 disables)")

	listCmd := &cobra.Command{
		Use:   "list [test-directory]",
		Short: "List discovered test cases without running them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newListCommand(flags, newLogger(flags.Verbose)).Execute(cmd, args)
		},
	}
	listCmd.Flags().BoolVarP(&flags.Cases, "cases", "c", false, "Also list each case's test methods")
	root.AddCommand(listCmd)

	// A usage request exits with status 1, so the default help command is
	// replaced with one that reports it as a failure.
	root.SetHelpCommand(&cobra.Command{
		Use:   "help",
		Short: "Print usage information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().Usage(); err != nil {
				return err
			}
			return ErrUsageRequested
		},
	})

	return root
}

// newLogger builds the run logger from the verbose flag, debug level when
// set. Logs go to stderr, the report owns stdout.
func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}
