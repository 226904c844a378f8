package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/leftnode/throwback/internal/cli"
)

var version = "dev"

func main() {
	root := cli.NewRootCommand(version)
	if err := root.Execute(); err != nil {
		// Usage requests and failed runs already printed their output.
		if !errors.Is(err, cli.ErrUsageRequested) && !errors.Is(err, cli.ErrRunFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
