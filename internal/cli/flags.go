package cli

import "time"

// Flags holds command-line flags shared across commands.
type Flags struct {
	Verbose     bool
	Progress    bool
	Interactive bool
	Timeout     time.Duration
	Cases       bool
}
