// Package ui renders the run report, the optional progress bar and the
// optional interactive failure viewer.
package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/leftnode/throwback"
)

// Stats accumulates assertion counts for one run. Counts only grow; the
// total always equals passed plus failed.
type Stats struct {
	Total  int
	Passed int
	Failed int
}

// Add counts one assertion record.
func (s *Stats) Add(r throwback.Record) {
	s.Total++
	if r.Passed {
		s.Passed++
	} else {
		s.Failed++
	}
}

// ExitCode derives the process exit status: success only when no assertion
// failed.
func (s Stats) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}

// Formatter writes the plain-text report. All report output goes to a
// single writer (stdout in the binary) so it stays separate from logs.
type Formatter struct {
	out io.Writer

	pass *color.Color
	fail *color.Color
	head *color.Color
}

// NewFormatter creates a Formatter writing to out.
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{
		out:  out,
		pass: color.New(color.FgGreen),
		fail: color.New(color.FgRed),
		head: color.New(color.FgCyan),
	}
}

// PrintCaseHeader prints the line the case's assertion records hang from.
func (f *Formatter) PrintCaseHeader(name, file string) {
	f.head.Fprintf(f.out, "%s (%s)\n", name, file)
}

// PrintRecord prints one indented assertion record line.
func (f *Formatter) PrintRecord(r throwback.Record) {
	if r.Passed {
		f.pass.Fprint(f.out, "  [PASS]")
	} else {
		f.fail.Fprint(f.out, "  [FAIL]")
	}
	fmt.Fprintf(f.out, " %s in %s::%s on line %d.\n", r.Kind, r.Class, r.Method, r.Line)
}

// PrintSummary prints the final tally. Elapsed covers the whole run, from
// the start of discovery to the end of reporting.
func (f *Formatter) PrintSummary(stats Stats, elapsed time.Duration) {
	fmt.Fprintf(f.out, "\nTested %d %s in %.4f seconds. ",
		stats.Total, pluralize("assertion", stats.Total), elapsed.Seconds())
	f.pass.Fprintf(f.out, "%d PASSED", stats.Passed)
	fmt.Fprint(f.out, ", ")
	f.fail.Fprintf(f.out, "%d FAILED", stats.Failed)
	fmt.Fprintln(f.out)
}

// PrintCaseList prints discovered files and their cases without running
// them, optionally with each case's test method names.
func (f *Formatter) PrintCaseList(cases []CaseListing, showTests bool) {
	files := 0
	last := ""
	for _, c := range cases {
		if c.File != last {
			files++
			last = c.File
		}
	}
	f.pass.Fprintf(f.out, "Found %d test file(s):\n", files)

	last = ""
	for _, c := range cases {
		if c.File != last {
			f.head.Fprintf(f.out, "%s\n", c.File)
			last = c.File
		}
		fmt.Fprintf(f.out, "  %s\n", c.Name)
		if showTests {
			for _, name := range c.Tests {
				fmt.Fprintf(f.out, "    %s\n", name)
			}
		}
	}
}

// CaseListing is one case of the list command's output.
type CaseListing struct {
	File  string
	Name  string
	Tests []string
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
