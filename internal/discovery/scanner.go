// Package discovery locates test files on disk and resolves them to the
// test cases they registered.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/leftnode/throwback"
)

// Suffix is the naming convention test files must follow.
const Suffix = "_test.go"

var (
	// ErrInvalidDirectory means the target directory does not exist or is
	// not a directory.
	ErrInvalidDirectory = errors.New("invalid test directory")
	// ErrNoTestFiles means no file in the directory matches the naming
	// convention.
	ErrNoTestFiles = errors.New("no test files found")
	// ErrEmptyTestFile means a matching file registered no test cases.
	ErrEmptyTestFile = errors.New("test file defines no test cases")
	// ErrNoValidTestCases means a file's registrations include nothing
	// satisfying the test case contract.
	ErrNoValidTestCases = errors.New("no valid test cases")
)

// LoadedCase is one conforming test case resolved from a discovered file.
// The instance is constructed during discovery and handed to the runner
// untouched; one instance exists per case type per run.
type LoadedCase struct {
	File string // base file name, e.g. "math_test.go"
	Path string // full path of the discovered file
	Name string // test case type name
	Case throwback.Case
}

// Scanner resolves a directory's test files against a registry.
type Scanner struct {
	registry *throwback.Registry
	log      *logrus.Logger
}

// NewScanner creates a Scanner over the given registry.
func NewScanner(registry *throwback.Registry, log *logrus.Logger) *Scanner {
	return &Scanner{registry: registry, log: log}
}

// Discover lists the directory's test files in lexicographic order (report
// order is observable, so ordering must be stable across runs) and resolves
// each to its registered, conforming test cases. Any failure aborts the
// whole run: a malformed test file is a configuration error, not a
// skippable unit.
func (s *Scanner) Discover(dir string) ([]LoadedCase, error) {
	dir = filepath.Clean(dir)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirectory, dir)
	}

	files, err := s.testFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTestFiles, dir)
	}

	var cases []LoadedCase
	for _, file := range files {
		resolved, err := s.resolve(dir, file)
		if err != nil {
			return nil, err
		}
		cases = append(cases, resolved...)
	}
	return cases, nil
}

// testFiles returns the base names of matching files, sorted.
func (s *Scanner) testFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if strings.HasSuffix(name, Suffix) {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	s.log.WithFields(logrus.Fields{
		"dir":   dir,
		"files": len(files),
	}).Debug("Scanned test directory")
	return files, nil
}

// resolve maps one discovered file to its conforming test cases.
func (s *Scanner) resolve(dir, file string) ([]LoadedCase, error) {
	ctors := s.registry.ForFile(file)
	if len(ctors) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTestFile, file)
	}

	var cases []LoadedCase
	for _, ctor := range ctors {
		v := ctor()
		c, ok := v.(throwback.Case)
		if !ok {
			s.log.WithFields(logrus.Fields{
				"file": file,
				"type": fmt.Sprintf("%T", v),
			}).Debug("Registered type does not satisfy the test case contract")
			continue
		}
		cases = append(cases, LoadedCase{
			File: file,
			Path: filepath.Join(dir, file),
			Name: throwback.ClassName(c),
			Case: c,
		})
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoValidTestCases, file)
	}

	s.log.WithFields(logrus.Fields{
		"file":  file,
		"cases": len(cases),
	}).Debug("Resolved test file")
	return cases, nil
}
