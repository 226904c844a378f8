package throwback

import (
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestRunCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix commands")
	}

	t.Run("captures standard output", func(t *testing.T) {
		u := &Unit{}
		u.bind(&Config{}, "SampleCase", 0)
		out, err := u.RunCommand("echo", "hello", "world")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "hello world\n" {
			t.Errorf("output = %q, want %q", out, "hello world\n")
		}
	})

	t.Run("arguments are passed verbatim", func(t *testing.T) {
		u := &Unit{}
		u.bind(&Config{}, "SampleCase", 0)
		out, err := u.RunCommand("echo", "with spaces", "$HOME")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// No shell runs, so the variable must not expand.
		if out != "with spaces $HOME\n" {
			t.Errorf("output = %q, want %q", out, "with spaces $HOME\n")
		}
	})

	t.Run("failure names the quoted command", func(t *testing.T) {
		u := &Unit{}
		u.bind(&Config{}, "SampleCase", 0)
		_, err := u.RunCommand("false", "an arg")
		if err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(err.Error(), "'an arg'") {
			t.Errorf("error %q should contain the quoted argument", err)
		}
	})

	t.Run("timeout kills the command", func(t *testing.T) {
		u := &Unit{}
		u.bind(&Config{}, "SampleCase", 100*time.Millisecond)
		start := time.Now()
		_, err := u.RunCommand("sleep", "5")
		if err == nil {
			t.Fatal("expected the command to be killed")
		}
		if elapsed := time.Since(start); elapsed > 2*time.Second {
			t.Errorf("command ran for %v, expected the timeout to cut it short", elapsed)
		}
	})
}
