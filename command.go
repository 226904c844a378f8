package throwback

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// RunCommand executes an external command and returns its captured standard
// output. Arguments are passed as a slice, never through a shell, so no
// escaping by the caller is required. When the runner was given a command
// timeout the command is killed once it elapses.
func (u *Unit) RunCommand(name string, args ...string) (string, error) {
	ctx := context.Background()
	if u.cmdTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cmdTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		line := shellquote.Join(append([]string{name}, args...)...)
		return "", fmt.Errorf("run command %s: %w", line, err)
	}
	return string(out), nil
}
