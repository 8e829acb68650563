// pkg/platform/identify.go
package platform

import (
	"context"
	"io"
	"os/exec"
)

// SystemIdentifier produces one line of free-form system identification
// text, such as the output of "uname -a". ok is false when the answer is
// inconclusive for any reason.
type SystemIdentifier interface {
	Identify(ctx context.Context) (line string, ok bool)
}

// IdentifierFunc adapts a function to SystemIdentifier
type IdentifierFunc func(ctx context.Context) (string, bool)

func (f IdentifierFunc) Identify(ctx context.Context) (string, bool) {
	return f(ctx)
}

// UnameCommand identifies the system by running a command and reading the
// first line of its standard output. The zero value runs "uname -a".
type UnameCommand struct {
	Name string
	Args []string
}

func (u UnameCommand) command() (string, []string) {
	if u.Name == "" {
		return "uname", []string{"-a"}
	}
	return u.Name, u.Args
}

// Identify runs the command and blocks until it exits or ctx is done.
// Launch failures, read failures and cancellation are all inconclusive.
func (u UnameCommand) Identify(ctx context.Context) (string, bool) {
	name, args := u.command()
	cmd := exec.CommandContext(ctx, name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", false
	}
	if err := cmd.Start(); err != nil {
		return "", false
	}

	line, ok := firstLine(stdout)
	// Drain so the child never blocks on a full pipe. Wait closes stdout.
	_, _ = io.Copy(io.Discard, stdout)
	// The exit status is ignored once a line has been read.
	_ = cmd.Wait()

	if ctx.Err() != nil || !ok {
		return "", false
	}
	return line, true
}
