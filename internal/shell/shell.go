// Package shell is the single designated capability for executing recorded
// commands. The command string is handed to the shell untokenized so a
// replayed step runs exactly as it was recorded.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"

	preparatorerrors "github.com/huguesb/preparator/internal/errors"
)

// Runner executes shell commands
type Runner interface {
	// Run executes command in dir with the operator's terminal attached.
	// Returns a CommandFailedError when the command exits non-zero.
	// No timeout is imposed: scripted commands may be interactive or
	// long-running builds.
	Run(ctx context.Context, dir, command string) error
}

// New returns the standard Runner backed by /bin/sh
func New() Runner {
	return &shRunner{}
}

type shRunner struct{}

func (s *shRunner) Run(ctx context.Context, dir, command string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return preparatorerrors.NewCommandFailedError(command, exitErr.ExitCode())
		}
		return preparatorerrors.NewCommandFailedError(command, -1)
	}
	return nil
}
