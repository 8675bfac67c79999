package git

import (
	"context"
	"fmt"
)

// CommitOptions contains options for creating a commit
type CommitOptions struct {
	Message    string
	AllowEmpty bool
}

// Commit creates a commit from whatever is currently staged
func (r *Repo) Commit(ctx context.Context, opts CommitOptions) error {
	args := []string{"commit", "-m", opts.Message}
	if opts.AllowEmpty {
		args = append(args, "--allow-empty")
	}
	_, err := r.runner.Run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// AmendCommit amends the commit at HEAD, passing extraArgs through to git.
// Runs interactively so git may open an editor when no message flag is given.
func (r *Repo) AmendCommit(extraArgs []string) error {
	args := append([]string{"commit", "--amend"}, extraArgs...)
	return r.runner.RunInteractive(args...)
}
