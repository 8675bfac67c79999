package git

import (
	"context"
	"fmt"

	preparatorerrors "github.com/huguesb/preparator/internal/errors"
)

// CurrentBranch returns the name of the checked-out branch.
// Returns ErrNotOnBranch when HEAD is detached.
func (r *Repo) CurrentBranch() (string, error) {
	name, err := r.runner.Run(context.Background(), "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", preparatorerrors.ErrNotOnBranch
	}
	return name, nil
}

// CreateAndCheckoutBranchAt creates a branch pointing at a revision and checks it out
func (r *Repo) CreateAndCheckoutBranchAt(ctx context.Context, branchName, revision string) error {
	_, err := r.runner.Run(ctx, "checkout", "-b", branchName, revision)
	if err != nil {
		return fmt.Errorf("failed to create branch %s at %s: %w", branchName, revision, err)
	}
	return nil
}

// ForceRenameBranch renames a branch, replacing the destination if it exists
func (r *Repo) ForceRenameBranch(ctx context.Context, oldName, newName string) error {
	_, err := r.runner.Run(ctx, "branch", "-M", oldName, newName)
	if err != nil {
		return fmt.Errorf("failed to rename branch %s to %s: %w", oldName, newName, err)
	}
	return nil
}

// HardReset performs a hard reset to a specific revision
func (r *Repo) HardReset(ctx context.Context, revision string) error {
	_, err := r.runner.Run(ctx, "reset", "--hard", revision)
	if err != nil {
		return fmt.Errorf("failed to hard reset to %s: %w", revision, err)
	}
	return nil
}

// BranchExists reports whether a local branch exists
func (r *Repo) BranchExists(branchName string) bool {
	_, err := r.runner.Run(context.Background(), "show-ref", "--verify", "--quiet", "refs/heads/"+branchName)
	return err == nil
}
