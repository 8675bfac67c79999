package actions

import (
	"context"

	preparatorerrors "github.com/huguesb/preparator/internal/errors"
	"github.com/huguesb/preparator/internal/git"
)

// RequireCleanTree fails with ErrDirtyWorkTree when tracked files carry
// uncommitted modifications. This is the safety gate run before every
// mutating command; it is a precondition check, not a lock.
func RequireCleanTree(ctx context.Context, g git.Runner) error {
	clean, err := g.IsWorkTreeClean(ctx)
	if err != nil {
		return err
	}
	if !clean {
		return preparatorerrors.ErrDirtyWorkTree
	}
	return nil
}

// RequireBranch returns the current branch name or ErrNotOnBranch
func RequireBranch(g git.Runner) (string, error) {
	return g.CurrentBranch()
}
