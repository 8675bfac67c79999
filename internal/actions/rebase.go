package actions

import (
	"context"
	"fmt"

	"github.com/huguesb/preparator/internal/engine"
	preparatorerrors "github.com/huguesb/preparator/internal/errors"
	"github.com/huguesb/preparator/internal/runtime"
)

// RebaseOptions contains options for the rebase action
type RebaseOptions struct {
	// NewBase is the commit-ish to rebase onto; empty means the configured base
	NewBase string
	// Branch is the branch to rewrite; empty means the current branch
	Branch string
}

// RebaseAction rewrites a branch onto a new base from its fork point.
// Manual commits are cherry-picked; scripted steps are regenerated against
// the new base instead of replayed as frozen diffs.
func RebaseAction(ctx context.Context, rt *runtime.Context, opts RebaseOptions) error {
	if err := RequireCleanTree(ctx, rt.Git); err != nil {
		return err
	}

	newBase := opts.NewBase
	if newBase == "" {
		newBase = rt.Base
	}

	branch := opts.Branch
	if branch == "" {
		current, err := RequireBranch(rt.Git)
		if err != nil {
			return err
		}
		branch = current
	} else if !rt.Git.BranchExists(branch) {
		return fmt.Errorf("%w: %s", preparatorerrors.ErrBranchNotFound, branch)
	}

	forkPoint, err := rt.Git.ForkPoint(ctx, newBase, branch)
	if err != nil {
		return err
	}

	startPoint, err := rt.Git.Revision(newBase)
	if err != nil {
		return err
	}

	upToDate, err := rt.Git.IsAncestor(startPoint, branch)
	if err != nil {
		return err
	}
	if upToDate {
		rt.Splog.Info("%s is already based on %s", branch, newBase)
		return nil
	}

	if err := rt.Rewriter.Rewrite(ctx, engine.RewriteRequest{
		Branch:      branch,
		StartPoint:  startPoint,
		ReplayAfter: forkPoint,
	}); err != nil {
		return err
	}

	rt.Splog.Info("rebased %s onto %s", branch, newBase)
	return nil
}
