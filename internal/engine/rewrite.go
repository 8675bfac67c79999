package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/huguesb/preparator/internal/git"
	"github.com/huguesb/preparator/internal/tui"
)

// Mutation is the branch-local change a rewrite transaction performs at its
// start point before replaying the rest of the history. nil means no-op.
type Mutation func(ctx context.Context) error

// RewriteRequest describes a temp-branch rewrite transaction
type RewriteRequest struct {
	// Branch is the branch being rewritten
	Branch string
	// StartPoint is the commit the temporary branch is created at
	StartPoint string
	// ReplayAfter is the exclusive lower bound of the replay range on the
	// original branch. For amend and edit this equals StartPoint; for
	// rebase it is the fork point with the old base.
	ReplayAfter string
	// Mutation runs on the temporary branch before the replay
	Mutation Mutation
}

// Rewriter executes rewrite transactions: checkout a temporary branch at a
// target commit, mutate, replay the commits that followed, then rename the
// temporary branch over the original. The original branch ref is only
// touched by the final rename, so a failed transaction leaves it intact
// and keeps the temporary branch around for inspection.
type Rewriter struct {
	Git      git.Runner
	Replayer *Replayer
	Splog    *tui.Splog
}

// Rewrite runs a rewrite transaction to completion or leaves the
// temporary branch behind on failure.
func (w *Rewriter) Rewrite(ctx context.Context, req RewriteRequest) error {
	tip, err := w.Git.Revision(req.Branch)
	if err != nil {
		return err
	}

	temp := tempBranchName(req.Branch)
	if err := w.Git.CreateAndCheckoutBranchAt(ctx, temp, req.StartPoint); err != nil {
		return err
	}

	if req.Mutation != nil {
		if err := req.Mutation(ctx); err != nil {
			return w.abort(temp, err)
		}
	}

	if req.ReplayAfter != tip {
		if err := w.Replayer.ReplayRange(ctx, req.ReplayAfter, tip); err != nil {
			return w.abort(temp, err)
		}
	}

	if err := w.Git.ForceRenameBranch(ctx, temp, req.Branch); err != nil {
		return w.abort(temp, err)
	}

	return nil
}

// abort reports a failed transaction. The temporary branch is deliberately
// not cleaned up: it holds whatever progress was made and the conflicted
// state the operator needs to inspect.
func (w *Rewriter) abort(temp string, err error) error {
	w.Splog.Warn("rewrite failed; branch %s left behind for inspection", temp)
	w.Splog.Tip("discard it with 'git branch -D %s'", temp)
	return fmt.Errorf("rewrite transaction failed: %w", err)
}

func tempBranchName(branch string) string {
	return fmt.Sprintf("%s.rewrite.%d", branch, time.Now().UnixNano())
}
