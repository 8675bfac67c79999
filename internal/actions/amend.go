package actions

import (
	"context"

	"github.com/huguesb/preparator/internal/engine"
	"github.com/huguesb/preparator/internal/runtime"
)

// AmendOptions contains options for the amend action
type AmendOptions struct {
	Selector string
	// ExtraArgs are passed through to the underlying git commit --amend
	ExtraArgs []string
}

// AmendAction mutates a manual commit in place, then replays every commit
// that followed it on the current branch. Scripted commits are rejected
// with a pointer to edit.
func AmendAction(ctx context.Context, rt *runtime.Context, opts AmendOptions) error {
	if err := RequireCleanTree(ctx, rt.Git); err != nil {
		return err
	}

	branch, err := RequireBranch(rt.Git)
	if err != nil {
		return err
	}

	sha, err := rt.Resolver.Resolve(ctx, opts.Selector)
	if err != nil {
		return err
	}

	if err := engine.EnsureManual(rt.Git, sha); err != nil {
		return err
	}

	return rt.Rewriter.Rewrite(ctx, engine.RewriteRequest{
		Branch:      branch,
		StartPoint:  sha,
		ReplayAfter: sha,
		Mutation: func(ctx context.Context) error {
			return rt.Git.AmendCommit(opts.ExtraArgs)
		},
	})
}
