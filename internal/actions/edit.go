package actions

import (
	"context"

	"github.com/huguesb/preparator/internal/engine"
	"github.com/huguesb/preparator/internal/runtime"
	"github.com/huguesb/preparator/internal/step"
)

// EditOptions contains options for the edit action
type EditOptions struct {
	Selector string
	// Message replaces the step's user message; empty reuses the old one
	Message string
	// CommandArg is the new command (literal, file path, or "-")
	CommandArg string
}

// EditAction resets a scripted commit and re-applies it with a new
// command, then replays every commit that followed it. Manual commits are
// rejected with a pointer to amend.
func EditAction(ctx context.Context, rt *runtime.Context, opts EditOptions) error {
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

	old, err := engine.EnsureScripted(rt.Git, sha)
	if err != nil {
		return err
	}

	message := opts.Message
	if message == "" {
		message = old.Message
	}

	command, err := ReadCommandArg(opts.CommandArg)
	if err != nil {
		return err
	}
	blob := step.Encode(message, command)

	return rt.Rewriter.Rewrite(ctx, engine.RewriteRequest{
		Branch:      branch,
		StartPoint:  sha,
		ReplayAfter: sha,
		Mutation: func(ctx context.Context) error {
			parent, err := rt.Git.ParentSHA(sha)
			if err != nil {
				return err
			}
			if err := rt.Git.HardReset(ctx, parent); err != nil {
				return err
			}
			return rt.Applier.Apply(ctx, blob, command)
		},
	})
}
