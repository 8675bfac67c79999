package actions

import (
	"context"

	"github.com/huguesb/preparator/internal/runtime"
)

// CherryPickOptions contains options for the cherry-pick action
type CherryPickOptions struct {
	// First is the only commit, or the oldest of a range
	First string
	// Last is the newest commit of a range; empty for a single commit
	Last string
}

// CherryPickAction replays one commit or an inclusive range onto HEAD.
// Manual commits are picked natively; scripted ones are re-executed.
func CherryPickAction(ctx context.Context, rt *runtime.Context, opts CherryPickOptions) error {
	if err := RequireCleanTree(ctx, rt.Git); err != nil {
		return err
	}

	first, err := rt.Resolver.Resolve(ctx, opts.First)
	if err != nil {
		return err
	}

	if opts.Last == "" {
		return rt.Replayer.ReplayOne(ctx, first)
	}

	last, err := rt.Resolver.Resolve(ctx, opts.Last)
	if err != nil {
		return err
	}
	return rt.Replayer.ReplayInclusive(ctx, first, last)
}
