package engine

import (
	"context"
	"errors"
	"fmt"

	preparatorerrors "github.com/huguesb/preparator/internal/errors"
	"github.com/huguesb/preparator/internal/git"
	"github.com/huguesb/preparator/internal/step"
	"github.com/huguesb/preparator/internal/tui"
)

// Replayer reproduces a range of commits onto the current HEAD. Manual
// commits are cherry-picked natively, preserving author, timestamp and
// exact diff; scripted commits are regenerated by re-running their
// recorded command against the current tree.
type Replayer struct {
	Git     git.Runner
	Applier *Applier
	Splog   *tui.Splog
}

// ReplayRange replays the commits strictly after startExclusive up to
// endInclusive, oldest first.
func (r *Replayer) ReplayRange(ctx context.Context, startExclusive, endInclusive string) error {
	shas, err := r.Git.CommitsBetween(ctx, startExclusive, endInclusive)
	if err != nil {
		return err
	}
	return r.ReplayCommits(ctx, shas)
}

// ReplayInclusive replays commits from firstInclusive through lastInclusive.
// When firstInclusive is a root commit the range covers the whole history.
func (r *Replayer) ReplayInclusive(ctx context.Context, firstInclusive, lastInclusive string) error {
	parent, err := r.Git.ParentSHA(firstInclusive)
	if err != nil {
		if !errors.Is(err, preparatorerrors.ErrCommitNotFound) {
			return err
		}
		shas, err := r.Git.AllCommits(ctx, lastInclusive)
		if err != nil {
			return err
		}
		return r.ReplayCommits(ctx, shas)
	}
	return r.ReplayRange(ctx, parent, lastInclusive)
}

// ReplayOne replays a single commit
func (r *Replayer) ReplayOne(ctx context.Context, sha string) error {
	return r.ReplayCommits(ctx, []string{sha})
}

// ReplayCommits replays the given commits in order. On a cherry-pick
// conflict or a failed scripted command the replay halts immediately,
// leaving the repository in its partial state for manual resolution.
func (r *Replayer) ReplayCommits(ctx context.Context, shas []string) error {
	for _, sha := range shas {
		if err := r.replayCommit(ctx, sha); err != nil {
			return fmt.Errorf("replay halted at %s: %w", sha[:min(8, len(sha))], err)
		}
	}
	return nil
}

func (r *Replayer) replayCommit(ctx context.Context, sha string) error {
	message, err := r.Git.CommitMessage(sha)
	if err != nil {
		return err
	}

	st, err := step.Decode(message)
	if errors.Is(err, preparatorerrors.ErrNotScripted) {
		r.Splog.Debug("cherry-picking %s", sha)
		return r.Git.CherryPick(ctx, sha)
	}
	if err != nil {
		return err
	}

	r.Splog.Debug("re-running step from %s", sha)
	return r.Applier.Apply(ctx, st.Blob(), st.Command)
}
