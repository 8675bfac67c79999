package git

import (
	"context"
	"fmt"
)

// CommitsBetween returns the SHAs strictly after start and up to end
// (inclusive), ordered oldest first.
func (r *Repo) CommitsBetween(ctx context.Context, startExclusive, endInclusive string) ([]string, error) {
	lines, err := r.runner.RunLines(ctx, "rev-list", "--reverse", startExclusive+".."+endInclusive)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits in %s..%s: %w", startExclusive, endInclusive, err)
	}
	return lines, nil
}

// AllCommits returns every commit reachable from end, ordered oldest first.
// Used when a replay range starts at a root commit.
func (r *Repo) AllCommits(ctx context.Context, endInclusive string) ([]string, error) {
	lines, err := r.runner.RunLines(ctx, "rev-list", "--reverse", endInclusive)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits reachable from %s: %w", endInclusive, err)
	}
	return lines, nil
}
