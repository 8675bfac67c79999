package git

import (
	"context"
	"fmt"
)

// ForkPoint returns the commit where branch diverged from base.
// Prefers git's reflog-aware fork-point computation and falls back to a
// plain merge base when the reflog has no answer.
func (r *Repo) ForkPoint(ctx context.Context, base, branch string) (string, error) {
	sha, err := r.runner.Run(ctx, "merge-base", "--fork-point", base, branch)
	if err == nil && sha != "" {
		return sha, nil
	}
	return r.MergeBase(base, branch)
}

// MergeBase returns the merge base between two revisions
func (r *Repo) MergeBase(rev1, rev2 string) (string, error) {
	hash1, err := r.resolveRefHash(rev1)
	if err != nil {
		return "", err
	}
	hash2, err := r.resolveRefHash(rev2)
	if err != nil {
		return "", err
	}

	commit1, err := r.repo.CommitObject(hash1)
	if err != nil {
		return "", fmt.Errorf("failed to get commit %s: %w", rev1, err)
	}
	commit2, err := r.repo.CommitObject(hash2)
	if err != nil {
		return "", fmt.Errorf("failed to get commit %s: %w", rev2, err)
	}

	mergeBases, err := commit1.MergeBase(commit2)
	if err != nil {
		return "", fmt.Errorf("failed to find merge base: %w", err)
	}
	if len(mergeBases) == 0 {
		return "", fmt.Errorf("no merge base between %s and %s", rev1, rev2)
	}

	return mergeBases[0].Hash.String(), nil
}
