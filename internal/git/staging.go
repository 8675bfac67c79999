package git

import (
	"context"
	"fmt"
)

// UntrackedFiles returns the paths of untracked, non-ignored files
func (r *Repo) UntrackedFiles(ctx context.Context) ([]string, error) {
	lines, err := r.runner.RunLines(ctx, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, fmt.Errorf("failed to list untracked files: %w", err)
	}
	return lines, nil
}

// StagePaths stages exactly the given paths. Each path is passed with the
// literal pathspec magic so metacharacters in generated file names are not
// wildmatch-expanded.
func (r *Repo) StagePaths(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := make([]string, 0, len(paths)+2)
	args = append(args, "add", "--")
	for _, p := range paths {
		args = append(args, ":(literal)"+p)
	}
	_, err := r.runner.Run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}
	return nil
}

// StageTracked stages all modifications to already-tracked files
func (r *Repo) StageTracked(ctx context.Context) error {
	_, err := r.runner.Run(ctx, "add", "-u")
	if err != nil {
		return fmt.Errorf("failed to stage tracked changes: %w", err)
	}
	return nil
}

// IsWorkTreeClean reports whether the working tree has no uncommitted
// modifications to tracked files. Untracked files do not count as dirty.
func (r *Repo) IsWorkTreeClean(ctx context.Context) (bool, error) {
	output, err := r.runner.Run(ctx, "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false, fmt.Errorf("failed to check working tree status: %w", err)
	}
	return output == "", nil
}
