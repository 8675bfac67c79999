package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	preparatorerrors "github.com/huguesb/preparator/internal/errors"
)

// CherryPick applies a commit onto the current HEAD, preserving its
// author, message and exact diff. On conflict the repository is left in
// the conflicted state and ErrCherryPickConflict is returned.
func (r *Repo) CherryPick(ctx context.Context, sha string) error {
	_, err := r.runner.Run(ctx, "cherry-pick", sha)
	if err != nil {
		if r.IsCherryPickInProgress(ctx) {
			return fmt.Errorf("%w: while picking %s", preparatorerrors.ErrCherryPickConflict, sha)
		}
		return fmt.Errorf("cherry-pick of %s failed: %w", sha, err)
	}
	return nil
}

// IsCherryPickInProgress checks whether a cherry-pick stopped on a conflict
func (r *Repo) IsCherryPickInProgress(ctx context.Context) bool {
	gitDir, err := r.runner.Run(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return false
	}
	_, err = os.Stat(filepath.Join(gitDir, "CHERRY_PICK_HEAD"))
	return err == nil
}
