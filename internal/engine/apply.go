// Package engine implements the apply, replay and rewrite engines that
// regenerate scripted commits during history rewrites.
package engine

import (
	"context"
	"fmt"

	"github.com/huguesb/preparator/internal/git"
	"github.com/huguesb/preparator/internal/shell"
	"github.com/huguesb/preparator/internal/tui"
)

// Applier materializes a scripted step: it runs the recorded command and
// commits the resulting changes. This is the only place in the system that
// creates a commit from freshly executed output; add and replay both
// funnel through it.
type Applier struct {
	Git     git.Runner
	Shell   shell.Runner
	Confirm tui.ConfirmFunc
	Splog   *tui.Splog
}

// Apply runs command in the repository, stages its effects and commits
// them under message. Newly created untracked files are only staged after
// the operator confirms; modifications to tracked files are staged
// unconditionally. An empty resulting diff still commits (the step is a
// recorded no-op, not an error).
func (a *Applier) Apply(ctx context.Context, message, command string) error {
	before, err := a.Git.UntrackedFiles(ctx)
	if err != nil {
		return err
	}

	a.Splog.Debug("running: %s", command)
	if err := a.Shell.Run(ctx, a.Git.Root(), command); err != nil {
		return err
	}

	after, err := a.Git.UntrackedFiles(ctx)
	if err != nil {
		return err
	}

	created := newPaths(before, after)
	if len(created) > 0 {
		if err := a.stageCreated(ctx, created); err != nil {
			return err
		}
	}

	if err := a.Git.StageTracked(ctx); err != nil {
		return err
	}

	return a.Git.Commit(ctx, git.CommitOptions{
		Message:    message,
		AllowEmpty: true,
	})
}

// stageCreated shows the operator the files the command created and stages
// them on an affirmative answer. Paths are staged as literal tokens.
func (a *Applier) stageCreated(ctx context.Context, created []string) error {
	a.Splog.Info("The command created new files:")
	a.Splog.Info("%s", tui.FormatFileList(created))

	ok, err := a.Confirm(fmt.Sprintf("Include these %d file(s) in the commit?", len(created)))
	if err != nil {
		return err
	}
	if !ok {
		a.Splog.Debug("skipping %d new file(s)", len(created))
		return nil
	}
	return a.Git.StagePaths(ctx, created)
}

// newPaths returns the paths present in after but not in before
func newPaths(before, after []string) []string {
	seen := make(map[string]bool, len(before))
	for _, p := range before {
		seen[p] = true
	}
	var created []string
	for _, p := range after {
		if !seen[p] {
			created = append(created, p)
		}
	}
	return created
}
