// Package selector resolves user-facing commit references to canonical SHAs.
//
// Three shapes are recognized:
//
//	+n  the n-th commit (0-based) after the fork point with the reference
//	    base branch, oldest first
//	-n  the commit n steps behind the current tip (-0 is the tip)
//	*   anything else is resolved as a commit-ish (branch, tag, sha, ...)
//
// Resolution is a pure read of repository state; it never mutates.
package selector

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	preparatorerrors "github.com/huguesb/preparator/internal/errors"
	"github.com/huguesb/preparator/internal/git"
)

// Resolver resolves selectors against a repository and a reference base branch
type Resolver struct {
	Git  git.Runner
	Base string
}

// Resolve turns a selector string into a full commit SHA
func (r *Resolver) Resolve(ctx context.Context, sel string) (string, error) {
	switch {
	case strings.HasPrefix(sel, "+"):
		if n, err := strconv.Atoi(sel[1:]); err == nil && n >= 0 {
			return r.resolveAfterForkPoint(ctx, sel, n)
		}
	case strings.HasPrefix(sel, "-"):
		if n, err := strconv.Atoi(sel[1:]); err == nil && n >= 0 {
			return r.resolveBehindTip(sel, n)
		}
	}
	return r.resolveCommitish(sel)
}

// resolveAfterForkPoint resolves +n: the n-th commit strictly after the fork
// point between the current branch and the reference base, oldest first.
func (r *Resolver) resolveAfterForkPoint(ctx context.Context, sel string, n int) (string, error) {
	branch, err := r.Git.CurrentBranch()
	if err != nil {
		return "", preparatorerrors.NewSelectorError(sel, err)
	}

	forkPoint, err := r.Git.ForkPoint(ctx, r.Base, branch)
	if err != nil {
		return "", preparatorerrors.NewSelectorError(sel, err)
	}

	commits, err := r.Git.CommitsBetween(ctx, forkPoint, branch)
	if err != nil {
		return "", preparatorerrors.NewSelectorError(sel, err)
	}

	if n >= len(commits) {
		return "", preparatorerrors.NewSelectorError(sel,
			fmt.Errorf("%w: only %d commits after the fork point with %s",
				preparatorerrors.ErrOutOfRange, len(commits), r.Base))
	}
	return commits[n], nil
}

// resolveBehindTip resolves -n: the commit n first-parent steps behind HEAD
func (r *Resolver) resolveBehindTip(sel string, n int) (string, error) {
	sha, err := r.Git.CommitSHA("HEAD", n)
	if err != nil {
		return "", preparatorerrors.NewSelectorError(sel, err)
	}
	return sha, nil
}

// resolveCommitish delegates to the repository's own commit-ish resolution
func (r *Resolver) resolveCommitish(sel string) (string, error) {
	sha, err := r.Git.Revision(sel)
	if err != nil {
		return "", preparatorerrors.NewSelectorError(sel, err)
	}
	return sha, nil
}
