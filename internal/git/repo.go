package git

import (
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	preparatorerrors "github.com/huguesb/preparator/internal/errors"
)

// Repo combines a subprocess command runner (for mutations) with a go-git
// handle (for graph reads) over a single repository.
type Repo struct {
	root   string
	runner *CommandRunner
	repo   *gogit.Repository
}

// Open opens the repository containing the given directory
func Open(dir string) (*Repo, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	root := worktree.Filesystem.Root()

	return &Repo{
		root:   root,
		runner: NewCommandRunner(root),
		repo:   repo,
	}, nil
}

// Root returns the root directory of the repository
func (r *Repo) Root() string {
	return r.root
}

// Revision resolves a commit-ish (branch, tag, sha, HEAD~n, ...) to a full SHA.
// Returns ErrCommitNotFound if nothing resolves.
func (r *Repo) Revision(ref string) (string, error) {
	hash, err := r.resolveRefHash(ref)
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

// CommitSHA returns the SHA at a first-parent offset behind a ref (0 = the ref itself)
func (r *Repo) CommitSHA(ref string, offset int) (string, error) {
	if offset < 0 {
		return "", fmt.Errorf("offset must be non-negative")
	}

	hash, err := r.resolveRefHash(ref)
	if err != nil {
		return "", err
	}

	commit, err := r.repo.CommitObject(hash)
	if err != nil {
		return "", fmt.Errorf("failed to get commit: %w", err)
	}

	for i := 0; i < offset; i++ {
		if commit.NumParents() == 0 {
			return "", fmt.Errorf("%w: only %d commits behind %s", preparatorerrors.ErrOutOfRange, i, ref)
		}
		commit, err = commit.Parent(0)
		if err != nil {
			return "", fmt.Errorf("failed to get parent commit: %w", err)
		}
	}

	return commit.Hash.String(), nil
}

// CommitMessage returns the full raw message of a commit
func (r *Repo) CommitMessage(sha string) (string, error) {
	commit, err := r.commitObject(sha)
	if err != nil {
		return "", err
	}
	return commit.Message, nil
}

// ParentSHA returns the first parent of a commit, or ErrCommitNotFound for a root commit
func (r *Repo) ParentSHA(sha string) (string, error) {
	commit, err := r.commitObject(sha)
	if err != nil {
		return "", err
	}
	if commit.NumParents() == 0 {
		return "", fmt.Errorf("%w: %s has no parent", preparatorerrors.ErrCommitNotFound, sha)
	}
	parent, err := commit.Parent(0)
	if err != nil {
		return "", fmt.Errorf("failed to get parent commit: %w", err)
	}
	return parent.Hash.String(), nil
}

// IsAncestor checks if the first revision is an ancestor of the second
func (r *Repo) IsAncestor(ancestor, descendant string) (bool, error) {
	ancestorHash, err := r.resolveRefHash(ancestor)
	if err != nil {
		return false, err
	}
	descendantHash, err := r.resolveRefHash(descendant)
	if err != nil {
		return false, err
	}

	if ancestorHash == descendantHash {
		return true, nil
	}

	ancestorCommit, err := r.repo.CommitObject(ancestorHash)
	if err != nil {
		return false, fmt.Errorf("failed to get ancestor commit: %w", err)
	}
	descendantCommit, err := r.repo.CommitObject(descendantHash)
	if err != nil {
		return false, fmt.Errorf("failed to get descendant commit: %w", err)
	}

	return ancestorCommit.IsAncestor(descendantCommit)
}

func (r *Repo) commitObject(ref string) (*object.Commit, error) {
	hash, err := r.resolveRefHash(ref)
	if err != nil {
		return nil, err
	}
	commit, err := r.repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit %s: %w", hash, err)
	}
	return commit, nil
}

// resolveRefHash resolves a ref string to a commit hash, trying reference
// forms before falling back to revision expressions.
func (r *Repo) resolveRefHash(ref string) (plumbing.Hash, error) {
	// 1. Try as a full reference name
	if ok := strings.HasPrefix(ref, "refs/"); ok {
		if res, err := r.repo.Reference(plumbing.ReferenceName(ref), true); err == nil {
			return res.Hash(), nil
		}
	}

	// 2. Try as a local branch
	if res, err := r.repo.Reference(plumbing.ReferenceName("refs/heads/"+ref), true); err == nil {
		return res.Hash(), nil
	}

	// 3. Try as a tag
	if res, err := r.repo.Reference(plumbing.ReferenceName("refs/tags/"+ref), true); err == nil {
		return res.Hash(), nil
	}

	// 4. Try ResolveRevision (handles SHAs, short SHAs, and expressions like HEAD~1)
	hash, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err == nil {
		return *hash, nil
	}

	return plumbing.ZeroHash, fmt.Errorf("%w: %s", preparatorerrors.ErrCommitNotFound, ref)
}
