// Package git provides a wrapper around git commands and go-git for repository operations.
package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	preparatorerrors "github.com/huguesb/preparator/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner rooted at the given directory
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, args...)
}

// RunLines executes a git command and returns output as lines
func (r *CommandRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// RunInteractive executes a git command with stdin/stdout/stderr connected
// to the terminal. Used for amend, where git may open an editor.
func (r *CommandRunner) RunInteractive(args ...string) error {
	cmd := exec.Command("git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return preparatorerrors.NewGitCommandError("git", args, "", "", err)
	}
	return nil
}

// runInternal is the internal implementation that handles timeouts
func (r *CommandRunner) runInternal(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", preparatorerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", preparatorerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Runner defines the interface for git operations used by the engines.
// This allows the engines to be used with both a real repository and mock
// implementations. *Repo is the standard implementation.
type Runner interface {
	// Repository information
	Root() string
	CurrentBranch() (string, error)

	// Commit and revision information
	Revision(ref string) (string, error)
	CommitSHA(ref string, offset int) (string, error)
	CommitMessage(sha string) (string, error)
	ParentSHA(sha string) (string, error)
	IsAncestor(ancestor, descendant string) (bool, error)
	ForkPoint(ctx context.Context, base, branch string) (string, error)
	MergeBase(rev1, rev2 string) (string, error)
	CommitsBetween(ctx context.Context, startExclusive, endInclusive string) ([]string, error)
	AllCommits(ctx context.Context, endInclusive string) ([]string, error)

	// Branch management
	BranchExists(branchName string) bool
	CreateAndCheckoutBranchAt(ctx context.Context, branchName, revision string) error
	ForceRenameBranch(ctx context.Context, oldName, newName string) error

	// Working tree and commit creation
	IsWorkTreeClean(ctx context.Context) (bool, error)
	UntrackedFiles(ctx context.Context) ([]string, error)
	StagePaths(ctx context.Context, paths []string) error
	StageTracked(ctx context.Context) error
	Commit(ctx context.Context, opts CommitOptions) error
	AmendCommit(extraArgs []string) error
	HardReset(ctx context.Context, revision string) error

	// Replay
	CherryPick(ctx context.Context, sha string) error
	IsCherryPickInProgress(ctx context.Context) bool
}

var _ Runner = (*Repo)(nil)
