// Package errors provides sentinel errors and custom error types for the preparator application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrDirtyWorkTree indicates uncommitted local modifications
	ErrDirtyWorkTree = errors.New("working tree has uncommitted changes")

	// ErrCommitNotFound indicates that a selector names no existing commit
	ErrCommitNotFound = errors.New("commit not found")

	// ErrBranchNotFound indicates that a named local branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrOutOfRange indicates that a +n selector index exceeds the commits after the fork point
	ErrOutOfRange = errors.New("selector index out of range")

	// ErrCommandFailed indicates that a scripted command exited non-zero
	ErrCommandFailed = errors.New("scripted command failed")

	// ErrCherryPickConflict indicates that a native cherry-pick stopped on a conflict
	ErrCherryPickConflict = errors.New("cherry-pick conflict")

	// ErrNotScripted indicates that a commit message carries no scripted-step marker
	ErrNotScripted = errors.New("commit is not a scripted step")
)

// SelectorError represents a failure to resolve a commit selector
type SelectorError struct {
	Selector string
	Err      error
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("cannot resolve %q: %v", e.Selector, e.Err)
}

func (e *SelectorError) Unwrap() error {
	return e.Err
}

// NewSelectorError creates a new SelectorError
func NewSelectorError(selector string, err error) *SelectorError {
	return &SelectorError{Selector: selector, Err: err}
}

// CommandFailedError represents a scripted command that exited non-zero
type CommandFailedError struct {
	Command  string
	ExitCode int
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("command exited with status %d: %s", e.ExitCode, summarize(e.Command))
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandFailedError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewCommandFailedError creates a new CommandFailedError
func NewCommandFailedError(command string, exitCode int) *CommandFailedError {
	return &CommandFailedError{Command: command, ExitCode: exitCode}
}

// WrongStateError is returned when amend is used on a scripted commit or
// edit on a manual one. Suggestion names the command that would work.
type WrongStateError struct {
	Commit     string
	Reason     string
	Suggestion string
}

func (e *WrongStateError) Error() string {
	return fmt.Sprintf("%s %s; use '%s' instead", shortSha(e.Commit), e.Reason, e.Suggestion)
}

// NewWrongStateError creates a new WrongStateError
func NewWrongStateError(commit, reason, suggestion string) *WrongStateError {
	return &WrongStateError{Commit: commit, Reason: reason, Suggestion: suggestion}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// summarize truncates a multi-line or long command for one-line diagnostics
func summarize(command string) string {
	line := command
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i] + " ..."
	}
	if len(line) > 80 {
		line = line[:77] + "..."
	}
	return line
}

func shortSha(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}
