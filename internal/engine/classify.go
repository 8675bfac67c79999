package engine

import (
	preparatorerrors "github.com/huguesb/preparator/internal/errors"
	"github.com/huguesb/preparator/internal/git"
	"github.com/huguesb/preparator/internal/step"
)

// EnsureManual verifies that a commit is not a scripted step. amend only
// operates on manual commits; scripted ones must be edited so their
// command is re-recorded.
func EnsureManual(g git.Runner, sha string) error {
	message, err := g.CommitMessage(sha)
	if err != nil {
		return err
	}
	if step.IsScripted(message) {
		return preparatorerrors.NewWrongStateError(sha, "is a scripted step", "preparator edit")
	}
	return nil
}

// EnsureScripted verifies that a commit is a scripted step and returns its
// decoded form. edit only operates on scripted commits; manual ones must
// be amended.
func EnsureScripted(g git.Runner, sha string) (*step.Step, error) {
	message, err := g.CommitMessage(sha)
	if err != nil {
		return nil, err
	}
	st, err := step.Decode(message)
	if err != nil {
		return nil, preparatorerrors.NewWrongStateError(sha, "is not a scripted step", "preparator amend")
	}
	return st, nil
}
