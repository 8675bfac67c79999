package actions

import (
	"context"

	"github.com/huguesb/preparator/internal/runtime"
	"github.com/huguesb/preparator/internal/step"
)

// AddOptions contains options for the add action
type AddOptions struct {
	Message    string
	CommandArg string
}

// AddAction records a new scripted step: it encodes the message and
// command into a step blob, runs the command and commits its output on
// top of HEAD.
func AddAction(ctx context.Context, rt *runtime.Context, opts AddOptions) error {
	if err := RequireCleanTree(ctx, rt.Git); err != nil {
		return err
	}

	command, err := ReadCommandArg(opts.CommandArg)
	if err != nil {
		return err
	}

	blob := step.Encode(opts.Message, command)
	if err := rt.Applier.Apply(ctx, blob, command); err != nil {
		return err
	}

	rt.Splog.Info("recorded scripted step: %s", opts.Message)
	return nil
}
