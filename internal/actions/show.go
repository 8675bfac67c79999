package actions

import (
	"context"
	"errors"

	preparatorerrors "github.com/huguesb/preparator/internal/errors"
	"github.com/huguesb/preparator/internal/runtime"
	"github.com/huguesb/preparator/internal/step"
)

// ShowAction decodes a commit and prints its step classification. A
// read-only debugging aid for the embedded step protocol.
func ShowAction(ctx context.Context, rt *runtime.Context, sel string) error {
	sha, err := rt.Resolver.Resolve(ctx, sel)
	if err != nil {
		return err
	}

	message, err := rt.Git.CommitMessage(sha)
	if err != nil {
		return err
	}

	st, err := step.Decode(message)
	if errors.Is(err, preparatorerrors.ErrNotScripted) {
		rt.Splog.Info("%s: manual commit", sha[:8])
		return nil
	}
	if err != nil {
		return err
	}

	rt.Splog.Info("%s: scripted step", sha[:8])
	rt.Splog.Info("message: %s", st.Message)
	rt.Splog.Info("command: %s", st.Command)
	return nil
}
