package cli

import (
	"github.com/spf13/cobra"

	"github.com/huguesb/preparator/internal/actions"
	"github.com/huguesb/preparator/internal/runtime"
)

// newRebaseCmd creates the rebase command
func newRebaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebase [<newBase> [<branch>]]",
		Short: "Rewrite a branch onto a new base from its fork point",
		Long: `Rewrite a branch onto a new base from its fork point.

newBase defaults to the configured reference base branch; branch defaults
to the current branch. Manual commits are cherry-picked, scripted steps
are regenerated against the new base. The branch ref is only updated once
the whole rewrite succeeds.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtime.NewContext()
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			opts := actions.RebaseOptions{}
			if len(args) > 0 {
				opts.NewBase = args[0]
			}
			if len(args) > 1 {
				opts.Branch = args[1]
			}
			return actions.RebaseAction(cmd.Context(), rt, opts)
		},
	}
}
