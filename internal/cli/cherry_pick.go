package cli

import (
	"github.com/spf13/cobra"

	"github.com/huguesb/preparator/internal/actions"
	"github.com/huguesb/preparator/internal/runtime"
)

// newCherryPickCmd creates the cherry-pick command
func newCherryPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cherry-pick <commit> [<last>]",
		Short: "Replay a commit or an inclusive range onto HEAD",
		Long: `Replay a commit or an inclusive range of commits onto HEAD.

Manual commits are cherry-picked natively, preserving their exact diff.
Scripted steps are regenerated by re-running their recorded command
against the current tree.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtime.NewContext()
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			opts := actions.CherryPickOptions{First: args[0]}
			if len(args) == 2 {
				opts.Last = args[1]
			}
			return actions.CherryPickAction(cmd.Context(), rt, opts)
		},
	}
}
