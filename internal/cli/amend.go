package cli

import (
	"github.com/spf13/cobra"

	"github.com/huguesb/preparator/internal/actions"
	"github.com/huguesb/preparator/internal/runtime"
)

// newAmendCmd creates the amend command
func newAmendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "amend <selector> [-- <git commit args>]",
		Short: "Amend a manual commit in place and replay what followed",
		Long: `Amend a manual commit in place and replay every commit that followed it.

Arguments after '--' are passed through to the underlying
'git commit --amend'. Scripted steps cannot be amended; use 'edit' so
their command is re-recorded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtime.NewContext()
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			return actions.AmendAction(cmd.Context(), rt, actions.AmendOptions{
				Selector:  args[0],
				ExtraArgs: args[1:],
			})
		},
	}
}
