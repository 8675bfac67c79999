package cli

import (
	"github.com/spf13/cobra"

	"github.com/huguesb/preparator/internal/actions"
	"github.com/huguesb/preparator/internal/runtime"
)

// newEditCmd creates the edit command
func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <selector> [<message>] <command|file|->",
		Short: "Reset a scripted step and re-apply it with a new command",
		Long: `Reset a scripted step and re-apply it with a new command, then replay
every commit that followed it.

When the message is omitted, the step's existing message is reused.
Manual commits cannot be edited; use 'amend'.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtime.NewContext()
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			opts := actions.EditOptions{Selector: args[0]}
			if len(args) == 3 {
				opts.Message = args[1]
				opts.CommandArg = args[2]
			} else {
				opts.CommandArg = args[1]
			}
			return actions.EditAction(cmd.Context(), rt, opts)
		},
	}
}
