package cli

import (
	"github.com/spf13/cobra"

	"github.com/huguesb/preparator/internal/actions"
	"github.com/huguesb/preparator/internal/runtime"
)

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <message> <command|file|->",
		Short: "Record a new scripted step on top of HEAD",
		Long: `Record a new scripted step on top of HEAD.

The command argument is the literal command text, the path of a file
containing the command, or '-' to read the command from standard input.
Requires a clean working tree.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := runtime.NewContext()
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			return actions.AddAction(cmd.Context(), rt, actions.AddOptions{
				Message:    args[0],
				CommandArg: args[1],
			})
		},
	}
}
