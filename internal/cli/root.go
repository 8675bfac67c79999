// Package cli defines the preparator command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "preparator",
		Short: "Preparator manages commits whose content is the output of a recorded command",
		Long: `Preparator manages a hybrid commit history in which some commits are
scripted steps: commits whose content is the deterministic output of
re-running a recorded command. Rebasing, cherry-picking or editing a
branch regenerates scripted commits against the new base instead of
replaying them as frozen diffs.`,
		SilenceErrors: true,
		// Arg validation runs before this hook, so argument misuse still
		// prints usage; errors from RunE do not.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
		},
	}

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newCherryPickCmd())
	rootCmd.AddCommand(newRebaseCmd())
	rootCmd.AddCommand(newAmendCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
