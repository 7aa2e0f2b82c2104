package main

import (
	"github.com/spf13/cobra"
)

var pruneCmd = &cobra.Command{
	Use:   "prune <automaton>",
	Short: "Remove states that cannot be reached from the start state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadOperand(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		removed := a.PruneUnreachable()
		app.logger.Info("pruned automaton", "removed", len(removed), "states", a.StateCount())
		return emit(cmd, a)
	},
}

var unreachableCmd = &cobra.Command{
	Use:   "unreachable <automaton>",
	Short: "List states that cannot be reached from the start state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadOperand(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printLines(cmd.OutOrStdout(), a.UnreachableStates())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(unreachableCmd)
	addOutputFlag(pruneCmd)
}
