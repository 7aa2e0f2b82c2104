package main

import (
	"fmt"

	"github.com/aretw0/nfa/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var acceptsCmd = &cobra.Command{
	Use:   "accepts <automaton> [symbol]...",
	Short: "Check whether the automaton accepts a word",
	Long: `Runs the automaton on the given symbols, one argument per symbol.
With no symbols the empty word is checked. The exit status is non-zero when
--strict is set and the word is rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadOperand(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		word := args[1:]
		if a.Accepts(word...) {
			fmt.Fprintln(cmd.OutOrStdout(), tui.Success("accepted"))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), tui.Warning("rejected"))
		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			return fmt.Errorf("word %v rejected", word)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(acceptsCmd)
	acceptsCmd.Flags().Bool("strict", false, "Fail when the word is rejected")
}
