package main

import (
	"fmt"

	"github.com/aretw0/nfa/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <automaton>",
	Short: "Summarize an automaton",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadOperand(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		md := tui.Describe(baseName(args[0]), a)

		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			_, err = fmt.Fprint(cmd.OutOrStdout(), md)
			return err
		}
		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		out, err := render(md)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("raw", false, "Print markdown without terminal styling")
}
