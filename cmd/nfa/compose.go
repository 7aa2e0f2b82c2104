package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/aretw0/nfa/pkg/compose"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose <operation> <left> [right]",
	Short: "Combine automata",
	Long: dedent.Dedent(`
		Combines automata with one of:

		  concatenation <left> <right>   the language of left followed by right
		  alternation <left> <right>     the union of both languages
		  iteration <operand>            Kleene star
		  iteration_plus <operand>       Kleene plus

		States of the right operand that clash with the left one are renamed,
		unless --reject-overlap is given.`),
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		op := compose.Operation(args[0])

		opts := []compose.Option{compose.WithLogger(app.logger)}
		if reject, _ := cmd.Flags().GetBool("reject-overlap"); reject {
			opts = append(opts, compose.WithOverlapPolicy(compose.OverlapReject))
		}
		engine := compose.New(opts...)

		binary := op == compose.OpConcatenation || op == compose.OpAlternation
		switch {
		case binary && len(args) != 3:
			return fmt.Errorf("%s needs two operands", op)
		case !binary && op != compose.OpIteration && op != compose.OpIterationPlus:
			return fmt.Errorf("unknown operation %q", op)
		case !binary && len(args) != 2:
			return fmt.Errorf("%s takes one operand", op)
		}

		operands := make([]*domain.Automaton, 0, 2)
		for _, arg := range args[1:] {
			a, err := loadOperand(ctx, arg)
			if err != nil {
				return err
			}
			operands = append(operands, a)
		}

		var (
			res *compose.Result
			err error
		)
		switch op {
		case compose.OpConcatenation:
			res, err = engine.Concatenation(operands[0], operands[1])
		case compose.OpAlternation:
			res, err = engine.Alternation(operands[0], operands[1])
		case compose.OpIteration:
			res, err = engine.Iteration(operands[0])
		case compose.OpIterationPlus:
			res, err = engine.IterationPlus(operands[0])
		}
		if err != nil {
			return err
		}

		for _, from := range slices.Sorted(maps.Keys(res.Renamed)) {
			app.logger.Info("renamed state", "from", from, "to", res.Renamed[from])
		}
		return emit(cmd, res.Automaton)
	},
}

func init() {
	rootCmd.AddCommand(composeCmd)
	addOutputFlag(composeCmd)
	composeCmd.Flags().Bool("reject-overlap", false, "Fail instead of renaming when operands share state names")
}
