package main

import (
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random automaton",
	Long: `Generates a reproducible random automaton with states q0..qN-1, start state q0
and symbols a, b, c... Knobs default to the random section of the configuration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.cfg.RandomConfig()
		flags := cmd.Flags()
		if flags.Changed("states") {
			cfg.States, _ = flags.GetInt("states")
		}
		if flags.Changed("symbols") {
			cfg.AlphabetSize, _ = flags.GetInt("symbols")
		}
		if flags.Changed("density") {
			cfg.Density, _ = flags.GetFloat64("density")
		}
		if flags.Changed("accept-ratio") {
			cfg.AcceptRatio, _ = flags.GetFloat64("accept-ratio")
		}
		if flags.Changed("seed") {
			cfg.Seed, _ = flags.GetUint64("seed")
		}

		a, err := domain.Random(cfg)
		if err != nil {
			return err
		}
		return emit(cmd, a)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addOutputFlag(generateCmd)
	generateCmd.Flags().Int("states", 0, "Number of states")
	generateCmd.Flags().Int("symbols", 0, "Alphabet size")
	generateCmd.Flags().Float64("density", 0, "Probability of each possible transition, in [0, 1]")
	generateCmd.Flags().Float64("accept-ratio", 0, "Probability that a state accepts, in [0, 1]")
	generateCmd.Flags().Uint64("seed", 0, "Random seed")
}
