package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/nfa/internal/config"
	"github.com/aretw0/nfa/internal/logging"
	"github.com/joho/godotenv"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

// app holds what the persistent pre-run resolved for the running command.
var app struct {
	cfg    config.Config
	logger *slog.Logger
}

var rootCmd = &cobra.Command{
	Use:   "nfa",
	Short: "nfa composes and inspects nondeterministic finite automata",
	Long: dedent.Dedent(`
		nfa builds automata from JSON or YAML documents with concatenation,
		alternation and Kleene closure, prunes unreachable states, and exports
		Graphviz or Mermaid diagrams.

		An operand is a document path, or store:NAME for an automaton kept in
		the configured store.`),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides config)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Environment file loaded before reading the configuration")
}

func setup(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cmd.Context(), path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
	return nil
}
