package main

import (
	"github.com/aretw0/nfa/pkg/document"
	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage automata kept in the configured store",
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored automata",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore(app.cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		names, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		printLines(cmd.OutOrStdout(), names)
		return nil
	},
}

var storePutCmd = &cobra.Command{
	Use:   "put <name> <document>",
	Short: "Store a document under a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := document.ReadFile(args[1])
		if err != nil {
			return err
		}
		store, closeStore, err := openStore(app.cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := store.Save(cmd.Context(), args[0], a); err != nil {
			return err
		}
		app.logger.Info("stored automaton", "name", args[0], "backend", app.cfg.Store.Backend)
		return nil
	},
}

var storeGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print a stored automaton",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadOperand(cmd.Context(), storeScheme+args[0])
		if err != nil {
			return err
		}
		return emit(cmd, a)
	},
}

var storeDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored automaton",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore(app.cfg)
		if err != nil {
			return err
		}
		defer closeStore()
		return store.Delete(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeListCmd, storePutCmd, storeGetCmd, storeDeleteCmd)
	addOutputFlag(storeGetCmd)
}
