package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/nfa/internal/config"
	"github.com/aretw0/nfa/pkg/adapters/bolt"
	"github.com/aretw0/nfa/pkg/adapters/file"
	"github.com/aretw0/nfa/pkg/adapters/memory"
	"github.com/aretw0/nfa/pkg/adapters/redis"
	"github.com/aretw0/nfa/pkg/document"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/ports"
	"github.com/spf13/cobra"
)

const storeScheme = "store:"

// openStore opens the backend selected by cfg. The returned function releases it.
func openStore(cfg config.Config) (ports.AutomatonStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return memory.NewStore(), noop, nil
	case config.BackendFile:
		return file.New(cfg.Store.Dir), noop, nil
	case config.BackendRedis:
		s := redis.New(cfg.Store.RedisAddr, "", 0)
		return s, s.Close, nil
	case config.BackendBolt:
		s, err := bolt.Open(cfg.Store.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown store backend %q", config.ErrInvalidConfig, cfg.Store.Backend)
	}
}

// loadOperand reads a document path, or a stored automaton for store:NAME.
func loadOperand(ctx context.Context, arg string) (*domain.Automaton, error) {
	name, ok := strings.CutPrefix(arg, storeScheme)
	if !ok {
		a, err := document.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", arg, err)
		}
		return a, nil
	}

	store, closeStore, err := openStore(app.cfg)
	if err != nil {
		return nil, err
	}
	defer closeStore()
	a, err := store.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", arg, err)
	}
	return a, nil
}

// emit writes a to the --output path, or as JSON to the command's stdout.
func emit(cmd *cobra.Command, a *domain.Automaton) error {
	out, _ := cmd.Flags().GetString("output")
	if out != "" {
		if err := document.WriteFile(out, a); err != nil {
			return err
		}
		app.logger.Info("wrote automaton", "path", out, "states", a.StateCount())
		return nil
	}
	data, err := document.Marshal(a, document.FormatJSON)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Write the resulting document to this path instead of stdout")
}

func printLines(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}
