package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/nfa/internal/presentation/graph"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var renderers = map[string]struct {
	ext    string
	render func(*domain.Automaton) string
}{
	"dot":     {".dot", graph.GenerateDOT},
	"mermaid": {".mmd", graph.GenerateMermaid},
}

var exportCmd = &cobra.Command{
	Use:   "export <automaton>...",
	Short: "Export the automaton graph visualization",
	Long: `Renders automata as Graphviz DOT (default) or Mermaid diagrams.
With a single operand and no --out-dir the diagram is printed; otherwise each
operand is written to --out-dir under its base name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outDir, _ := cmd.Flags().GetString("out-dir")

		r, ok := renderers[format]
		if !ok {
			return fmt.Errorf("unknown format %q (want dot or mermaid)", format)
		}

		if outDir == "" {
			if len(args) > 1 {
				return fmt.Errorf("exporting %d automata needs --out-dir", len(args))
			}
			a, err := loadOperand(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), r.render(a))
			return err
		}

		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		paths := make(map[string]string, len(args))
		for _, arg := range args {
			path := filepath.Join(outDir, baseName(arg)+r.ext)
			if prev, ok := paths[path]; ok {
				return fmt.Errorf("%s and %s would both be exported to %s", prev, arg, path)
			}
			paths[path] = arg
		}

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(4)
		for path, arg := range paths {
			g.Go(func() error {
				a, err := loadOperand(ctx, arg)
				if err != nil {
					return err
				}
				if err := os.WriteFile(path, []byte(r.render(a)), 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				app.logger.Info("exported automaton", "source", arg, "path", path)
				return nil
			})
		}
		return g.Wait()
	},
}

// baseName names the exported file after the operand: the store name or the
// document file name without its extension.
func baseName(arg string) string {
	if name, ok := strings.CutPrefix(arg, storeScheme); ok {
		return name
	}
	base := filepath.Base(arg)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("format", "f", "dot", "Diagram format: dot or mermaid")
	exportCmd.Flags().String("out-dir", "", "Directory receiving one diagram per operand")
}
