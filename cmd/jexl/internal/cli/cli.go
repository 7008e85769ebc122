// Package cli wires the jexl command's root/eval/repl command tree on
// top of cobra.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/jexl"
)

// cacheSize is shared between eval and repl via a persistent flag on the
// root command.
var cacheSize int

// Root builds the jexl root command with its eval and repl subcommands
// attached.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "jexl",
		Short: "jexl evaluates expressions in the jexl expression language",
		Long: "jexl is a small, embeddable expression language: a pure\n" +
			"evaluator over a host-supplied variable context.",
	}
	root.PersistentFlags().IntVar(&cacheSize, "cache-size", 0,
		"compiled-expression LRU cache capacity (0 disables caching)")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newReplCmd())
	return root
}

func newInstance() *jexl.Jexl {
	if cacheSize <= 0 {
		return jexl.New()
	}
	return jexl.New(jexl.WithCache(cacheSize))
}

func newEvalCmd() *cobra.Command {
	var contextJSON string

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a single expression and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := parseContext(contextJSON)
			if err != nil {
				return err
			}
			result, err := newInstance().Evaluate(args[0], ctx)
			if err != nil {
				return fmt.Errorf("evaluation error: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatResult(result))
			return nil
		},
	}
	cmd.Flags().StringVarP(&contextJSON, "context", "c", "",
		"JSON object supplying the evaluation context")
	return cmd
}

// parseContext decodes a JSON object string into the map the facade's
// Evaluate expects. An empty string yields a nil (empty) context.
func parseContext(raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}
	var ctx map[string]any
	if err := json.Unmarshal([]byte(raw), &ctx); err != nil {
		return nil, fmt.Errorf("invalid --context JSON: %w", err)
	}
	return ctx, nil
}

func formatResult(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
