package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/jexl"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepl(cmd.InOrStdin(), cmd.OutOrStdout(), newInstance())
			return nil
		},
	}
}

// runRepl implements the REPL loop: one jexl.Jexl instance and one
// context persist across lines, so assignments in one line are visible
// to the next.
func runRepl(in io.Reader, out io.Writer, j *jexl.Jexl) {
	fmt.Fprintln(out, "jexl repl - Type :quit to exit")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	ctx := map[string]any{}

	for {
		fmt.Fprint(out, "jexl> ")
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ":quit" || line == ":q" {
			return
		}
		if strings.HasPrefix(line, ":") {
			handleReplCommand(out, line)
			continue
		}

		expr, err := j.Compile(line)
		if err != nil {
			fmt.Fprintf(out, "Parse error: %v\n", err)
			continue
		}
		// Evaluate writes assignments back into ctx, so bindings from
		// one line carry over to the next.
		result, err := expr.Evaluate(ctx)
		if err != nil {
			fmt.Fprintf(out, "Evaluation error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, formatResult(result))
	}
}

func handleReplCommand(out io.Writer, cmd string) {
	switch cmd {
	case ":help", ":h":
		fmt.Fprintln(out, "Available commands:")
		fmt.Fprintln(out, "  :help, :h    Show this help")
		fmt.Fprintln(out, "  :quit, :q    Exit the REPL")
	default:
		fmt.Fprintf(out, "Unknown command: %s\n", cmd)
		fmt.Fprintln(out, "Type :help for available commands")
	}
}
