// Command jexl is a command-line evaluator and REPL for the expression
// language.
//
// Examples:
//
//	jexl eval '1 + 2'
//	jexl eval -c '{"age":20}' '`Status: ${age >= 18 ? "adult" : "minor"}`'
//	jexl repl
package main

import (
	"fmt"
	"os"

	"github.com/conneroisu/jexl/cmd/jexl/internal/cli"
)

func main() {
	if err := cli.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
