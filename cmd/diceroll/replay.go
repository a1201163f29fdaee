package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dicenotation/internal/dice/ast"
	"github.com/KirkDiggler/dicenotation/internal/dice/parser"
	"github.com/KirkDiggler/dicenotation/internal/dice/roller"
)

var replayCmd = &cobra.Command{
	Use:   "replay [expression] [outcome...]",
	Short: "Evaluate an expression against a fixed sequence of outcomes",
	Long: `Evaluate a dice notation expression against a PreRolled roller
seeded with the given outcomes, for reproducing a documented sequence.
Example:

  diceroll replay 4d6 6 2 1 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	node, err := parser.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	queue := make([]int, 0, len(args)-1)
	for _, a := range args[1:] {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid outcome %q: %w", a, err)
		}
		queue = append(queue, v)
	}

	env := ast.NewEnv(roller.NewPreRolled(queue))
	summary, err := ast.Evaluate(context.Background(), env, node)
	if err != nil {
		return fmt.Errorf("eval error: %w", err)
	}

	fmt.Println(summary.String())
	if verbose {
		fmt.Println(summary.Dump())
	}
	return nil
}
