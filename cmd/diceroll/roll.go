package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dicenotation/internal/dice/ast"
	"github.com/KirkDiggler/dicenotation/internal/dice/parser"
	"github.com/KirkDiggler/dicenotation/internal/dice/roller"
)

var rollCmd = &cobra.Command{
	Use:   "roll [expression]",
	Short: "Parse and evaluate a single dice notation expression",
	Long: `Evaluate a dice notation expression once and print its summary. Examples:

  diceroll roll 4d6
  diceroll roll "4d6 kh3"
  diceroll roll "9d6!" --deterministic --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runRoll,
}

func runRoll(_ *cobra.Command, args []string) error {
	node, err := parser.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	env := ast.NewEnv(newRNGRoller())
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

// newRNGRoller returns the secure-by-default RNG roller unless
// --deterministic was set, in which case it seeds from --seed.
func newRNGRoller() roller.Roller {
	if useSeed {
		return roller.NewFromSeed(seed)
	}
	return roller.NewSecure()
}
