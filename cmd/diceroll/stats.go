package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dicenotation/internal/dice/ast"
	"github.com/KirkDiggler/dicenotation/internal/dice/parser"
	"github.com/KirkDiggler/dicenotation/internal/dice/stats"
)

var statsCount int

var statsCmd = &cobra.Command{
	Use:   "stats [expression]",
	Short: "Run the statistics driver over an expression",
	Long: `Evaluate a dice notation expression repeatedly and report the
resulting distribution. Examples:

  diceroll stats 4d6
  diceroll stats "4d6 kh3" --count 5000`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsCount, "count", stats.DefaultRuns, "number of evaluations to run")
}

func runStats(_ *cobra.Command, args []string) error {
	node, err := parser.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	env := ast.NewEnv(newRNGRoller())
	driver, err := stats.New(&stats.Config{Expression: node, Env: env})
	if err != nil {
		return fmt.Errorf("invalid driver config: %w", err)
	}

	result, err := driver.Run(context.Background(), statsCount)
	if err != nil {
		return fmt.Errorf("stats run failed: %w", err)
	}

	fmt.Printf("%s over %d runs\n", args[0], result.Count)
	fmt.Printf("  mean=%.2f stddev=%.2f min=%d max=%d\n", result.Mean, result.StdDev, result.Min, result.Max)

	if verbose {
		totals := make([]int, 0, len(result.Histogram))
		for total := range result.Histogram {
			totals = append(totals, total)
		}
		sort.Ints(totals)
		fmt.Println("  histogram:")
		for _, total := range totals {
			fmt.Printf("    %4d: %d\n", total, result.Histogram[total])
		}
	}
	return nil
}
