// Package main provides a command-line client exercising the dice
// notation engine: single rolls, statistics runs, and deterministic
// replay against a fixed sequence of outcomes.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

var (
	seed    uint64
	useSeed bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "diceroll",
	Short: "Evaluate dice notation expressions",
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed the RNG roller for a reproducible run")
	rootCmd.PersistentFlags().BoolVar(&useSeed, "deterministic", false, "use --seed instead of the secure RNG")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "dump the full detailed result tree")

	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(replayCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
