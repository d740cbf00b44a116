// Package main is the entry point for the trainsim CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	tablesPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "trainsim",
	Short: "Skill training simulator",
	Long: `trainsim answers the two questions a training player asks:
how many exercise weapons to reach a target skill level, and where a
given purchase of weapons will leave a skill.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tablesPath, "tables", "", "YAML rule-table override file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(gainCmd)
	rootCmd.AddCommand(checkCmd)
}
