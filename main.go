package main

import (
	"github.com/lam-lang/lam/cmd"
	"github.com/spf13/cobra"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "lam [subcommand]",
	Short:        "lam λ\n a minimal typed lambda calculus with type inference",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.ReplCmd)
	rootCmd.AddCommand(cmd.CheckCmd)
}
