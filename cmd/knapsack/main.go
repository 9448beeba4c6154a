// Command knapsack is the CLI driver for the knapsack solver library: a
// `generate` subcommand for producing random problem instances, and a
// `solve` subcommand for running one of the three solvers against a problem
// file. Grounded on original_source/src/main.rs's two-subcommand shape,
// restructured around github.com/spf13/cobra per the pack's CLI convention.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "knapsack: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	root := newRootCommand(logger)
	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCommand(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "knapsack",
		Short:         "Generate and solve 0/1 knapsack problem instances",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCommand(logger))
	root.AddCommand(newSolveCommand(logger))
	return root
}
