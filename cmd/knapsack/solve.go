package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sallysoul/knapsack"
	"github.com/sallysoul/knapsack/problemio"
)

func newSolveCommand(logger *zap.Logger) *cobra.Command {
	var (
		solverFlag      string
		noPrintSolution bool
		inputFile       string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a problem instance with the chosen solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := os.Stdin
			if inputFile != "" {
				f, err := os.Open(inputFile)
				if err != nil {
					return errors.Wrapf(err, "open input file %q", inputFile)
				}
				defer f.Close()
				input = f
			}

			problem, err := problemio.Read(input)
			if err != nil {
				return errors.Wrap(err, "read problem file")
			}

			greedy, err := knapsack.Greedy(problem)
			if err != nil {
				return errors.Wrap(err, "compute greedy reference solution")
			}

			solution, err := solveWith(solverFlag, problem, greedy, logger)
			if err != nil {
				return err
			}

			if !noPrintSolution {
				for i, item := range problem.Items {
					fmt.Printf("%d\t%t\t%t\n", item.ID, solution.Decision[i], greedy.Decision[i])
				}
			}

			fmt.Printf("Solver Used: %s, Solution Value: %d, Solution Weight: %d, Target Capacity: %d, Unused Capacity: %d\n",
				solverFlag, solution.Value, solution.Weight, problem.Capacity, problem.Capacity-solution.Weight)

			logger.Info("solved problem instance",
				zap.String("solver", solverFlag),
				zap.Uint64("value", solution.Value),
				zap.Uint64("weight", solution.Weight),
				zap.Uint64("capacity", problem.Capacity),
			)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&solverFlag, "solver", "s", "Minknap", "Solver to use: Greedy, Dynamic, or Minknap")
	flags.BoolVarP(&noPrintSolution, "no-print-solution", "n", false, "Suppress per-item decision lines")
	flags.StringVarP(&inputFile, "input-file", "i", "", "Problem file to read; defaults to standard input")

	return cmd
}

func solveWith(solverFlag string, problem knapsack.Problem, greedy knapsack.Solution, logger *zap.Logger) (knapsack.Solution, error) {
	switch solverFlag {
	case "Greedy":
		return greedy, nil
	case "Dynamic":
		sol, err := knapsack.DynamicProgram(problem)
		if err != nil {
			return knapsack.Solution{}, errors.Wrap(err, "dynamic program solve")
		}
		return sol, nil
	case "Minknap":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		sol, err := knapsack.Solve(ctx, problem, knapsack.WithLogger(logger.Sugar()))
		if err != nil {
			return knapsack.Solution{}, errors.Wrap(err, "minknap solve")
		}
		return sol, nil
	default:
		return knapsack.Solution{}, errors.Errorf("unknown solver %q: want Greedy, Dynamic, or Minknap", solverFlag)
	}
}
