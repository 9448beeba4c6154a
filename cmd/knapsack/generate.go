package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sallysoul/knapsack/generator"
	"github.com/sallysoul/knapsack/problemio"
)

func newGenerateCommand(logger *zap.Logger) *cobra.Command {
	var (
		correlationFlag string
		coeff           float64
		valueOffset     uint64
		itemCount       uint64
		capacity        uint64
		hasCapacity     bool
		capacityRatio   float64
		weightLower     uint64
		valueLower      uint64
		weightUpper     uint64
		valueUpper      uint64
		outputPath      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random problem instance and write it to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			correlation, err := parseCorrelation(correlationFlag)
			if err != nil {
				return err
			}

			opts := generator.GenerateOptions{
				Correlation:      correlation,
				Coeff:            coeff,
				ValueOffset:      valueOffset,
				ItemCount:        itemCount,
				CapacityRatio:    capacityRatio,
				WeightLowerBound: weightLower,
				ValueLowerBound:  valueLower,
				WeightUpperBound: weightUpper,
				ValueUpperBound:  valueUpper,
			}
			if hasCapacity {
				opts.Capacity = &capacity
			}

			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			problem, err := generator.Generate(opts, rng)
			if err != nil {
				return errors.Wrap(err, "generate problem")
			}

			out, err := os.Create(outputPath)
			if err != nil {
				return errors.Wrapf(err, "create output file %q", outputPath)
			}
			defer out.Close()

			if err := problemio.Write(out, problem); err != nil {
				return errors.Wrap(err, "write problem file")
			}

			var weightSum uint64
			for _, item := range problem.Items {
				weightSum += item.Weight
			}
			fmt.Printf("Weight Sum: %d, Capacity: %d\n", weightSum, problem.Capacity)

			logger.Info("generated problem instance",
				zap.String("correlation", correlationFlag),
				zap.Uint64("item_count", itemCount),
				zap.Uint64("capacity", problem.Capacity),
				zap.String("output_path", outputPath),
			)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&correlationFlag, "correlation", "None", "Correlation mode: None, Some, or Strong")
	flags.Float64Var(&coeff, "coeff", 0.5, "Correlation coefficient for the Some mode")
	flags.Uint64Var(&valueOffset, "value-offset", 0, "Fixed value offset for the Strong mode")
	flags.Uint64VarP(&itemCount, "item-count", "n", 30, "Number of items to generate")
	flags.Uint64VarP(&capacity, "capacity", "c", 0, "Explicit knapsack capacity; if unset, derived from --capacity-ratio")
	flags.Float64Var(&capacityRatio, "capacity-ratio", 0.5, "Capacity as a ratio of the total generated weight")
	flags.Uint64Var(&weightLower, "weight-lower-bound", 1, "Lower bound on generated item weight")
	flags.Uint64Var(&valueLower, "value-lower-bound", 0, "Lower bound on generated item value")
	flags.Uint64Var(&weightUpper, "weight-upper-bound", 100, "Upper bound on generated item weight")
	flags.Uint64VarP(&valueUpper, "value-upper-bound", "v", 100, "Upper bound on generated item value")
	flags.StringVarP(&outputPath, "output-path", "o", "", "Path to write the generated problem file")
	cmd.MarkFlagRequired("output-path") //nolint:errcheck

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		hasCapacity = cmd.Flags().Changed("capacity")
	}

	return cmd
}

func parseCorrelation(s string) (generator.Correlation, error) {
	switch s {
	case "None":
		return generator.None, nil
	case "Some":
		return generator.Some, nil
	case "Strong":
		return generator.Strong, nil
	default:
		return 0, errors.Errorf("unknown correlation %q: want None, Some, or Strong", s)
	}
}
