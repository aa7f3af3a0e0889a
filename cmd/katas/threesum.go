package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/katas/internal/render"
	"github.com/katalvlaran/katas/sums"
)

// sampleNums is used when threesum is run without arguments.
var sampleNums = []int{-1, 0, 1, 2, -1, -4}

type threeSumResult struct {
	Input    []int          `json:"input" yaml:"input"`
	Triplets []sums.Triplet `json:"triplets" yaml:"triplets"`
}

func (r threeSumResult) String() string {
	if len(r.Triplets) == 0 {
		return "no triplets"
	}
	lines := make([]string, len(r.Triplets))
	for i, t := range r.Triplets {
		lines[i] = t.String()
	}

	return strings.Join(lines, "\n")
}

func newThreeSumCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "threesum [-- n ...]",
		Short: "List distinct zero-sum triplets",
		Long: `List every distinct triplet of the given integers that sums to zero.
Without arguments the sample input -1 0 1 2 -1 -4 is used.

Example:
  katas threesum -- -1 0 1 2 -1 -4
  katas threesum --format json -- -2 0 1 1 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, format, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			nums := sampleNums
			if len(args) > 0 {
				if nums, err = parseInts(args); err != nil {
					logger.Error("invalid input", zap.Error(err))
					return err
				}
			}
			logger.Debug("running three sum", zap.Ints("input", nums))

			res := threeSumResult{Input: nums, Triplets: sums.ThreeSum(nums)}
			logger.Info("three sum finished", zap.Int("triplets", len(res.Triplets)))

			return render.Write(cmd.OutOrStdout(), format, res)
		},
	}
}
