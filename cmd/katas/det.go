package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/katas/internal/render"
	"github.com/katalvlaran/katas/matrix"
)

// maxDetOrder bounds the O(n!) expansion for command line input.
const maxDetOrder = 9

type detResult struct {
	Matrix      matrix.Matrix `json:"matrix" yaml:"matrix"`
	Determinant int64         `json:"determinant" yaml:"determinant"`
}

func (r detResult) String() string {
	return strconv.FormatInt(r.Determinant, 10)
}

func newDetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "det [--] ROW [ROW ...]",
		Short: "Compute an integer determinant by cofactor expansion",
		Long: `Compute the determinant of a square integer matrix. Each ROW is a
comma-separated list of integers; all rows must have the same length.

Example:
  katas det 1,3 2,5
  katas det -- 2,5,3 1,-2,-1 1,3,4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, format, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			m, err := parseMatrix(args)
			if err != nil {
				logger.Error("invalid matrix", zap.Error(err))
				return err
			}
			if m.Order() > maxDetOrder {
				return fmt.Errorf("matrix order %d exceeds limit %d", m.Order(), maxDetOrder)
			}

			det, err := matrix.DeterminantChecked(m)
			if err != nil {
				logger.Error("determinant failed", zap.Error(err))
				return err
			}
			logger.Info("determinant finished", zap.Int("order", m.Order()), zap.Int64("determinant", det))

			return render.Write(cmd.OutOrStdout(), format, detResult{Matrix: m, Determinant: det})
		},
	}
}
