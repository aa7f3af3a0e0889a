package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/katas/deadfish"
	"github.com/katalvlaran/katas/internal/render"
)

type deadfishResult struct {
	Code   string `json:"code" yaml:"code"`
	Output []int  `json:"output" yaml:"output"`
}

func (r deadfishResult) String() string {
	return fmt.Sprint(r.Output)
}

func newDeadfishCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "deadfish CODE",
		Short: "Run a Deadfish program and print its output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, format, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			out := deadfish.Parse(args[0])
			logger.Info("deadfish finished", zap.Int("outputs", len(out)))

			return render.Write(cmd.OutOrStdout(), format, deadfishResult{Code: args[0], Output: out})
		},
	}
}
