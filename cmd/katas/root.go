package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/katas/internal/logging"
	"github.com/katalvlaran/katas/internal/render"
)

// options holds the persistent flag values shared by every subcommand.
type options struct {
	format    string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "katas",
		Short: "Run small integer and text algorithms from the command line",
		Long: `katas wraps the library packages of this module: zero-sum triplets,
integer determinants by cofactor expansion, and the Deadfish interpreter.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.format, "format", string(render.Text), "Output format: text, json or yaml")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", string(logging.HumanFormat), "Log format: human or json")

	root.AddCommand(
		newThreeSumCmd(opts),
		newDetCmd(opts),
		newDeadfishCmd(opts),
	)

	return root
}

// setup resolves the output format and builds a logger writing to the
// command's stderr.
func (o *options) setup(cmd *cobra.Command) (*zap.Logger, render.Format, error) {
	format, err := render.ParseFormat(o.format)
	if err != nil {
		return nil, "", err
	}
	logger, err := logging.NewLogger(logging.Config{
		Format: logging.Format(o.logFormat),
		Level:  o.logLevel,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, "", err
	}

	return logger.With(zap.String("command", cmd.Name())), format, nil
}
