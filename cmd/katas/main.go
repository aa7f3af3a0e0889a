// Command katas is a small driver around the katas library packages.
//
//	katas threesum [-- n ...]     zero-sum triplets (sample input when no n given)
//	katas det [--] ROW [ROW ...]  determinant; each ROW is comma-separated integers
//	katas deadfish CODE           output of a Deadfish program
//
// Use "--" before arguments that start with a minus sign.
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/katas/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger, lerr := logging.NewLogger(logging.Config{Format: logging.HumanFormat})
		if lerr == nil {
			logger.Error("command execution failed", zap.Error(err))
			_ = logger.Sync()
		}
		os.Exit(1)
	}
}
