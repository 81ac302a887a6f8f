package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "midipad",
	Short: "Movement metrics from limb-mapped MIDI sessions",
	Long: `Batch-processes a directory of MIDI session recordings from a
limb-mapped drum-pad rig and reports strike counts, velocity statistics
and onset-timing asynchrony per anatomical role.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func newLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
