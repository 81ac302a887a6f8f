package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strikelab/midipad/config"
	"github.com/strikelab/midipad/report"
	"github.com/strikelab/midipad/session"
)

func init() {
	addCommonFlags(analyzeCmd)
	analyzeCmd.Flags().Bool("totals", false, "append a TOTALS summary row")
	rootCmd.AddCommand(analyzeCmd)
}

// applyTotalsFlag keeps the layering of buildOptions: a --totals the user
// never set must not clobber a totals-row value from the config file.
func applyTotalsFlag(cmd *cobra.Command, opts *config.Options) {
	if cmd.Flags().Changed("totals") {
		opts.TotalsRow, _ = cmd.Flags().GetBool("totals")
	}
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <source-dir>",
	Short: "Whole-session metrics for every MIDI file in a directory",
	Long:  `Computes one metrics row per session file and writes the report.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}
		applyTotalsFlag(cmd, &opts)
		if err := opts.Validate(); err != nil {
			return err
		}

		table, err := session.New(logger).Run(args[0], opts)
		if err != nil {
			return err
		}

		rows := report.Project(table, opts.Metrics)
		if err := report.Render(os.Stdout, rows); err != nil {
			return err
		}
		path, err := report.Write(rows, opts.OutputFormat, opts.SavePath)
		if err != nil {
			return err
		}
		logger.Info("report written",
			zap.String("path", path),
			zap.Int("sessions", len(table.Rows)))
		return nil
	},
}
