package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strikelab/midipad/report"
	"github.com/strikelab/midipad/session"
)

func init() {
	addCommonFlags(segmentsCmd)
	segmentsCmd.Flags().Int("num-segments", 10, "number of equal-duration time segments per session")
	segmentsCmd.Flags().Bool("mean", false, "average metrics across files per segment index")
	rootCmd.AddCommand(segmentsCmd)
}

var segmentsCmd = &cobra.Command{
	Use:   "segments <source-dir>",
	Short: "Per-segment metrics for every MIDI file in a directory",
	Long: `Splits each session into equal-duration time segments and computes
one metrics row per segment, optionally averaged across files.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("num-segments") {
			opts.NumSegments, _ = cmd.Flags().GetInt("num-segments")
		}
		if cmd.Flags().Changed("mean") {
			opts.MeanSegments, _ = cmd.Flags().GetBool("mean")
		}
		if err := opts.Validate(); err != nil {
			return err
		}

		table, err := session.New(logger).RunSegments(args[0], opts)
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
			zap.Int("rows", len(table.Rows)))
		return nil
	},
}
