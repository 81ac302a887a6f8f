package cmd

import (
	"github.com/spf13/cobra"

	"github.com/strikelab/midipad/config"
)

// addCommonFlags registers the options shared by analyze and segments.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("metrics", []string{"all"}, "metric columns to report, or 'all'")
	cmd.Flags().String("format", config.FormatExcel, "output format: excel or csv")
	cmd.Flags().String("out", "Output", "report base path (extension appended)")
	cmd.Flags().IntSlice("ue-keys", []int{38, 40, 43, 51, 53, 59}, "MIDI keys mapped to the upper extremities")
	cmd.Flags().Int("lf-key", 44, "MIDI key mapped to the left foot")
	cmd.Flags().Int("rf-key", 36, "MIDI key mapped to the right foot")
	cmd.Flags().String("config", "midipad.toml", "optional TOML config file")
}

// buildOptions layers defaults, then the config file, then any flag the
// user actually set. Validation happens once, in the caller, before any
// file is read.
func buildOptions(cmd *cobra.Command) (config.Options, error) {
	opts := config.Default()

	cfgPath, _ := cmd.Flags().GetString("config")
	fileCfg, err := config.LoadFile(cfgPath)
	if err != nil {
		return opts, err
	}
	fileCfg.Apply(&opts)

	flags := cmd.Flags()
	if flags.Changed("metrics") {
		opts.Metrics, _ = flags.GetStringSlice("metrics")
	}
	if flags.Changed("format") {
		opts.OutputFormat, _ = flags.GetString("format")
	}
	if flags.Changed("out") {
		opts.SavePath, _ = flags.GetString("out")
	}
	if flags.Changed("ue-keys") {
		opts.UEKeys, _ = flags.GetIntSlice("ue-keys")
	}
	if flags.Changed("lf-key") {
		opts.LFKey, _ = flags.GetInt("lf-key")
	}
	if flags.Changed("rf-key") {
		opts.RFKey, _ = flags.GetInt("rf-key")
	}
	return opts, nil
}
