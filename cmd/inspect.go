package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strikelab/midipad/midi"
	"github.com/strikelab/midipad/role"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Dumps the classified note events of one session file",
	Long:  `Dumps the classified note events of one session file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	events, err := midi.ExtractFile(path)
	if err != nil {
		return err
	}

	mapping := role.Default()
	for _, ev := range mapping.ClassifyAll(events) {
		fmt.Printf("%10.4fs  key=%3d  vel=%3d  %v\n", ev.Onset, ev.Key, ev.Velocity, ev.Role)
	}
	fmt.Printf("%d events\n", len(events))
	return nil
}
