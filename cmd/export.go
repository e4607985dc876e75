package cmd

import (
	"os"

	"github.com/jsphweid/fifths/logger"
	"github.com/jsphweid/fifths/midi"
	"github.com/jsphweid/fifths/theory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportOpts = midi.DefaultOptions()

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().Float64Var(&exportOpts.BPM, "bpm", exportOpts.BPM, "tempo")
	exportCmd.Flags().Uint8Var(&exportOpts.Octave, "octave", exportOpts.Octave, "octave of the chord roots, 4 puts C on middle C")
	exportCmd.Flags().Uint8Var(&exportOpts.Velocity, "velocity", exportOpts.Velocity, "note on velocity")
}

var exportCmd = &cobra.Command{
	Use:   "export <key> <file>",
	Short: "Writes the diatonic chords of a key as a midi file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := theory.ParseKey(args[0])
		if err != nil {
			return err
		}
		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer f.Close()

		if err := midi.WriteScale(f, k, exportOpts); err != nil {
			return err
		}
		logger.Info("exported scale", zap.Stringer("key", k), zap.String("path", args[1]))
		return nil
	},
}
