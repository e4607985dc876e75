package cmd

import (
	"fmt"

	"github.com/jsphweid/fifths/chord"
	"github.com/jsphweid/fifths/logger"
	"github.com/jsphweid/fifths/midi"
	"github.com/jsphweid/fifths/theory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <key> <file.mid>",
	Short: "Labels the chords of a midi file with scale degrees",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := theory.ParseKey(args[0])
		if err != nil {
			return err
		}
		parsed, err := midi.ReadMidiFile(args[1])
		if err != nil {
			return err
		}

		chords := chord.GetChords(parsed)
		logger.Debug("extracted chords", zap.Int("count", len(chords)), zap.String("path", args[1]))
		analyses, err := chord.Analyze(chords, k)
		if err != nil {
			return err
		}

		for _, a := range analyses {
			switch {
			case a.Degree != nil:
				fmt.Printf("%8v  %-8v %-5v %v\n", a.AbsTickOffset, a.Key.Label, a.Degree.Degree, a.Degree.Function)
			case a.Key.Label != "":
				fmt.Printf("%8v  %-8v chromatic (%v)\n", a.AbsTickOffset, a.Key.Label, a.Quality)
			default:
				fmt.Printf("%8v  %v not a triad\n", a.AbsTickOffset, a.Notes)
			}
		}
		return nil
	},
}
