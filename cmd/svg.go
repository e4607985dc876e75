package cmd

import (
	"os"

	"github.com/jsphweid/fifths/diagram"
	"github.com/jsphweid/fifths/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(svgCmd)
}

var svgCmd = &cobra.Command{
	Use:   "svg <key> <file>",
	Short: "Writes the diagram as svg",
	Long:  `Writes the diagram for a pinned key as svg. Use - for stdout.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := pinnedState(args[:1])
		if err != nil {
			return err
		}
		v, err := diagram.Build(s)
		if err != nil {
			return err
		}

		if args[1] == "-" {
			return diagram.WriteSVG(os.Stdout, v)
		}
		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		if err := diagram.WriteSVG(f, v); err != nil {
			return err
		}
		logger.Info("wrote diagram", zap.String("path", args[1]))
		return nil
	},
}
