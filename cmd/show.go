package cmd

import (
	"fmt"

	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/selection"
	"github.com/jsphweid/fifths/style"
	"github.com/jsphweid/fifths/theory"
	"github.com/spf13/cobra"
)

var visualFlag string

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&visualFlag, "visual", string(model.VisualFunctional), "normal, functional or coltrane")
	svgCmd.Flags().StringVar(&visualFlag, "visual", string(model.VisualFunctional), "normal, functional or coltrane")
}

// pinnedState is what the diagram shows after clicking the key in args.
func pinnedState(args []string) (selection.State, error) {
	s := selection.New()
	v, err := model.ParseVisualMode(visualFlag)
	if err != nil {
		return s, err
	}
	s = s.SetVisual(v)
	if len(args) == 0 {
		return s, nil
	}
	k, err := theory.ParseKey(args[0])
	if err != nil {
		return s, err
	}
	return s.Click(k), nil
}

var showCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Prints the circle for a key",
	Long:  `Prints both rings coloured for the key (e.g. C, F#, Ebm) and its scale degrees.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := pinnedState(args)
		if err != nil {
			return err
		}
		return show(s)
	},
}

func show(s selection.State) error {
	for _, mode := range []model.Mode{model.Major, model.Minor} {
		ring, err := style.RenderRing(mode, s)
		if err != nil {
			return err
		}
		fmt.Println(ring)
	}
	fmt.Println()

	summary, err := style.RenderSummary(s)
	if err != nil {
		return err
	}
	fmt.Println(summary)
	if s.Visual == model.VisualFunctional {
		fmt.Println(style.RenderLegend())
	}
	return nil
}
