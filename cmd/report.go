package cmd

import (
	"fmt"

	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/theory"
	"github.com/jsphweid/fifths/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report of the key tables",
	Long:  `Prints both key tables with the pitch classes their spellings name, checks they are a fifth apart and relative-aligned, and lists the Coltrane cycles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report()
	},
}

type tableReport struct {
	pitchClasses []int
	fifthsOk     bool
	cycles       [][]model.Key
}

func analyzeTable(mode model.Mode) (tableReport, error) {
	var report tableReport
	report.fifthsOk = true
	for i, label := range theory.Table(mode) {
		pc, err := theory.SpelledPitchClass(label)
		if err != nil {
			return report, err
		}
		report.pitchClasses = append(report.pitchClasses, pc)
		if i > 0 && util.Mod(pc-report.pitchClasses[i-1], 12) != 7 {
			report.fifthsOk = false
		}
	}
	report.cycles = theory.ColtraneCycles(mode)
	return report, nil
}

// relativesAligned checks every minor key sits a minor third below its major.
func relativesAligned(major, minor tableReport) bool {
	for i := range major.pitchClasses {
		if util.Mod(major.pitchClasses[i]-minor.pitchClasses[i], 12) != 3 {
			return false
		}
	}
	return true
}

func report() error {
	majorReport, err := analyzeTable(model.Major)
	if err != nil {
		return err
	}
	minorReport, err := analyzeTable(model.Minor)
	if err != nil {
		return err
	}

	for _, mode := range []model.Mode{model.Major, model.Minor} {
		r := majorReport
		if mode == model.Minor {
			r = minorReport
		}
		fmt.Printf("%v table: %v\n", mode, theory.Table(mode))
		fmt.Printf("%v pitch classes: %v\n", mode, r.pitchClasses)
		fmt.Printf("%v table ascends in fifths: %v\n", mode, r.fifthsOk)
		for i, cycle := range r.cycles {
			fmt.Printf("%v coltrane cycle %v: %v\n", mode, i+1, labels(cycle))
		}
	}
	fmt.Printf("relatives aligned: %v\n", relativesAligned(majorReport, minorReport))
	return nil
}
