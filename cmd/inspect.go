package cmd

import (
	"fmt"

	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/theory"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <key>",
	Short: "Inspects a key",
	Long:  `Prints the dominant, subdominant, relative, neighborhood, scale and Coltrane cycle of a key.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := theory.ParseKey(args[0])
		if err != nil {
			return err
		}
		return inspect(k)
	},
}

func labels(keys []model.Key) []string {
	var res []string
	for _, k := range keys {
		res = append(res, k.Label)
	}
	return res
}

func inspect(k model.Key) error {
	report, err := theoryReport(k)
	if err != nil {
		return err
	}
	fmt.Printf("key: %v\n", report.Key)
	fmt.Printf("dominant: %v\n", report.Dominant.Label)
	fmt.Printf("subdominant: %v\n", report.Subdominant.Label)
	fmt.Printf("relative: %v\n", report.Relative)
	fmt.Printf("neighborhood: %v\n", labels(report.Neighborhood))
	fmt.Printf("coltrane: %v\n", labels(report.Coltrane))
	for _, d := range report.Scale {
		fmt.Printf("%-5v %-8v %-10v %v\n", d.Degree, d.Key.Label, d.Quality, d.Function)
	}
	return nil
}
