package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gofastga/internal/component"
	"github.com/alexiusacademia/gofastga/internal/dataio"
	"github.com/spf13/cobra"
)

var (
	computeInputs      []string
	computeOutput      string
	computeOptions     []string
	computeCalibration string
)

var computeCmd = &cobra.Command{
	Use:   "compute <model-id>",
	Short: "Evaluate one model on a data file",
	Long: `Evaluate a single registered model on one or more YAML or JSON data
files and print the variables it writes.

Inputs missing from the files keep their declared default (usually NaN).
Values are converted from the file units to the units the model declares.
Contract defects (outputs never written, undeclared reads or writes) are
reported as warnings.

Examples:
  gofastga compute fastga.aerodynamics.high_lift -i aircraft.yaml
  gofastga compute fastga.loads.cs23 -i aircraft.yaml --option category=utility
  gofastga compute fastga.weight.mass.tail -i aircraft.yaml -k calibration.ini -o tail.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)

	computeCmd.Flags().StringArrayVarP(&computeInputs, "input", "i", nil, "Input data file (yaml or json), repeatable")
	computeCmd.Flags().StringVarP(&computeOutput, "output", "o", "", "Write the outputs to this data file")
	computeCmd.Flags().StringArrayVar(&computeOptions, "option", nil, "Model option as key=value, repeatable")
	computeCmd.Flags().StringVarP(&computeCalibration, "calibration", "k", "", "Calibration file (ini)")
}

func runCompute(cmd *cobra.Command, args []string) error {
	opts, err := parseOptions(computeOptions)
	if err != nil {
		return err
	}
	c, err := component.New(args[0], opts)
	if err != nil {
		return err
	}
	data, err := readData(computeCalibration, computeInputs...)
	if err != nil {
		return fmt.Errorf("loading inputs: %w", err)
	}

	result, report, err := component.Run(c, data)
	if err != nil {
		return fmt.Errorf("computing %s: %w", args[0], err)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", args[0])
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	printDataset("OUTPUTS", result)
	printReport(report)

	if computeOutput != "" {
		if err := dataio.Save(computeOutput, result); err != nil {
			return err
		}
		fmt.Printf("  Outputs written to %s\n\n", computeOutput)
	}
	return nil
}
