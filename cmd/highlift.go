package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gofastga/internal/aero/highlift"
	"github.com/alexiusacademia/gofastga/internal/component"
	"github.com/spf13/cobra"
)

var (
	highliftInputs       []string
	highliftLandingFlap  float64
	highliftTakeoffFlap  float64
	highliftElevatorFlap float64
)

var highliftCmd = &cobra.Command{
	Use:   "highlift",
	Short: "Compute the flap and elevator increments at low speed",
	Long: `Compute the lift, maximum lift, pitching moment and drag increments of
the flaps in landing and take-off configuration, and the elevator lift
and drag derivatives, from a data file describing the wing, the flaps
and the horizontal tail.

Flap types (data:geometry:flap_type): 0 plain, 1 single slotted,
anything else split.

Examples:
  gofastga highlift -i aircraft.yaml
  gofastga highlift -i aircraft.yaml --landing 40 --takeoff 15`,
	RunE: runHighlift,
}

func init() {
	rootCmd.AddCommand(highliftCmd)

	highliftCmd.Flags().StringArrayVarP(&highliftInputs, "input", "i", nil, "Input data file (yaml or json), repeatable [required]")
	highliftCmd.Flags().Float64Var(&highliftLandingFlap, "landing", 0, "Override the landing flap angle (deg)")
	highliftCmd.Flags().Float64Var(&highliftTakeoffFlap, "takeoff", 0, "Override the take-off flap angle (deg)")
	highliftCmd.Flags().Float64Var(&highliftElevatorFlap, "elevator", 0, "Override the landing elevator angle (deg)")
	highliftCmd.MarkFlagRequired("input")
}

func runHighlift(cmd *cobra.Command, args []string) error {
	data, err := readData("", highliftInputs...)
	if err != nil {
		return fmt.Errorf("loading inputs: %w", err)
	}
	overrides := map[string]float64{
		"landing":  highliftLandingFlap,
		"takeoff":  highliftTakeoffFlap,
		"elevator": highliftElevatorFlap,
	}
	keys := map[string]string{
		"landing":  "data:mission:sizing:landing:flap_angle",
		"takeoff":  "data:mission:sizing:takeoff:flap_angle",
		"elevator": "data:mission:sizing:landing:elevator_angle",
	}
	for flag, v := range overrides {
		if cmd.Flags().Changed(flag) {
			data[keys[flag]] = component.Scalar(v, "deg")
		}
	}

	result, report, err := component.Run(highlift.DeltaHighLift{}, data)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     HIGH-LIFT DEVICES AND ELEVATOR")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("FLAP INCREMENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Phase\tΔCL\tΔCL max\tΔCM\tΔCD\n")
	fmt.Fprintf(w, "  ─────\t───\t───────\t───\t───\n")
	for _, phase := range []string{"landing", "takeoff"} {
		prefix := "data:aerodynamics:flaps:" + phase + ":"
		fmt.Fprintf(w, "  %s\t%.4f\t%.4f\t%.4f\t%.5f\n", phase,
			result[prefix+"CL"].Value[0],
			result[prefix+"CL_max"].Value[0],
			result[prefix+"CM"].Value[0],
			result[prefix+"CD"].Value[0])
	}
	w.Flush()
	fmt.Println()

	fmt.Println("ELEVATOR:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  CL_δ:\t%.4f rad⁻¹\n", result["data:aerodynamics:elevator:low_speed:CL_delta"].Value[0])
	fmt.Fprintf(w, "  CD_δ:\t%.5f rad⁻²\n", result["data:aerodynamics:elevator:low_speed:CD_delta"].Value[0])
	w.Flush()
	fmt.Println()

	printReport(report)
	return nil
}
