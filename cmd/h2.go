package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gofastga/internal/component"
	"github.com/alexiusacademia/gofastga/internal/diagram"
	"github.com/alexiusacademia/gofastga/internal/hybrid"
	"github.com/spf13/cobra"
)

var (
	h2CellVoltage float64
	h2Power       float64
	h2Duration    float64
	h2Pressure    float64
	h2Temperature float64
	h2Tanks       float64
	h2LengthRatio float64
	h2FoS         float64
	h2MaxStress   float64
	h2Density     float64
	h2MassFit     float64
)

var h2Cmd = &cobra.Command{
	Use:   "h2",
	Short: "Size gaseous hydrogen tanks",
	Long: `Size the cylindrical pressure vessels storing the hydrogen of a fuel
cell powertrain.

The hydrogen mass follows the stack consumption over the reserve duration,
its volume the real gas law with a pressure dependent compressibility, and
the wall the thin-wall hoop stress t = P·r·FoS/(2σ).

Examples:
  gofastga h2 --power 60 --duration 1.5
  gofastga h2 --power 60 --duration 1.5 --pressure 350 --tanks 2 --stress 1200`,
	RunE: runH2,
}

func init() {
	rootCmd.AddCommand(h2Cmd)

	// Fuel cell flags
	h2Cmd.Flags().Float64Var(&h2CellVoltage, "cell-voltage", 0.7, "Fuel cell voltage (V)")
	h2Cmd.Flags().Float64VarP(&h2Power, "power", "p", 0, "Fuel cell design power (kJ) [required]")
	h2Cmd.Flags().Float64VarP(&h2Duration, "duration", "d", 0, "Reserve duration (h) [required]")

	// Storage flags
	h2Cmd.Flags().Float64Var(&h2Pressure, "pressure", 700, "Storage pressure (bar)")
	h2Cmd.Flags().Float64Var(&h2Temperature, "temperature", 293.15, "Storage temperature (K)")
	h2Cmd.Flags().Float64VarP(&h2Tanks, "tanks", "n", 1, "Number of tanks")
	h2Cmd.Flags().Float64Var(&h2LengthRatio, "length-ratio", 6, "Internal length over internal radius")

	// Wall flags
	h2Cmd.Flags().Float64Var(&h2FoS, "fos", 2.25, "Factor of safety on the hoop stress")
	h2Cmd.Flags().Float64Var(&h2MaxStress, "stress", 2000, "Wall allowable stress (MPa)")
	h2Cmd.Flags().Float64Var(&h2Density, "density", 1600, "Wall material density (kg/m³)")
	h2Cmd.Flags().Float64Var(&h2MassFit, "mass-fit", 1, "Tank mass fitting factor")

	h2Cmd.MarkFlagRequired("power")
	h2Cmd.MarkFlagRequired("duration")
}

func runH2(cmd *cobra.Command, args []string) error {
	for flag, v := range map[string]float64{
		"power":        h2Power,
		"duration":     h2Duration,
		"pressure":     h2Pressure,
		"tanks":        h2Tanks,
		"length-ratio": h2LengthRatio,
		"stress":       h2MaxStress,
	} {
		if v <= 0 {
			return fmt.Errorf("--%s must be positive", flag)
		}
	}

	s := component.Scalar
	data := component.Dataset{
		"data:propulsion:hybrid_powertrain:fuel_cell:cell_voltage":       s(h2CellVoltage, "V"),
		"data:propulsion:hybrid_powertrain:fuel_cell:design_power":       s(h2Power, "kJ"),
		"data:mission:sizing:main_route:reserve:duration":                s(h2Duration, "h"),
		"data:propulsion:hybrid_powertrain:h2_storage:pressure":          s(h2Pressure, "bar"),
		"data:propulsion:hybrid_powertrain:h2_storage:temperature":       s(h2Temperature, "K"),
		"data:geometry:hybrid_powertrain:h2_storage:nb_tanks":            s(h2Tanks, ""),
		"data:geometry:hybrid_powertrain:h2_storage:length_radius_ratio": s(h2LengthRatio, ""),
		"data:geometry:hybrid_powertrain:h2_storage:fos":                 s(h2FoS, ""),
		"data:geometry:hybrid_powertrain:h2_storage:maximum_stress":      s(h2MaxStress, "MPa"),
		"data:geometry:hybrid_powertrain:h2_storage:mass_fitting_factor": s(h2MassFit, ""),
		"data:geometry:hybrid_powertrain:h2_storage:tank_density":        s(h2Density, "kg/m**3"),
	}

	result, _, err := component.Run(hybrid.H2Tanks{}, data)
	if err != nil {
		return fmt.Errorf("sizing hydrogen tanks: %w", err)
	}
	get := func(name string) float64 { return result[name].Value[0] }

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     HYDROGEN STORAGE SIZING")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("STORAGE CONDITIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Pressure:\t%.0f bar\n", h2Pressure)
	fmt.Fprintf(w, "  Temperature:\t%.2f K\n", h2Temperature)
	fmt.Fprintf(w, "  Compressibility (Z):\t%.4f\n", hybrid.Compressibility(h2Pressure*1e5))
	fmt.Fprintf(w, "  Tanks:\t%.0f\n", h2Tanks)
	w.Flush()
	fmt.Println()

	fmt.Println("TANK GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Internal radius:\t%.1f mm\n", get("data:geometry:hybrid_powertrain:h2_storage:tank_internal_radius")*1000)
	fmt.Fprintf(w, "  Internal length:\t%.1f mm\n", get("data:geometry:hybrid_powertrain:h2_storage:tank_internal_height")*1000)
	fmt.Fprintf(w, "  Wall thickness:\t%.2f mm\n", get("data:geometry:hybrid_powertrain:h2_storage:wall_thickness")*1000)
	fmt.Fprintf(w, "  Tank volume:\t%.1f L\n", get("data:geometry:hybrid_powertrain:h2_storage:single_tank_volume")*1000)
	fmt.Fprintf(w, "  Total volume:\t%.1f L\n", get("data:geometry:hybrid_powertrain:h2_storage:total_tanks_volume")*1000)
	w.Flush()
	fmt.Println()

	fmt.Println("MASS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tank mass:\t%.2f kg\n", get("data:weight:hybrid_powertrain:h2_storage:single_tank_mass"))
	fmt.Fprintf(w, "  Total tank mass:\t%.2f kg\n", get("data:weight:hybrid_powertrain:h2_storage:total_tanks_mass"))
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("HYDROGEN STORAGE", []string{
		fmt.Sprintf("%.0f × %.1f L tanks at %.0f bar", h2Tanks,
			get("data:geometry:hybrid_powertrain:h2_storage:single_tank_volume")*1000, h2Pressure),
		fmt.Sprintf("Wall t = %.2f mm", get("data:geometry:hybrid_powertrain:h2_storage:wall_thickness")*1000),
		fmt.Sprintf("Total mass = %.2f kg", get("data:weight:hybrid_powertrain:h2_storage:total_tanks_mass")),
	}))
	fmt.Println()
	return nil
}
