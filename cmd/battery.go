package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gofastga/internal/hybrid"
	"github.com/spf13/cobra"
)

var (
	batteryCell       string
	batteryPacks      float64
	batteryEnergy     float64
	batteryVoltage    float64
	batteryPower      float64
	batteryCRate      float64
	batteryResistance float64
	batterySOC        float64
	batteryMotorEff   float64
	batteryListCells  bool
)

var batteryCmd = &cobra.Command{
	Use:   "battery",
	Short: "Size a battery pack of cylindrical cells",
	Long: `Size a battery pack of catalogue cylindrical cells in hexagonal
stacking.

The number of cells in series is the smallest string that reaches the
system voltage at the loaded cell voltage
  V_cell = V0 - 0.94·SOC - R·C·Crate
and the number of strings in parallel the larger of those required by
the take-off power and by the energy.

Examples:
  gofastga battery --list
  gofastga battery --energy 60000 --voltage 400 --power 120000
  gofastga battery --cell LG-HG2 --energy 45000 --voltage 360 --power 90000 --packs 2`,
	RunE: runBattery,
}

func init() {
	rootCmd.AddCommand(batteryCmd)

	batteryCmd.Flags().StringVar(&batteryCell, "cell", "LG-HG2", "Catalogue cell type")
	batteryCmd.Flags().BoolVar(&batteryListCells, "list", false, "List the catalogue cells")
	batteryCmd.Flags().Float64Var(&batteryPacks, "packs", 1, "Number of identical packs")

	// Requirement flags
	batteryCmd.Flags().Float64VarP(&batteryEnergy, "energy", "e", 0, "Required energy (Wh)")
	batteryCmd.Flags().Float64VarP(&batteryVoltage, "voltage", "v", 0, "System nominal voltage (V)")
	batteryCmd.Flags().Float64VarP(&batteryPower, "power", "p", 0, "Take-off power (W)")

	// Cell operating flags
	batteryCmd.Flags().Float64Var(&batteryCRate, "c-rate", 3, "Maximum discharge rate (h⁻¹)")
	batteryCmd.Flags().Float64Var(&batteryResistance, "resistance", 0.02, "Cell internal resistance (ohm)")
	batteryCmd.Flags().Float64Var(&batterySOC, "soc", 0.2, "State of charge at the sizing point")
	batteryCmd.Flags().Float64Var(&batteryMotorEff, "motor-eff", 0.95, "Electric motor efficiency")
}

func runBattery(cmd *cobra.Command, args []string) error {
	if batteryListCells {
		printCells()
		return nil
	}
	if batteryEnergy <= 0 || batteryVoltage <= 0 || batteryPower <= 0 {
		return fmt.Errorf("--energy, --voltage and --power must be positive")
	}

	cell, err := hybrid.LookupCell(batteryCell)
	if err != nil {
		return err
	}
	if !cell.Sized() {
		return fmt.Errorf("cell type %q has no geometry and cannot size a pack", cell.Name)
	}

	b := hybrid.Battery{
		Cell:               cell,
		Packs:              batteryPacks,
		RequiredEnergy:     batteryEnergy,
		MaxCRate:           batteryCRate,
		InternalResistance: batteryResistance,
		SOC:                batterySOC,
		SystemVoltage:      batteryVoltage,
		TakeoffPower:       batteryPower,
		MotorEfficiency:    batteryMotorEff,
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BATTERY PACK SIZING")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("CELL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type:\t%s\n", cell.Name)
	fmt.Fprintf(w, "  Size:\t%.0f × %.0f mm\n", cell.Diameter*1000, cell.Length*1000)
	fmt.Fprintf(w, "  Capacity:\t%.2f Ah\n", cell.Capacity)
	fmt.Fprintf(w, "  Nominal voltage:\t%.2f V\n", cell.NominalVoltage)
	fmt.Fprintf(w, "  Loaded voltage:\t%.3f V\n", b.CellVoltage())
	w.Flush()
	fmt.Println()

	ns, np := b.SeriesCells(), b.ParallelCells()
	fmt.Println("ARRANGEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cells in series:\t%.0f\n", ns)
	fmt.Fprintf(w, "  Strings in parallel:\t%.0f\n", np)
	fmt.Fprintf(w, "  Cells per pack:\t%.0f\n", ns*np)
	fmt.Fprintf(w, "  Pack voltage:\t%.1f V\n", ns*b.CellVoltage())
	w.Flush()
	fmt.Println()

	fmt.Println("PACK:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Pack volume:\t%.1f L\n", b.PackVolume()*1000)
	fmt.Fprintf(w, "  Pack mass:\t%.1f kg\n", b.Mass())
	fmt.Fprintf(w, "  Packs:\t%.0f\n", b.Packs)
	fmt.Fprintf(w, "  Total volume:\t%.1f L\n", b.TotalVolume()*1000)
	fmt.Fprintf(w, "  Total mass:\t%.1f kg\n", b.Packs*b.Mass())
	w.Flush()
	fmt.Println()
	return nil
}

func printCells() {
	fmt.Println()
	fmt.Println("CELL CATALOGUE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cell\tCapacity (Ah)\tV nominal\tMass (g)\tWh/kg\tWh/L\n")
	fmt.Fprintf(w, "  ────\t─────────────\t─────────\t────────\t─────\t────\n")
	for _, name := range hybrid.CellNames() {
		c := hybrid.Cells[name]
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%.0f\t%.0f\n", c.Name,
			formatValue(c.Capacity), formatValue(c.NominalVoltage), formatValue(c.Mass*1000),
			c.SpecificEnergy, c.EnergyDensity)
	}
	w.Flush()
	fmt.Println()
}
