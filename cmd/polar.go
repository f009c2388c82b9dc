package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gofastga/internal/aero/polar"
	"github.com/alexiusacademia/gofastga/internal/component"
	"github.com/alexiusacademia/gofastga/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	polarInputs      []string
	polarRegime      string
	polarXCGRatio    float64
	polarShowASCII   bool
	polarASCIIHeight int
	polarExportFile  string
)

var polarCmd = &cobra.Command{
	Use:   "polar",
	Short: "Compute the untrimmed and trimmed drag polars",
	Long: `Compute the clean (non-equilibrated) polar over angles of attack from
0 to 15° and the trimmed (equilibrated) polar over masses from 0.5 to
1.5 MTOW, in cruise, at low speed or both.

The trimmed polar solves the wing / tail lift split that balances the
aircraft in pitch at each mass.

Examples:
  gofastga polar -i aircraft.yaml
  gofastga polar -i aircraft.yaml --regime cruise --ascii
  gofastga polar -i aircraft.yaml --x-cg-ratio 0.25 -o polars.png`,
	RunE: runPolar,
}

func init() {
	rootCmd.AddCommand(polarCmd)

	polarCmd.Flags().StringArrayVarP(&polarInputs, "input", "i", nil, "Input data file (yaml or json), repeatable [required]")
	polarCmd.Flags().StringVarP(&polarRegime, "regime", "r", "both", "Aerodynamic regime: cruise, low_speed or both")
	polarCmd.Flags().Float64Var(&polarXCGRatio, "x-cg-ratio", 0, "CG position as a fraction of the MAC (0 derives it from the loading)")

	// Diagram options
	polarCmd.Flags().BoolVar(&polarShowASCII, "ascii", false, "Draw the polars in the terminal")
	polarCmd.Flags().IntVar(&polarASCIIHeight, "height", 12, "Height of the terminal chart (lines)")
	polarCmd.Flags().StringVarP(&polarExportFile, "output", "o", "", "Export the polars to an image (png, svg, pdf)")
	polarCmd.MarkFlagRequired("input")
}

func polarRegimes(name string) ([]polar.Regime, error) {
	switch name {
	case "both":
		return []polar.Regime{polar.Cruise, polar.LowSpeed}, nil
	case "cruise":
		return []polar.Regime{polar.Cruise}, nil
	case "low_speed", "low-speed":
		return []polar.Regime{polar.LowSpeed}, nil
	}
	return nil, fmt.Errorf("unknown regime %q", name)
}

func runPolar(cmd *cobra.Command, args []string) error {
	regimes, err := polarRegimes(polarRegime)
	if err != nil {
		return err
	}
	data, err := readData("", polarInputs...)
	if err != nil {
		return fmt.Errorf("loading inputs: %w", err)
	}

	g := component.NewGroup(polar.GroupID)
	for _, r := range regimes {
		g.Add("non_equilibrated_polar_"+r.String(), polar.NewNonEquilibrated(r))
		g.Add("equilibrated_polar_"+r.String(), polar.NewEquilibrated(r, polarXCGRatio))
	}
	result, report, err := component.Run(g, data)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     DRAG POLARS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	var polars []diagram.Polar
	for _, r := range regimes {
		for _, kind := range []string{"non_equilibrated", "equilibrated"} {
			prefix := "data:aerodynamics:polar:" + kind + ":" + r.String() + ":"
			p := diagram.Polar{
				Name: kind + " " + r.String(),
				CL:   result[prefix+"cl_vector"].Value,
				CD:   result[prefix+"cd_vector"].Value,
			}
			printPolar(p, kind == "equilibrated")
			polars = append(polars, p)
		}
	}
	printReport(report)

	if polarShowASCII {
		for _, p := range polars {
			chart, err := diagram.DrawASCIIPolar(p, polarASCIIHeight)
			if err != nil {
				fmt.Printf("  %s: %v\n", p.Name, err)
				continue
			}
			fmt.Println(chart)
		}
	}

	if polarExportFile != "" {
		path, err := diagram.ExportPolars(polars, "Drag polars", polarExportFile)
		if err != nil {
			return fmt.Errorf("exporting polars: %w", err)
		}
		fmt.Printf("  Polars exported to %s\n\n", path)
	}
	return nil
}

func printPolar(p diagram.Polar, trimmed bool) {
	fmt.Printf("%s:\n", p.Name)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	sweep := "α (deg)"
	if trimmed {
		sweep = "m/MTOW"
	}
	fmt.Fprintf(w, "  %s\tCL\tCD\tL/D\n", sweep)
	fmt.Fprintf(w, "  ───────\t──\t──\t───\n")
	for i := range p.CL {
		var station float64
		if trimmed {
			station = 0.5 + float64(i)/float64(polar.MassPoints-1)
		} else {
			station = 15 * float64(i) / float64(polar.AlphaPoints-1)
		}
		fmt.Fprintf(w, "  %.2f\t%.4f\t%.5f\t%.2f\n", station, p.CL[i], p.CD[i], p.CL[i]/p.CD[i])
	}
	w.Flush()
	if ratio, cl := p.MaxFinesse(); !math.IsNaN(ratio) {
		fmt.Printf("  Best L/D = %.2f at CL = %.3f\n", ratio, cl)
	}
	fmt.Println()
}
