package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gofastga/internal/component"
	"github.com/alexiusacademia/gofastga/internal/diagram"
	"github.com/alexiusacademia/gofastga/internal/loads"
	"github.com/alexiusacademia/gofastga/internal/units"
	"github.com/spf13/cobra"
)

var (
	loadsMTOW      float64
	loadsMassUnits string
	loadsCategory  string
	loadsAll       bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Compute the CS-23 manoeuvre load factors",
	Long: `Compute the positive and negative limit manoeuvre load factors of
CS 23.337 and the ultimate sizing factor used by the structural mass
models.

Categories:
  normal     n+ = 2.1 + 24000/(W + 10000), W in lb, at most 3.8
  utility    n+ = 4.4
  acrobatic  n+ = 6.0

The negative limit is -0.4·n+ (-0.5·n+ for acrobatic) and the ultimate
factor is 1.5·n+.

Examples:
  gofastga loads --mtow 1700
  gofastga loads --mtow 3750 --units lb --category utility
  gofastga loads --mtow 1200 --all`,
	RunE: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().Float64VarP(&loadsMTOW, "mtow", "m", 0, "Maximum take-off weight [required]")
	loadsCmd.Flags().StringVarP(&loadsMassUnits, "units", "u", "kg", "Unit of the MTOW (kg or lb)")
	loadsCmd.Flags().StringVarP(&loadsCategory, "category", "c", "normal", "Certification category (normal, utility, acrobatic)")
	loadsCmd.Flags().BoolVar(&loadsAll, "all", false, "Show every category")
	loadsCmd.MarkFlagRequired("mtow")
}

func runLoads(cmd *cobra.Command, args []string) error {
	if loadsMTOW <= 0 {
		return fmt.Errorf("--mtow must be positive")
	}
	mtowLb, err := units.Convert(loadsMTOW, loadsMassUnits, "lb")
	if err != nil {
		return err
	}
	design, err := loads.ParseCategory(loadsCategory)
	if err != nil {
		return err
	}

	categories := []loads.Category{design}
	if loadsAll {
		categories = []loads.Category{loads.Normal, loads.Utility, loads.Acrobatic}
	}
	factors := make(map[loads.Category][3]float64, len(categories))
	for _, c := range categories {
		result, _, err := component.Run(loads.CS23{Category: c}, component.Dataset{
			"data:weight:aircraft:MTOW": component.Scalar(loadsMTOW, loadsMassUnits),
		})
		if err != nil {
			return fmt.Errorf("computing %s load factors: %w", c, err)
		}
		factors[c] = [3]float64{
			result["data:mission:sizing:cs23:load_factor:positive_limit"].Value[0],
			result["data:mission:sizing:cs23:load_factor:negative_limit"].Value[0],
			result["data:mission:sizing:cs23:sizing_factor_ultimate"].Value[0],
		}
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MANOEUVRE LOAD FACTORS - CS 23.337")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  MTOW:\t%.1f %s\t(%.1f lb)\n", loadsMTOW, loadsMassUnits, mtowLb)
	w.Flush()
	fmt.Println()

	fmt.Println("LOAD FACTORS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Category\tn+ limit\tn- limit\tn ultimate\n")
	fmt.Fprintf(w, "  ────────\t────────\t────────\t──────────\n")
	for _, c := range categories {
		f := factors[c]
		fmt.Fprintf(w, "  %s\t%.3f\t%.3f\t%.3f\n", c, f[0], f[1], f[2])
	}
	w.Flush()
	fmt.Println()

	f := factors[design]
	fmt.Print(diagram.DrawSummaryBox("CS-23 LOADS ("+strings.ToUpper(design.String())+")", []string{
		fmt.Sprintf("n+ limit    = %.3f", f[0]),
		fmt.Sprintf("n- limit    = %.3f", f[1]),
		fmt.Sprintf("n ultimate  = %.3f", f[2]),
	}))
	fmt.Println()
	return nil
}
