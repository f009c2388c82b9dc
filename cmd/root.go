package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gofastga/internal/config"
	"github.com/alexiusacademia/gofastga/internal/version"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "gofastga",
	Short: "General aviation aircraft conceptual design models",
	Long: `gofastga - Go Fast General Aviation Aircraft design models

A CLI tool that evaluates the disciplinary models of a general aviation
aircraft conceptual design on a file of named variables.

This tool helps aircraft designers perform:
  - Flap and elevator increments at low speed
  - Untrimmed and trimmed drag polars
  - Tail masses (Raymer) and component CG positions
  - Battery, hydrogen tank, radiator and intake sizing
  - CS-23 manoeuvre load factors

Every model reads and writes variables such as data:geometry:wing:area,
each carrying its unit.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Logging{Level: logLevel, Format: logFormat}.Apply()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gofastga v%-46s║\n", version.Version)
		fmt.Println("  ║   General Aviation Aircraft Design Models                 ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool that evaluates aircraft conceptual design models")
		fmt.Println("  on YAML or JSON files of named physical variables.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Any registered model run on a data file (compute, run)")
		fmt.Println("    • Drag polars as tables, terminal charts and images")
		fmt.Println("    • Hybrid powertrain sizing: batteries and hydrogen tanks")
		fmt.Println("    • CS-23 limit and ultimate load factors")
		fmt.Println()
		fmt.Println("  Use 'gofastga --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "Log level (debug, info, warning, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}
