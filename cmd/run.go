package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gofastga/internal/component"
	"github.com/alexiusacademia/gofastga/internal/config"
	"github.com/alexiusacademia/gofastga/internal/dataio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runConfigFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate the models of a configuration file in sequence",
	Long: `Evaluate every model listed in a configuration file, in order, on the
configured input file. Outputs of earlier models are inputs of later
ones. The calibration file, if any, overrides the input file.

The log settings of the configuration file apply unless --log-level or
--log-format are given.

Example configuration (sizing.yaml):
  title: hybrid 4-seater
  input_file: aircraft.yaml
  output_file: results.yaml
  calibration_file: calibration.ini
  models:
    - name: loads
      id: fastga.loads.cs23
      options:
        category: utility
    - name: tail_mass
      id: fastga.weight.mass.tail

Examples:
  gofastga run --config sizing.yaml
  GOFASTGA_LOG_LEVEL=debug gofastga run -c sizing.yaml`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigFile, "config", "c", "", "Configuration file (yaml, json or toml) [required]")
	runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(runConfigFile)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("log-level") && !cmd.Flags().Changed("log-format") {
		if err := cfg.Log.Apply(); err != nil {
			return err
		}
	}

	g, err := cfg.Group()
	if err != nil {
		return err
	}
	data, err := readData(cfg.CalibrationFile, cfg.InputFile)
	if err != nil {
		return fmt.Errorf("loading inputs: %w", err)
	}

	log.WithFields(log.Fields{
		"title":  cfg.Title,
		"models": len(cfg.Models),
		"inputs": len(data),
	}).Info("running models")

	result, report, err := component.Run(g, data)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", cfg.Title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("MODELS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, s := range g.Children() {
		fmt.Fprintf(w, "  %d\t%s\t%s\n", i+1, s.Name, cfg.Models[i].ID)
	}
	w.Flush()
	fmt.Println()

	printDataset("OUTPUTS", result)
	printReport(report)

	if cfg.OutputFile != "" {
		out := component.Dataset{}
		out.Merge(data)
		out.Merge(result)
		if err := dataio.Save(cfg.OutputFile, out); err != nil {
			return err
		}
		fmt.Printf("  Inputs and outputs written to %s\n\n", cfg.OutputFile)
	}
	return nil
}
