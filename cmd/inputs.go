package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gofastga/internal/component"
	"github.com/alexiusacademia/gofastga/internal/config"
	"github.com/alexiusacademia/gofastga/internal/dataio"
	"github.com/spf13/cobra"
)

var (
	inputsOutput  string
	inputsOptions []string
	inputsConfig  string
)

var inputsCmd = &cobra.Command{
	Use:   "inputs [model-id]",
	Short: "Write a template of the inputs a model needs",
	Long: `Write a data file listing every input of a model, or of all the
models of a configuration file, with its unit and default value.
Fill in the NaN values before running the model.

Examples:
  gofastga inputs fastga.geometry.hybrid.h2_storage -o h2.yaml
  gofastga inputs fastga.geometry.hybrid.battery --option cell_type=LG-HG2 -o battery.json
  gofastga inputs --config sizing.yaml -o inputs.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInputs,
}

func init() {
	rootCmd.AddCommand(inputsCmd)

	inputsCmd.Flags().StringVarP(&inputsOutput, "output", "o", "", "Template file (yaml or json) [required]")
	inputsCmd.Flags().StringArrayVar(&inputsOptions, "option", nil, "Model option as key=value, repeatable")
	inputsCmd.Flags().StringVarP(&inputsConfig, "config", "c", "", "Configuration file listing the models")
	inputsCmd.MarkFlagRequired("output")
}

func runInputs(cmd *cobra.Command, args []string) error {
	var c component.Component
	switch {
	case inputsConfig != "":
		cfg, err := config.Load(inputsConfig)
		if err != nil {
			return err
		}
		g, err := cfg.Group()
		if err != nil {
			return err
		}
		c = g
	case len(args) == 1:
		opts, err := parseOptions(inputsOptions)
		if err != nil {
			return err
		}
		if c, err = component.New(args[0], opts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("give a model id or --config")
	}

	template := dataio.Template(c)
	if err := dataio.Save(inputsOutput, template); err != nil {
		return err
	}
	fmt.Printf("  %d inputs written to %s\n", len(template), inputsOutput)
	return nil
}
