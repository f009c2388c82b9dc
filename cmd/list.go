package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gofastga/internal/component"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered models",
	Long: `List the id of every model that compute, inputs and configuration
files can refer to, with the number of inputs and outputs it declares
under default options.`,
	Run: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     REGISTERED MODELS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Id\tInputs\tOutputs\n")
	fmt.Fprintf(w, "  ──\t──────\t───────\n")
	for _, id := range component.IDs() {
		c, err := component.New(id, nil)
		if err != nil {
			fmt.Fprintf(w, "  %s\t-\t-\n", id)
			continue
		}
		d := component.Declare(c)
		fmt.Fprintf(w, "  %s\t%d\t%d\n", id, len(d.Inputs()), len(d.Outputs()))
	}
	w.Flush()
	fmt.Println()
}
