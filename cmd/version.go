package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gofastga/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gofastga",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gofastga v%s\n", version.Version)
		fmt.Println("General Aviation Aircraft Design Models")
		fmt.Printf("Built %s from commit %s\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
