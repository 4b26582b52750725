package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcm/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcm",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorcm v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Member Design Engine")
		fmt.Println("Based on NSCP 2015 (National Structural Code of the Philippines)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
