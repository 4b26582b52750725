package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcm/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gorcm",
	Short: "Reinforced Concrete Member Design Engine",
	Long: `gorcm - Go Reinforced Concrete Member Designer

A member design engine for reinforced concrete beams, columns and
slabs based on the National Structural Code of the Philippines (NSCP).

Given geometry, material grades and factored demand, gorcm produces:
  - A constructible reinforcement layout (bars, stirrups, detailing)
  - Strength and serviceability checks with pass/fail verdicts
  - An itemized cost estimate

All calculations follow NSCP 2015 (Volume 1) provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcm v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Member Designer                  ║")
		fmt.Printf("  ║   %s ©  %s                             ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A member design engine for reinforced concrete beams, columns")
		fmt.Println("  and slabs based on NSCP 2015 provisions.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Flexural design (singly and doubly reinforced)")
		fmt.Println("    • Shear design and stirrup spacing")
		fmt.Println("    • Serviceability checks (deflection, crack width)")
		fmt.Println("    • Discrete bar selection and detailing")
		fmt.Println("    • Cost estimation")
		fmt.Println("    • Batch design from YAML job files")
		fmt.Println()
		fmt.Println("  Use 'gorcm --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
