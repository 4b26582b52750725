package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcm/internal/section"
	"github.com/spf13/cobra"
)

var designColumnCmd = &cobra.Command{
	Use:   "column",
	Short: "Design a rectangular tied column",
	Long: `Design a rectangular tied reinforced concrete column per NSCP 2015.

Sizes the longitudinal steel for the factored axial load (plus any
moment carried as a steel couple), enforces the 1% to 8% gross
reinforcement ratio, selects discrete bars and lateral ties, and
verifies the axial capacity.

Examples:
  gorcm design column -b 400 --height 400 --fc 28 --fy 415 --pu 2000

  # With a moment
  gorcm design column -b 400 --height 600 --fc 28 --fy 415 --pu 2000 --mu 150`,
	Run: runDesignColumn,
}

func init() {
	designCmd.AddCommand(designColumnCmd)

	addSectionFlags(designColumnCmd)
	designColumnCmd.Flags().Float64Var(&designHeight, "height", 0, "Overall section height (mm)")
	designColumnCmd.Flags().Float64VarP(&designSpan, "span", "s", 0, "Unsupported length (mm)")

	designColumnCmd.Flags().Float64VarP(&designPu, "pu", "p", 0, "Factored axial load Pu (kN)")
	designColumnCmd.Flags().Float64VarP(&designMu, "mu", "m", 0, "Factored moment Mu (kN-m)")
	designColumnCmd.Flags().Float64VarP(&designVu, "vu", "v", 0, "Factored shear Vu (kN)")

	addServiceFlags(designColumnCmd)
	addOutputFlags(designColumnCmd)
}

func runDesignColumn(cmd *cobra.Command, args []string) {
	in, err := buildInput(section.Column)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	runDesign(in)
}
