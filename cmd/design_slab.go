package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcm/internal/section"
	"github.com/spf13/cobra"
)

var designSlabCmd = &cobra.Command{
	Use:   "slab",
	Short: "Design a one-way slab strip",
	Long: `Design a one-way reinforced concrete slab per NSCP 2015.

The design is done on a strip (1000 mm wide by default); demands are
per strip. Flexural steel is floored at the temperature and shrinkage
minimum, bars are reported as a spacing on centers, and shear is
checked against the concrete alone since slabs carry no stirrups.

Examples:
  gorcm design slab --thickness 150 --fc 21 --fy 275 --mu 25 --vu 40

  # With a span for the deflection check
  gorcm design slab --thickness 150 --span 4000 --fc 21 --fy 275 --mu 25`,
	Run: runDesignSlab,
}

func init() {
	designCmd.AddCommand(designSlabCmd)

	designSlabCmd.Flags().Float64VarP(&designWidth, "width", "b", 1000, "Strip width (mm)")
	designSlabCmd.Flags().Float64VarP(&designHeight, "thickness", "t", 0, "Slab thickness (mm)")
	designSlabCmd.Flags().Float64VarP(&designCover, "cover", "c", 20, "Clear concrete cover (mm)")
	designSlabCmd.Flags().Float64VarP(&designSpan, "span", "s", 0, "Simple span (mm), enables the deflection check")
	designSlabCmd.Flags().Float64Var(&designFc, "fc", 21, "Concrete compressive strength f'c (MPa)")
	designSlabCmd.Flags().Float64Var(&designFy, "fy", 275, "Steel yield strength fy (MPa)")

	designSlabCmd.Flags().Float64VarP(&designMu, "mu", "m", 0, "Factored moment per strip Mu (kN-m)")
	designSlabCmd.Flags().Float64VarP(&designVu, "vu", "v", 0, "Factored shear per strip Vu (kN)")

	addServiceFlags(designSlabCmd)
	addOutputFlags(designSlabCmd)
}

func runDesignSlab(cmd *cobra.Command, args []string) {
	in, err := buildInput(section.Slab)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	runDesign(in)
}
