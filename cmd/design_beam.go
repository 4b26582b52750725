package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcm/internal/section"
	"github.com/spf13/cobra"
)

var designBeamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Design a rectangular beam",
	Long: `Design a rectangular reinforced concrete beam per NSCP 2015.

Computes the required flexural steel (adding compression steel past the
singly-reinforced ceiling), selects discrete bars, designs the stirrups,
verifies the as-built capacity and runs the deflection and crack-width
checks.

Examples:
  # Flexure and shear
  gorcm design beam -b 300 --height 500 --fc 30 --fy 400 --mu 180 --vu 120

  # With a span for the deflection check
  gorcm design beam -b 300 --height 500 --span 6000 --fc 30 --fy 400 --mu 180 --vu 120

  # Machine-readable output
  gorcm design beam -b 300 --height 500 --fc 30 --fy 400 --mu 180 --json`,
	Run: runDesignBeam,
}

func init() {
	designCmd.AddCommand(designBeamCmd)

	addSectionFlags(designBeamCmd)
	designBeamCmd.Flags().Float64Var(&designHeight, "height", 0, "Overall section height (mm)")
	designBeamCmd.Flags().Float64VarP(&designSpan, "span", "s", 0, "Simple span (mm), enables the deflection check")

	designBeamCmd.Flags().Float64VarP(&designMu, "mu", "m", 0, "Factored moment Mu (kN-m)")
	designBeamCmd.Flags().Float64VarP(&designVu, "vu", "v", 0, "Factored shear Vu (kN)")
	designBeamCmd.Flags().Float64Var(&designPu, "axial", 0, "Factored axial load Pu (kN)")

	addServiceFlags(designBeamCmd)
	addOutputFlags(designBeamCmd)
}

func runDesignBeam(cmd *cobra.Command, args []string) {
	in, err := buildInput(section.Beam)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	runDesign(in)
}
