package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcm/internal/design"
	"github.com/alexiusacademia/gorcm/internal/diagram"
	"github.com/alexiusacademia/gorcm/internal/material"
	"github.com/alexiusacademia/gorcm/internal/section"
	"github.com/spf13/cobra"
)

// Shared flags for the design subcommands. Each subcommand registers
// the subset it needs; cobra keeps the flag sets independent.
var (
	designWidth  float64
	designHeight float64
	designCover  float64
	designSpan   float64

	designFc float64
	designFy float64

	designMu float64 // factored moment (kN-m)
	designVu float64 // factored shear (kN)
	designPu float64 // factored axial (kN)

	designExposure        string
	designDeflectionDenom float64
	designCrackLimit      float64

	designJSON        bool
	designShowDiagram bool
	designOutputFile  string
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Design a reinforced concrete member per NSCP 2015",
	Long: `Design a reinforced concrete member per NSCP 2015.

Given section geometry, material grades and factored demands, the design
subcommands compute the required steel, select discrete bars from the
standard catalog, verify the as-built capacity, run the serviceability
checks and estimate the cost.

Use 'gorcm moment' first if you need to factor unfactored loads.`,
}

func init() {
	rootCmd.AddCommand(designCmd)
}

// addSectionFlags registers the geometry and material flags common to
// every member kind.
func addSectionFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&designWidth, "width", "b", 0, "Section width (mm)")
	cmd.Flags().Float64VarP(&designCover, "cover", "c", 40, "Clear concrete cover (mm)")
	cmd.Flags().Float64Var(&designFc, "fc", 21, "Concrete compressive strength f'c (MPa)")
	cmd.Flags().Float64Var(&designFy, "fy", 275, "Steel yield strength fy (MPa)")
}

// addOutputFlags registers report formatting flags.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&designJSON, "json", false, "Print the full result as JSON")
	cmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Draw the section and strain diagram")
	cmd.Flags().StringVarP(&designOutputFile, "output", "o", "", "Export the section diagram to a file (.png, .svg, .pdf)")
}

// addServiceFlags registers serviceability limit flags.
func addServiceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&designExposure, "exposure", "moderate", "Exposure class (mild, moderate, severe, extreme)")
	cmd.Flags().Float64Var(&designDeflectionDenom, "deflection-limit", 0, "Deflection limit denominator L/n (default 360)")
	cmd.Flags().Float64Var(&designCrackLimit, "crack-limit", 0, "Crack width limit (mm, overrides exposure class)")
}

// buildInput assembles a DesignInput from the shared flags.
func buildInput(kind section.Kind) (design.DesignInput, error) {
	exposure, err := design.ParseExposureClass(designExposure)
	if err != nil {
		return design.DesignInput{}, err
	}

	return design.DesignInput{
		Kind: kind,
		Geometry: section.Rectangular{
			Width:      designWidth,
			Height:     designHeight,
			ClearCover: designCover,
			Span:       designSpan,
		},
		Material: material.Set{
			Concrete: material.Concrete{Fc: designFc},
			Steel:    material.Steel{Fy: designFy},
		},
		Forces: design.Forces{
			Moment: designMu,
			Shear:  designVu,
			Axial:  designPu,
		},
		Constraints: design.Constraints{
			Exposure:                   exposure,
			DeflectionLimitDenominator: designDeflectionDenom,
			CrackWidthLimit:            designCrackLimit,
		},
	}, nil
}

// runDesign executes the engine and renders the result.
func runDesign(in design.DesignInput) {
	res, err := design.Design(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Printf("Use 'gorcm design %s --help' for usage information.\n", in.Kind)
		os.Exit(1)
	}

	if designJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printDesignReport(res)

	if designShowDiagram {
		data := diagram.FromResult(res, in.Material.Steel.Fy)
		fmt.Println(diagram.DrawSection(data))
	}

	if designOutputFile != "" {
		data := diagram.FromResult(res, in.Material.Steel.Fy)
		if err := diagram.ExportSection(data, designOutputFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Section diagram saved to %s\n", designOutputFile)
	}
}
