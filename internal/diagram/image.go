package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportSection writes the section diagram to an image file. The
// format follows the extension (png, svg, pdf); anything else gets a
// .png suffix.
func ExportSection(data Data, filename string) error {
	p := plot.New()
	p.Title.Text = "Member Section"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	outline := plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Width, Y: 0},
		{X: data.Width, Y: data.Height},
		{X: 0, Y: data.Height},
		{X: 0, Y: 0},
	}
	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Equivalent stress block shading.
	if data.StressBlockDepth > 0 {
		block := plotter.XYs{
			{X: 0, Y: data.Height},
			{X: data.Width, Y: data.Height},
			{X: data.Width, Y: data.Height - data.StressBlockDepth},
			{X: 0, Y: data.Height - data.StressBlockDepth},
		}
		stressBlock, err := plotter.NewPolygon(block)
		if err != nil {
			return err
		}
		stressBlock.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
		stressBlock.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		p.Add(stressBlock)
	}

	// Neutral axis.
	naY := data.Height - data.NeutralAxisDepth
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: -20, Y: naY},
		{X: data.Width + 20, Y: naY},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	if err := addBarRow(p, data.Width, data.TensionSteelY, 3, vg.Points(6)); err != nil {
		return err
	}
	if data.IsDoubly {
		if err := addBarRow(p, data.Width, data.CompSteelY, 2, vg.Points(5)); err != nil {
			return err
		}
	}

	labels := []struct {
		x, y float64
		text string
	}{
		{data.Width + 30, naY, "N.A."},
		{data.Width + 30, data.Height - data.StressBlockDepth/2, fmt.Sprintf("a=%.1fmm", data.StressBlockDepth)},
		{data.Width / 2, data.TensionSteelY - 25, fmt.Sprintf("%s (%.0fmm²)", data.TensionBars, data.TensionSteelArea)},
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportStrain writes the strain distribution diagram to an image file.
func ExportStrain(data Data, filename string) error {
	p := plot.New()
	p.Title.Text = "Strain Distribution"
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = "Depth from top (mm)"

	// Depth increases downward.
	p.Y.Min = data.Height
	p.Y.Max = 0

	strainPts := plotter.XYs{
		{X: data.EpsilonCU, Y: 0},
		{X: 0, Y: data.NeutralAxisDepth},
		{X: -data.EpsilonT, Y: data.Height - data.TensionSteelY},
	}
	strainLine, err := plotter.NewLine(strainPts)
	if err != nil {
		return err
	}
	strainLine.LineStyle.Width = vg.Points(2)
	strainLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(strainLine)

	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: 0, Y: data.Height},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)

	for _, eps := range []float64{data.EpsilonY, -data.EpsilonY} {
		yieldLine, err := plotter.NewLine(plotter.XYs{
			{X: eps, Y: 0},
			{X: eps, Y: data.Height},
		})
		if err != nil {
			return err
		}
		yieldLine.LineStyle.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}
		yieldLine.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(yieldLine)
	}

	keyPoints, err := plotter.NewScatter(strainPts)
	if err != nil {
		return err
	}
	keyPoints.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	keyPoints.GlyphStyle.Radius = vg.Points(4)
	p.Add(keyPoints)

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

func addBarRow(p *plot.Plot, width, y float64, count int, radius vg.Length) error {
	pts := make(plotter.XYs, count)
	for i := range pts {
		frac := 0.3 + 0.4*float64(i)/float64(count-1)
		pts[i] = plotter.XY{X: width * frac, Y: y}
	}
	bars, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	bars.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	bars.GlyphStyle.Radius = radius
	bars.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(bars)
	return nil
}

func save(p *plot.Plot, w, h vg.Length, filename string) error {
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(w, h, filename)
	default:
		return p.Save(w, h, filename+".png")
	}
}
