package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportRatioDiagram writes the radiation ratio curve to filename. The
// format follows the extension (.png, .svg, .pdf); anything else gets .png
// appended. The returned path is the file actually written.
func ExportRatioDiagram(curve RatioCurve, filename string) (string, error) {
	if len(curve.Points) == 0 {
		return "", fmt.Errorf("diagram: empty curve")
	}
	p := plot.New()
	p.Title.Text = curve.title()
	p.X.Label.Text = "Wavenumber k (1/m)"
	p.Y.Label.Text = "Radiation ratio"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(curve.Points))
	for i, pt := range curve.Points {
		pts[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	marks, err := plotter.NewScatter(pts)
	if err != nil {
		return "", err
	}
	marks.GlyphStyle.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	marks.GlyphStyle.Radius = vg.Points(2)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marks)

	// Unit ratio reference line
	ref, err := plotter.NewLine(plotter.XYs{
		{X: pts[0].X, Y: 1},
		{X: pts[len(pts)-1].X, Y: 1},
	})
	if err != nil {
		return "", err
	}
	ref.LineStyle.Width = vg.Points(1)
	ref.LineStyle.Color = color.Gray{Y: 128}
	ref.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(ref)

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(8*vg.Inch, 5*vg.Inch, filename); err != nil {
		return "", err
	}
	return filename, nil
}
