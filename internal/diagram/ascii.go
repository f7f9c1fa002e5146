// Package diagram draws radiation-ratio curves: ASCII charts for the
// terminal and image files for reports.
package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// Point is one sample of a curve.
type Point struct {
	X float64
	Y float64
}

// RatioCurve holds the data for a radiation ratio vs wavenumber plot.
type RatioCurve struct {
	Title  string
	Points []Point // ascending X
}

// DrawASCIIRatioChart renders the curve as a terminal line chart of at most
// width columns. Samples are plotted in order, the X axis is given in the
// caption.
func DrawASCIIRatioChart(curve RatioCurve, width, height int) (string, error) {
	if len(curve.Points) == 0 {
		return "", fmt.Errorf("diagram: empty curve")
	}
	ys := make([]float64, len(curve.Points))
	for i, p := range curve.Points {
		ys[i] = p.Y
	}
	first, last := curve.Points[0].X, curve.Points[len(curve.Points)-1].X

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("%s, k = %.4g .. %.4g", curve.title(), first, last)),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(ys, opts...), nil
}

func (c RatioCurve) title() string {
	if c.Title == "" {
		return "radiation ratio"
	}
	return c.Title
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	fmt.Fprintf(&sb, "  ╔%s╗\n", border)
	fmt.Fprintf(&sb, "  ║  %s  ║\n", pad(title, maxLen-4))
	fmt.Fprintf(&sb, "  ╠%s╣\n", border)
	for _, line := range lines {
		fmt.Fprintf(&sb, "  ║  %s  ║\n", pad(line, maxLen-4))
	}
	fmt.Fprintf(&sb, "  ╚%s╝\n", border)

	return sb.String()
}

func pad(s string, n int) string {
	if d := n - utf8.RuneCountInString(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
