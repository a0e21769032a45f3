package charts

import (
	"fmt"

	"github.com/KaramelBytes/titanic-eda/internal/analysis"
	"github.com/KaramelBytes/titanic-eda/internal/dataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DefaultBins is the histogram bin count of the distribution panels.
const DefaultBins = 30

// Univariate draws the Age and log(1+Fare) distributions side by side.
func Univariate(tbl *dataset.Table, bins int) (*Figure, error) {
	if bins <= 0 {
		bins = DefaultBins
	}
	ages, err := tbl.Floats(dataset.ColAge)
	if err != nil {
		return nil, err
	}
	fares, err := tbl.Floats(dataset.ColFare)
	if err != nil {
		return nil, err
	}
	agePanel, err := histPanel("Distribution of Age", dataset.ColAge, analysis.DropNaN(ages), bins)
	if err != nil {
		return nil, fmt.Errorf("age histogram: %w", err)
	}
	farePanel, err := histPanel("Distribution of Log(Fare)", dataset.ColFare, analysis.Log1p(fares), bins)
	if err != nil {
		return nil, fmt.Errorf("fare histogram: %w", err)
	}
	return &Figure{
		Title:  "Univariate Analysis of Numerical Features",
		Width:  12 * vg.Inch,
		Height: 5 * vg.Inch,
		Panels: [][]*plot.Plot{{agePanel, farePanel}},
	}, nil
}

// histPanel draws a count histogram with a density curve scaled to the counts.
func histPanel(title, xlabel string, vals []float64, bins int) (*plot.Plot, error) {
	if len(vals) == 0 {
		return nil, ErrEmptyGroup
	}
	p := newPanel(title, xlabel, "Count")
	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = paletteColor(0, 0x99)
	h.LineStyle.Color = paletteColor(0, 0xff)
	h.LineStyle.Width = vg.Points(0.5)
	p.Add(h)

	width := (floats.Max(vals) - floats.Min(vals)) / float64(bins)
	curve := analysis.KDE(vals, analysis.KDEOptions{}).Scale(float64(len(vals)) * width)
	if len(curve.X) > 0 {
		line, err := plotter.NewLine(curveXYs(curve))
		if err != nil {
			return nil, err
		}
		line.Color = paletteColor(0, 0xff)
		line.Width = vg.Points(1.5)
		p.Add(line)
	}
	return p, nil
}

func curveXYs(c analysis.Curve) plotter.XYs {
	pts := make(plotter.XYs, len(c.X))
	for i := range c.X {
		pts[i].X = c.X[i]
		pts[i].Y = c.Y[i]
	}
	return pts
}
