package charts

import (
	"image/color"
	"math"
	"strconv"

	"github.com/KaramelBytes/titanic-eda/internal/analysis"
	"github.com/KaramelBytes/titanic-eda/internal/dataset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// corrGrid lays a correlation matrix out with its first row at the top.
type corrGrid struct {
	m *analysis.CorrMatrix
}

func (g corrGrid) Dims() (c, r int) { return g.m.Len(), g.m.Len() }
func (g corrGrid) Z(c, r int) float64 { return g.m.At(g.m.Len()-1-r, c) }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// CorrelationHeatmap computes the pairwise-complete matrix of cols and draws it.
func CorrelationHeatmap(tbl *dataset.Table, cols []string) (*Figure, *analysis.CorrMatrix, error) {
	m, err := analysis.PairwiseCorrelation(tbl, cols)
	if err != nil {
		return nil, nil, err
	}
	fig, err := Heatmap(m)
	if err != nil {
		return nil, nil, err
	}
	return fig, m, nil
}

// Heatmap draws an annotated correlation matrix on a blue-red scale fixed
// to [-1, 1] so that zero sits at the neutral midpoint.
func Heatmap(m *analysis.CorrMatrix) (*Figure, error) {
	n := m.Len()
	if n == 0 {
		return nil, ErrEmptyGroup
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	p := plot.New()
	p.Title.Text = "Correlation Matrix of Numerical Features"
	hm := plotter.NewHeatMap(corrGrid{m}, cm.Palette(255))
	hm.Min, hm.Max = -1, 1
	hm.NaN = color.Transparent
	p.Add(hm)

	var cells plotter.XYLabels
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cells.XYs = append(cells.XYs, plotter.XY{X: float64(c), Y: float64(n - 1 - r)})
			cells.Labels = append(cells.Labels, annotate(m.At(r, c)))
		}
	}
	labels, err := plotter.NewLabels(cells)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(labels)

	reversed := make([]string, n)
	for i, c := range m.Columns {
		reversed[n-1-i] = c
	}
	p.NominalX(m.Columns...)
	p.NominalY(reversed...)

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true, Colors: 255})
	bar.HideX()

	return &Figure{
		Width:    8 * vg.Inch,
		Height:   6 * vg.Inch,
		Panels:   [][]*plot.Plot{{p}},
		ColorBar: bar,
	}, nil
}

func annotate(r float64) string {
	if math.IsNaN(r) {
		return ""
	}
	return strconv.FormatFloat(r, 'f', 2, 64)
}
