package charts

import (
	"fmt"
	"sort"

	"github.com/KaramelBytes/titanic-eda/internal/analysis"
	"github.com/KaramelBytes/titanic-eda/internal/dataset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const pairPanelSize = 2.5 * vg.Inch

// PairGrid draws an N×N grid over cols coloured by hue: scatter plots off
// the diagonal and per-level density curves on it. Rows missing any of
// cols are dropped first. It also returns the number of rows drawn.
func PairGrid(tbl *dataset.Table, cols []string, hue string) (*Figure, int, error) {
	cc, err := tbl.CompleteCases(append(append([]string(nil), cols...), hue)...)
	if err != nil {
		return nil, 0, err
	}
	if cc.Rows() == 0 {
		return nil, 0, fmt.Errorf("pair plot: %w: no complete rows", ErrEmptyGroup)
	}
	data := make([][]float64, len(cols))
	for i, c := range cols {
		if data[i], err = cc.Floats(c); err != nil {
			return nil, 0, err
		}
	}
	hueVals, err := cc.Floats(hue)
	if err != nil {
		return nil, 0, err
	}
	levels := hueLevels(hueVals)

	n := len(cols)
	panels := make([][]*plot.Plot, n)
	for r := 0; r < n; r++ {
		panels[r] = make([]*plot.Plot, n)
		for c := 0; c < n; c++ {
			p := newPanel("", "", "")
			if r == n-1 {
				p.X.Label.Text = cols[c]
			}
			if c == 0 {
				p.Y.Label.Text = cols[r]
			}
			if r == c {
				err = addDensities(p, data[c], hueVals, levels)
			} else {
				err = addScatter(p, data[c], data[r], hueVals, levels)
			}
			if err != nil {
				return nil, 0, fmt.Errorf("pair plot %s/%s: %w", cols[r], cols[c], err)
			}
			panels[r][c] = p
		}
	}
	addHueLegend(panels[0][n-1], hue, levels)

	side := pairPanelSize * vg.Length(n)
	return &Figure{
		Title:  "Pair Plot of Numerical Features Colored by Survival",
		Width:  side,
		Height: side + titleHeight,
		Panels: panels,
	}, cc.Rows(), nil
}

func hueLevels(hue []float64) []float64 {
	seen := map[float64]bool{}
	var out []float64
	for _, h := range hue {
		if !seen[h] {
			seen[h] = true
			out = append(out, h)
		}
	}
	sort.Float64s(out)
	return out
}

func selectLevel(vals, hue []float64, level float64) []float64 {
	var out []float64
	for i, v := range vals {
		if hue[i] == level {
			out = append(out, v)
		}
	}
	return out
}

func addDensities(p *plot.Plot, vals, hue, levels []float64) error {
	for i, lv := range levels {
		curve := analysis.KDE(selectLevel(vals, hue, lv), analysis.KDEOptions{Cut: 3})
		if len(curve.X) == 0 {
			continue
		}
		line, err := plotter.NewLine(curveXYs(curve))
		if err != nil {
			return err
		}
		line.Color = paletteColor(i, 0xff)
		line.Width = vg.Points(1.5)
		p.Add(line)
	}
	return nil
}

func addScatter(p *plot.Plot, xs, ys, hue, levels []float64) error {
	for i, lv := range levels {
		var pts plotter.XYs
		for k := range xs {
			if hue[k] == lv {
				pts = append(pts, plotter.XY{X: xs[k], Y: ys[k]})
			}
		}
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = paletteColor(i, 0xaa)
		s.GlyphStyle.Radius = vg.Points(1.5)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
	}
	return nil
}

func addHueLegend(p *plot.Plot, hue string, levels []float64) {
	p.Legend.Top = true
	for i, lv := range levels {
		s, err := plotter.NewScatter(plotter.XYs{{}})
		if err != nil {
			continue
		}
		s.GlyphStyle.Color = paletteColor(i, 0xff)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Legend.Add(fmt.Sprintf("%s=%s", hue, dataset.FormatFloat(lv)), s)
	}
}
