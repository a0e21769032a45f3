package charts

import (
	"fmt"

	"github.com/KaramelBytes/titanic-eda/internal/analysis"
	"github.com/KaramelBytes/titanic-eda/internal/dataset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// meanCI pairs bar tops with their confidence interval half-widths.
type meanCI struct {
	plotter.XYs
	plotter.YErrors
}

var survivalPanels = []struct {
	col   string
	title string
}{
	{dataset.ColSex, "Survival Rate by Sex"},
	{dataset.ColPclass, "Survival Rate by Pclass"},
	{dataset.ColEmbarked, "Survival Rate by Port of Embarkation"},
}

// SurvivalRates draws mean survival per Sex, Pclass and Embarked with
// bootstrap confidence intervals.
func SurvivalRates(tbl *dataset.Table, boot analysis.Bootstrap) (*Figure, error) {
	row := make([]*plot.Plot, 0, len(survivalPanels))
	for _, sp := range survivalPanels {
		means, err := analysis.GroupMeans(tbl, sp.col, dataset.ColSurvived, boot)
		if err != nil {
			return nil, fmt.Errorf("survival by %s: %w", sp.col, err)
		}
		p, err := barPanel(sp.title, sp.col, means)
		if err != nil {
			return nil, fmt.Errorf("survival by %s: %w", sp.col, err)
		}
		row = append(row, p)
	}
	return &Figure{
		Title:  "Bivariate Analysis: Categorical Features vs. Survival",
		Width:  15 * vg.Inch,
		Height: 5 * vg.Inch,
		Panels: [][]*plot.Plot{row},
	}, nil
}

func barPanel(title, xlabel string, means []analysis.GroupMean) (*plot.Plot, error) {
	if len(means) == 0 {
		return nil, ErrEmptyGroup
	}
	p := newPanel(title, xlabel, dataset.ColSurvived)
	labels := make([]string, len(means))
	ci := meanCI{
		XYs:     make(plotter.XYs, len(means)),
		YErrors: make(plotter.YErrors, len(means)),
	}
	for i, g := range means {
		bar, err := plotter.NewBarChart(plotter.Values{g.Mean}, vg.Points(60))
		if err != nil {
			return nil, err
		}
		bar.XMin = float64(i)
		bar.Color = paletteColor(i, 0xcc)
		bar.LineStyle.Width = 0
		p.Add(bar)

		labels[i] = g.Label
		ci.XYs[i] = plotter.XY{X: float64(i), Y: g.Mean}
		ci.YErrors[i].Low = g.Mean - g.Low
		ci.YErrors[i].High = g.High - g.Mean
	}
	bars, err := plotter.NewYErrorBars(ci)
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Points(1.5)
	p.Add(bars)
	p.NominalX(labels...)
	p.Y.Min = 0
	return p, nil
}
