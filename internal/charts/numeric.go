package charts

import (
	"fmt"
	"math"

	"github.com/KaramelBytes/titanic-eda/internal/dataset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SurvivalBoxes draws Age and Fare box plots split by outcome. The Fare
// panel uses a log axis and therefore leaves out non-positive fares.
func SurvivalBoxes(tbl *dataset.Table) (*Figure, error) {
	outcome, err := tbl.Floats(dataset.ColSurvived)
	if err != nil {
		return nil, err
	}
	age, err := boxPanel(tbl, outcome, dataset.ColAge, "Age Distribution by Survival (0=Died, 1=Survived)", false)
	if err != nil {
		return nil, fmt.Errorf("age boxes: %w", err)
	}
	fare, err := boxPanel(tbl, outcome, dataset.ColFare, "Fare Distribution by Survival (0=Died, 1=Survived)", true)
	if err != nil {
		return nil, fmt.Errorf("fare boxes: %w", err)
	}
	return &Figure{
		Title:  "Bivariate Analysis: Numerical Features vs. Survival",
		Width:  12 * vg.Inch,
		Height: 5 * vg.Inch,
		Panels: [][]*plot.Plot{{age, fare}},
	}, nil
}

// splitByOutcome partitions the present values of vals by outcome 0 and 1.
func splitByOutcome(outcome, vals []float64, positiveOnly bool) [2]plotter.Values {
	var groups [2]plotter.Values
	for i, v := range vals {
		o := outcome[i]
		if math.IsNaN(v) || (o != 0 && o != 1) {
			continue
		}
		if positiveOnly && v <= 0 {
			continue
		}
		groups[int(o)] = append(groups[int(o)], v)
	}
	return groups
}

func boxPanel(tbl *dataset.Table, outcome []float64, col, title string, logY bool) (*plot.Plot, error) {
	vals, err := tbl.Floats(col)
	if err != nil {
		return nil, err
	}
	p := newPanel(title, dataset.ColSurvived, col)
	for i, g := range splitByOutcome(outcome, vals, logY) {
		if len(g) == 0 {
			return nil, fmt.Errorf("%w: %s for %s=%d", ErrEmptyGroup, col, dataset.ColSurvived, i)
		}
		b, err := plotter.NewBoxPlot(vg.Points(60), float64(i), g)
		if err != nil {
			return nil, err
		}
		b.FillColor = paletteColor(i, 0xcc)
		p.Add(b)
	}
	p.NominalX("0", "1")
	if logY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	return p, nil
}
