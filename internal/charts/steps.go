package charts

import (
	"fmt"

	"github.com/KaramelBytes/titanic-eda/internal/analysis"
	"github.com/KaramelBytes/titanic-eda/internal/dataset"
)

// Options tunes the figure builders.
type Options struct {
	Bins      int
	Bootstrap analysis.Bootstrap
}

// DefaultOptions matches the notebook: 30 bins, 1000 bootstrap resamples at 95%.
func DefaultOptions() Options {
	return Options{Bins: DefaultBins, Bootstrap: analysis.DefaultBootstrap()}
}

// Step is one figure of the fixed sequence.
type Step struct {
	Name  string
	File  string
	Build func(tbl *dataset.Table, opt Options) (*Figure, error)
}

// Steps returns the figure sequence in drawing order.
func Steps() []Step {
	return []Step{
		{
			Name: "univariate",
			File: "01_univariate",
			Build: func(tbl *dataset.Table, opt Options) (*Figure, error) {
				return Univariate(tbl, opt.Bins)
			},
		},
		{
			Name: "categorical",
			File: "02_survival_by_category",
			Build: func(tbl *dataset.Table, opt Options) (*Figure, error) {
				return SurvivalRates(tbl, opt.Bootstrap)
			},
		},
		{
			Name: "numeric",
			File: "03_survival_by_numeric",
			Build: func(tbl *dataset.Table, _ Options) (*Figure, error) {
				return SurvivalBoxes(tbl)
			},
		},
		{
			Name: "correlation",
			File: "04_correlation",
			Build: func(tbl *dataset.Table, _ Options) (*Figure, error) {
				fig, m, err := CorrelationHeatmap(tbl, dataset.NumericColumns())
				if err != nil {
					return nil, err
				}
				fig.Notes = append(fig.Notes, fmt.Sprintf("pairwise-complete rows: min %d", m.MinPairs()))
				return fig, nil
			},
		},
		{
			Name: "pairplot",
			File: "05_pairplot",
			Build: func(tbl *dataset.Table, _ Options) (*Figure, error) {
				fig, rows, err := PairGrid(tbl, dataset.NumericColumns(), dataset.ColSurvived)
				if err != nil {
					return nil, err
				}
				fig.Notes = append(fig.Notes, fmt.Sprintf("complete-case rows: %d of %d", rows, tbl.Rows()))
				return fig, nil
			},
		},
	}
}

// Lookup finds a step by name.
func Lookup(name string) (Step, bool) {
	for _, s := range Steps() {
		if s.Name == name {
			return s, true
		}
	}
	return Step{}, false
}

// StepNames lists the step names in drawing order.
func StepNames() []string {
	steps := Steps()
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Name
	}
	return out
}
