package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/KaramelBytes/titanic-eda/internal/dataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrNotNumeric is returned when a numeric statistic is asked of a categorical column.
var ErrNotNumeric = errors.New("column is not numeric")

// ColumnStats is one column of a describe() table.
type ColumnStats struct {
	Name  string
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Describe computes descriptive statistics for every numeric column, in header order.
func Describe(tbl *dataset.Table) ([]ColumnStats, error) {
	var out []ColumnStats
	for _, c := range tbl.Columns() {
		kind, err := tbl.Kind(c)
		if err != nil {
			return nil, err
		}
		if kind != dataset.KindNumeric {
			continue
		}
		vals, err := tbl.Floats(c)
		if err != nil {
			return nil, err
		}
		out = append(out, DescribeValues(c, vals))
	}
	return out, nil
}

// DescribeColumn computes statistics for a single numeric column.
func DescribeColumn(tbl *dataset.Table, col string) (ColumnStats, error) {
	vals, err := numericColumn(tbl, col)
	if err != nil {
		return ColumnStats{}, err
	}
	return DescribeValues(col, vals), nil
}

// DescribeValues summarizes vals, ignoring NaN entries. With no values every
// statistic is NaN; with one value Std is NaN.
func DescribeValues(name string, vals []float64) ColumnStats {
	xs := DropNaN(vals)
	s := ColumnStats{Name: name, Count: len(xs)}
	if len(xs) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q25, s.Q50, s.Q75, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}
	sort.Float64s(xs)
	s.Mean = stat.Mean(xs, nil)
	if len(xs) > 1 {
		s.Std = stat.StdDev(xs, nil)
	} else {
		s.Std = math.NaN()
	}
	s.Min = floats.Min(xs)
	s.Max = floats.Max(xs)
	s.Q25 = quantile(xs, 0.25)
	s.Q50 = quantile(xs, 0.50)
	s.Q75 = quantile(xs, 0.75)
	return s
}

// DropNaN returns a copy of vals without NaN entries.
func DropNaN(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Log1p returns log(1+x) of the present values of vals.
func Log1p(vals []float64) []float64 {
	out := DropNaN(vals)
	for i, v := range out {
		out[i] = math.Log1p(v)
	}
	return out
}

func numericColumn(tbl *dataset.Table, col string) ([]float64, error) {
	kind, err := tbl.Kind(col)
	if err != nil {
		return nil, err
	}
	if kind != dataset.KindNumeric {
		return nil, fmt.Errorf("%w: %s", ErrNotNumeric, col)
	}
	return tbl.Floats(col)
}

// quantile interpolates linearly between order statistics of a sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
