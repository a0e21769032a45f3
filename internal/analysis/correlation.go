package analysis

import (
	"fmt"
	"math"

	"github.com/KaramelBytes/titanic-eda/internal/dataset"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CorrMatrix holds a symmetric Pearson correlation matrix across numeric columns.
type CorrMatrix struct {
	Columns []string
	Values  *mat.SymDense
	// Pairs[i][j] is the number of rows where both columns are present.
	Pairs [][]int
}

// At returns the coefficient between columns i and j.
func (m *CorrMatrix) At(i, j int) float64 { return m.Values.At(i, j) }

// Len is the number of columns.
func (m *CorrMatrix) Len() int { return len(m.Columns) }

// MinPairs is the smallest paired row count over all off-diagonal cells.
func (m *CorrMatrix) MinPairs() int {
	lo := math.MaxInt
	for i := range m.Pairs {
		for j := range m.Pairs[i] {
			if i != j && m.Pairs[i][j] < lo {
				lo = m.Pairs[i][j]
			}
		}
	}
	if lo == math.MaxInt {
		return 0
	}
	return lo
}

// PairwiseCorrelation computes Pearson coefficients for every pair of cols,
// each using only rows where both columns are present. The diagonal is 1.
// Pairs with fewer than two rows or no variance yield NaN.
func PairwiseCorrelation(tbl *dataset.Table, cols []string) (*CorrMatrix, error) {
	n := len(cols)
	if n == 0 {
		return nil, fmt.Errorf("correlation: no columns")
	}
	data := make([][]float64, n)
	for i, c := range cols {
		vals, err := numericColumn(tbl, c)
		if err != nil {
			return nil, fmt.Errorf("correlation: %w", err)
		}
		data[i] = vals
	}
	m := &CorrMatrix{
		Columns: append([]string(nil), cols...),
		Values:  mat.NewSymDense(n, nil),
		Pairs:   make([][]int, n),
	}
	for i := range m.Pairs {
		m.Pairs[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		m.Values.SetSym(i, i, 1)
		m.Pairs[i][i] = len(DropNaN(data[i]))
		for j := i + 1; j < n; j++ {
			x, y := pairedRows(data[i], data[j])
			m.Pairs[i][j] = len(x)
			m.Pairs[j][i] = len(x)
			m.Values.SetSym(i, j, pearson(x, y))
		}
	}
	return m, nil
}

func pairedRows(a, b []float64) (x, y []float64) {
	for k := range a {
		if math.IsNaN(a[k]) || math.IsNaN(b[k]) {
			continue
		}
		x = append(x, a[k])
		y = append(y, b[k])
	}
	return x, y
}

func pearson(x, y []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return math.NaN()
	}
	r := stat.Correlation(x, y, nil)
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}
