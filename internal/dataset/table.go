package dataset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Kind classifies a column for the summary and plotting steps.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
)

// nanValues are the cell spellings treated as missing.
var nanValues = []string{"", "NA", "NaN", "nan", "<nil>"}

// Table is a read-only view over a loaded passenger CSV.
// Accessors return copies; nothing reachable from a Table mutates it.
type Table struct {
	name string
	df   dataframe.DataFrame
}

// Load reads the CSV at path and checks the required passenger columns.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	t, err := Read(f, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if err := t.Require(RequiredColumns...); err != nil {
		return nil, err
	}
	return t, nil
}

// Read parses CSV from r without checking for the passenger columns.
func Read(r io.Reader, name string) (*Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(nanValues),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, df.Err)
	}
	return &Table{name: name, df: df}, nil
}

// Name is the base name of the source file.
func (t *Table) Name() string { return t.name }

// Rows returns the number of data rows (header excluded).
func (t *Table) Rows() int { return t.df.Nrow() }

// Columns returns the header names in file order.
func (t *Table) Columns() []string { return t.df.Names() }

// Has reports whether col is in the header.
func (t *Table) Has(col string) bool {
	for _, n := range t.df.Names() {
		if n == col {
			return true
		}
	}
	return false
}

// Require returns a *MissingColumnsError naming every absent column.
func (t *Table) Require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Table: t.name, Columns: missing}
	}
	return nil
}

func (t *Table) col(name string) (series.Series, error) {
	if !t.Has(name) {
		return series.Series{}, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}
	s := t.df.Col(name)
	if s.Err != nil {
		return series.Series{}, fmt.Errorf("column %s: %w", name, s.Err)
	}
	return s, nil
}

// Kind reports whether a column holds numbers or categories.
func (t *Table) Kind(col string) (Kind, error) {
	s, err := t.col(col)
	if err != nil {
		return "", err
	}
	switch s.Type() {
	case series.Int, series.Float:
		return KindNumeric, nil
	default:
		return KindCategorical, nil
	}
}

// DType returns the pandas-style dtype label of a column. Integer columns
// holding missing values cannot stay integral and are reported as float64.
func (t *Table) DType(col string) (string, error) {
	s, err := t.col(col)
	if err != nil {
		return "", err
	}
	switch s.Type() {
	case series.Int:
		for _, na := range s.IsNaN() {
			if na {
				return "float64", nil
			}
		}
		return "int64", nil
	case series.Float:
		return "float64", nil
	case series.Bool:
		return "bool", nil
	default:
		return "object", nil
	}
}

// Floats returns the column as float64 with NaN for missing cells.
// Categorical columns are rejected.
func (t *Table) Floats(col string) ([]float64, error) {
	s, err := t.col(col)
	if err != nil {
		return nil, err
	}
	if s.Type() != series.Int && s.Type() != series.Float {
		return nil, fmt.Errorf("column %s is %s, not numeric", col, s.Type())
	}
	return s.Float(), nil
}

// Strings returns the column rendered as text plus a presence mask.
// Missing cells are "" with present[i] == false.
func (t *Table) Strings(col string) (vals []string, present []bool, err error) {
	s, err := t.col(col)
	if err != nil {
		return nil, nil, err
	}
	na := s.IsNaN()
	vals = make([]string, s.Len())
	present = make([]bool, s.Len())
	var fl []float64
	if dt, _ := t.DType(col); dt == "float64" {
		fl = s.Float()
	}
	recs := s.Records()
	for i := range vals {
		if na[i] {
			continue
		}
		present[i] = true
		if fl != nil {
			vals[i] = FormatFloat(fl[i])
		} else {
			vals[i] = recs[i]
		}
	}
	return vals, present, nil
}

// NonNull counts the present cells of a column.
func (t *Table) NonNull(col string) (int, error) {
	s, err := t.col(col)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, na := range s.IsNaN() {
		if !na {
			n++
		}
	}
	return n, nil
}

// CompleteCases returns a new table keeping only rows with every listed column present.
func (t *Table) CompleteCases(cols ...string) (*Table, error) {
	keep := make([]bool, t.Rows())
	for i := range keep {
		keep[i] = true
	}
	for _, c := range cols {
		s, err := t.col(c)
		if err != nil {
			return nil, err
		}
		for i, na := range s.IsNaN() {
			if na {
				keep[i] = false
			}
		}
	}
	idx := make([]int, 0, len(keep))
	for i, k := range keep {
		if k {
			idx = append(idx, i)
		}
	}
	sub := t.df.Subset(idx)
	if sub.Err != nil {
		return nil, fmt.Errorf("complete cases: %w", sub.Err)
	}
	return &Table{name: t.name, df: sub}, nil
}

// Head returns up to n rows rendered as text, "NaN" for missing cells.
func (t *Table) Head(n int) [][]string {
	if n > t.Rows() {
		n = t.Rows()
	}
	if n <= 0 {
		return nil
	}
	cols := t.Columns()
	out := make([][]string, n)
	for i := range out {
		out[i] = make([]string, len(cols))
	}
	for j, c := range cols {
		vals, present, err := t.Strings(c)
		if err != nil {
			continue
		}
		for i := 0; i < n; i++ {
			if present[i] {
				out[i][j] = vals[i]
			} else {
				out[i][j] = "NaN"
			}
		}
	}
	return out
}

// FormatFloat renders a float the way a dataframe preview does: integral
// values keep one decimal, others use the shortest exact representation.
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
