// Package report prints the text summary of a passenger table: head preview,
// structure, descriptive statistics and categorical frequencies.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/KaramelBytes/titanic-eda/internal/analysis"
	"github.com/KaramelBytes/titanic-eda/internal/dataset"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Section headers, in print order.
const (
	HeaderHead      = "First 5 rows of the dataset:"
	HeaderStructure = "--- Data Structure and Missing Values ---"
	HeaderDescribe  = "--- Descriptive Statistics for Numerical Features ---"
	HeaderCounts    = "--- Value Counts for Key Categorical Features ---"
)

// categoryLabels are the sub-headers of the frequency reports.
var categoryLabels = map[string]string{
	dataset.ColPclass:   "Passenger Class (Pclass):",
	dataset.ColSex:      "Gender (Sex):",
	dataset.ColEmbarked: "Port of Embarkation (Embarked):",
}

var headerColor = color.New(color.FgYellow, color.Bold)

// Printer writes report sections to w.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer { return &Printer{w: w} }

// Section prints a header line preceded by a blank line.
func (p *Printer) Section(title string) {
	fmt.Fprintln(p.w)
	headerColor.Fprintln(p.w, title)
}

func (p *Printer) table(header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(p.w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	return t
}

// Head prints the first rows of the table.
func (p *Printer) Head(tbl *dataset.Table, n int) {
	t := p.table(append([]string{""}, tbl.Columns()...))
	for i, row := range tbl.Head(n) {
		t.Append(append([]string{strconv.Itoa(i)}, row...))
	}
	t.Render()
}

// Structure prints a listing of columns, their non-null counts and dtypes.
func (p *Printer) Structure(rep *analysis.StructureReport) {
	fmt.Fprintln(p.w, "<class 'DataFrame'>")
	if rep.Rows > 0 {
		fmt.Fprintf(p.w, "RangeIndex: %d entries, 0 to %d\n", rep.Rows, rep.Rows-1)
	} else {
		fmt.Fprintln(p.w, "RangeIndex: 0 entries")
	}
	fmt.Fprintf(p.w, "Data columns (total %d columns):\n", rep.ColumnCount())
	t := p.table([]string{"#", "Column", "Non-Null Count", "Dtype"})
	for i, c := range rep.Cols {
		t.Append([]string{strconv.Itoa(i), c.Name, fmt.Sprintf("%d non-null", c.NonNull), c.DType})
	}
	t.Render()
	parts := make([]string, len(rep.DTypes))
	for i, d := range rep.DTypes {
		parts[i] = fmt.Sprintf("%s(%d)", d.DType, d.Count)
	}
	fmt.Fprintf(p.w, "dtypes: %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(p.w, "memory usage: %.1f+ KB\n", float64(rep.MemByte)/1024)
}

// Describe prints one statistic per row and one numeric column per column.
func (p *Printer) Describe(stats []analysis.ColumnStats) {
	header := []string{""}
	for _, s := range stats {
		header = append(header, s.Name)
	}
	t := p.table(header)
	rows := []struct {
		label string
		get   func(analysis.ColumnStats) float64
	}{
		{"count", func(s analysis.ColumnStats) float64 { return float64(s.Count) }},
		{"mean", func(s analysis.ColumnStats) float64 { return s.Mean }},
		{"std", func(s analysis.ColumnStats) float64 { return s.Std }},
		{"min", func(s analysis.ColumnStats) float64 { return s.Min }},
		{"25%", func(s analysis.ColumnStats) float64 { return s.Q25 }},
		{"50%", func(s analysis.ColumnStats) float64 { return s.Q50 }},
		{"75%", func(s analysis.ColumnStats) float64 { return s.Q75 }},
		{"max", func(s analysis.ColumnStats) float64 { return s.Max }},
	}
	for _, r := range rows {
		line := []string{r.label}
		for _, s := range stats {
			line = append(line, formatStat(r.get(s)))
		}
		t.Append(line)
	}
	t.Render()
}

// ValueCounts prints a frequency table for one column.
func (p *Printer) ValueCounts(col string, counts []analysis.CategoryCount) {
	label, ok := categoryLabels[col]
	if !ok {
		label = col + ":"
	}
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, label)
	t := p.table([]string{col, "count"})
	for _, c := range counts {
		t.Append([]string{c.Value, strconv.Itoa(c.Count)})
	}
	t.Render()
	fmt.Fprintf(p.w, "Name: count, total: %d\n", analysis.Total(counts))
}

// Correlation prints the coefficient matrix with two decimals.
func (p *Printer) Correlation(m *analysis.CorrMatrix) {
	t := p.table(append([]string{""}, m.Columns...))
	for i, c := range m.Columns {
		line := []string{c}
		for j := range m.Columns {
			line = append(line, formatCorr(m.At(i, j)))
		}
		t.Append(line)
	}
	t.Render()
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func formatCorr(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Options controls the summary.
type Options struct {
	HeadRows int
}

// Summary prints every report section in order: head, structure,
// descriptive statistics, then frequencies of Pclass, Sex and Embarked.
func Summary(w io.Writer, tbl *dataset.Table, opt Options) error {
	p := New(w)
	if opt.HeadRows > 0 {
		title := HeaderHead
		if opt.HeadRows != 5 {
			title = fmt.Sprintf("First %d rows of the dataset:", opt.HeadRows)
		}
		headerColor.Fprintln(w, title)
		p.Head(tbl, opt.HeadRows)
	}

	info, err := analysis.Info(tbl)
	if err != nil {
		return fmt.Errorf("structure: %w", err)
	}
	p.Section(HeaderStructure)
	p.Structure(info)

	stats, err := analysis.Describe(tbl)
	if err != nil {
		return fmt.Errorf("describe: %w", err)
	}
	p.Section(HeaderDescribe)
	p.Describe(stats)

	p.Section(HeaderCounts)
	for _, col := range dataset.CategoricalColumns() {
		counts, err := analysis.ValueCounts(tbl, col)
		if err != nil {
			return fmt.Errorf("value counts %s: %w", col, err)
		}
		p.ValueCounts(col, counts)
	}
	return nil
}
