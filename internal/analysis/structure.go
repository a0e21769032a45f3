package analysis

import (
	"sort"

	"github.com/KaramelBytes/titanic-eda/internal/dataset"
)

// ColumnInfo is one line of the structural report.
type ColumnInfo struct {
	Name    string
	NonNull int
	Missing int
	DType   string
}

// DTypeCount tallies columns sharing a dtype.
type DTypeCount struct {
	DType string
	Count int
}

// StructureReport mirrors a dataframe info() listing.
type StructureReport struct {
	Name    string
	Rows    int
	Cols    []ColumnInfo
	DTypes  []DTypeCount
	MemByte int
}

// Info builds the structural report of a table.
func Info(tbl *dataset.Table) (*StructureReport, error) {
	rep := &StructureReport{Name: tbl.Name(), Rows: tbl.Rows()}
	tally := map[string]int{}
	for _, c := range tbl.Columns() {
		nn, err := tbl.NonNull(c)
		if err != nil {
			return nil, err
		}
		dt, err := tbl.DType(c)
		if err != nil {
			return nil, err
		}
		rep.Cols = append(rep.Cols, ColumnInfo{Name: c, NonNull: nn, Missing: rep.Rows - nn, DType: dt})
		tally[dt]++
	}
	for dt, n := range tally {
		rep.DTypes = append(rep.DTypes, DTypeCount{DType: dt, Count: n})
	}
	sort.Slice(rep.DTypes, func(i, j int) bool { return rep.DTypes[i].DType < rep.DTypes[j].DType })
	// 8 bytes per cell plus a range index, as a lower bound.
	rep.MemByte = rep.Rows*len(rep.Cols)*8 + 128
	return rep, nil
}

// ColumnCount is the number of columns in the header.
func (r *StructureReport) ColumnCount() int { return len(r.Cols) }
