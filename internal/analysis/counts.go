package analysis

import (
	"sort"

	"github.com/KaramelBytes/titanic-eda/internal/dataset"
)

// CategoryCount is the frequency of one distinct value.
type CategoryCount struct {
	Value string
	Count int
}

// ValueCounts counts the distinct present values of col, most frequent first.
// Ties keep the order in which values first appear. Missing cells are not counted.
func ValueCounts(tbl *dataset.Table, col string) ([]CategoryCount, error) {
	vals, present, err := tbl.Strings(col)
	if err != nil {
		return nil, err
	}
	index := map[string]int{}
	var out []CategoryCount
	for i, v := range vals {
		if !present[i] {
			continue
		}
		if k, ok := index[v]; ok {
			out[k].Count++
			continue
		}
		index[v] = len(out)
		out = append(out, CategoryCount{Value: v, Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

// Total sums the counts.
func Total(counts []CategoryCount) int {
	n := 0
	for _, c := range counts {
		n += c.Count
	}
	return n
}
