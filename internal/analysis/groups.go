package analysis

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strconv"
	"time"

	"github.com/KaramelBytes/titanic-eda/internal/dataset"
	"gonum.org/v1/gonum/stat"
)

// Bootstrap configures the percentile bootstrap used for error bars.
type Bootstrap struct {
	// Samples is the number of resamples; 0 disables the interval.
	Samples int
	// Level is the confidence level in percent, e.g. 95.
	Level float64
	// Seed fixes the resampling stream; 0 seeds from the clock.
	Seed uint64
}

// DefaultBootstrap resamples 1000 times for a 95% interval.
func DefaultBootstrap() Bootstrap {
	return Bootstrap{Samples: 1000, Level: 95}
}

// GroupMean is the mean of a value column within one category.
type GroupMean struct {
	Label string
	N     int
	Mean  float64
	Low   float64
	High  float64
}

// GroupMeans averages valueCol within each present category of groupCol.
// Numeric groupings are ordered ascending, text groupings by first appearance.
// Rows missing either column are dropped.
func GroupMeans(tbl *dataset.Table, groupCol, valueCol string, boot Bootstrap) ([]GroupMean, error) {
	labels, present, err := tbl.Strings(groupCol)
	if err != nil {
		return nil, err
	}
	vals, err := numericColumn(tbl, valueCol)
	if err != nil {
		return nil, err
	}
	kind, err := tbl.Kind(groupCol)
	if err != nil {
		return nil, err
	}

	index := map[string]int{}
	var order []string
	buckets := map[string][]float64{}
	for i, lbl := range labels {
		if !present[i] || math.IsNaN(vals[i]) {
			continue
		}
		if _, ok := index[lbl]; !ok {
			index[lbl] = len(order)
			order = append(order, lbl)
		}
		buckets[lbl] = append(buckets[lbl], vals[i])
	}
	if kind == dataset.KindNumeric {
		sort.SliceStable(order, func(i, j int) bool {
			a, _ := strconv.ParseFloat(order[i], 64)
			b, _ := strconv.ParseFloat(order[j], 64)
			return a < b
		})
	}

	rng := boot.rand()
	out := make([]GroupMean, 0, len(order))
	for _, lbl := range order {
		xs := buckets[lbl]
		g := GroupMean{Label: lbl, N: len(xs), Mean: stat.Mean(xs, nil)}
		g.Low, g.High = boot.interval(xs, g.Mean, rng)
		out = append(out, g)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("group %s by %s: no complete rows", valueCol, groupCol)
	}
	return out, nil
}

func (b Bootstrap) rand() *rand.Rand {
	seed := b.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// interval returns the percentile bootstrap bounds of the mean of xs.
func (b Bootstrap) interval(xs []float64, mean float64, rng *rand.Rand) (lo, hi float64) {
	if b.Samples <= 0 || len(xs) < 2 {
		return mean, mean
	}
	level := b.Level
	if level <= 0 || level >= 100 {
		level = 95
	}
	means := make([]float64, b.Samples)
	n := len(xs)
	for s := range means {
		sum := 0.0
		for k := 0; k < n; k++ {
			sum += xs[rng.IntN(n)]
		}
		means[s] = sum / float64(n)
	}
	sort.Float64s(means)
	tail := (1 - level/100) / 2
	return quantile(means, tail), quantile(means, 1-tail)
}
