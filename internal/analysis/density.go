package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Curve is a sampled function, X ascending.
type Curve struct {
	X []float64
	Y []float64
}

// KDEOptions controls where a density estimate is evaluated.
type KDEOptions struct {
	// Points is the grid size; 0 means 200.
	Points int
	// Cut extends the grid this many bandwidths past the data range.
	Cut float64
}

// ScottBandwidth is the Gaussian kernel bandwidth from Scott's rule.
func ScottBandwidth(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.StdDev(xs, nil) * math.Pow(float64(len(xs)), -1.0/5.0)
}

// KDE evaluates a Gaussian kernel density estimate of vals (NaN ignored).
// With a wide enough Cut the curve integrates to one. Fewer than two values or zero spread yields an empty curve.
func KDE(vals []float64, opt KDEOptions) Curve {
	xs := DropNaN(vals)
	bw := ScottBandwidth(xs)
	if math.IsNaN(bw) || bw == 0 {
		return Curve{}
	}
	points := opt.Points
	if points <= 0 {
		points = 200
	} else if points < 2 {
		points = 2
	}
	lo := floats.Min(xs) - opt.Cut*bw
	hi := floats.Max(xs) + opt.Cut*bw
	grid := make([]float64, points)
	floats.Span(grid, lo, hi)

	kernel := distuv.Normal{Mu: 0, Sigma: bw}
	ys := make([]float64, points)
	n := float64(len(xs))
	for i, g := range grid {
		sum := 0.0
		for _, x := range xs {
			sum += kernel.Prob(g - x)
		}
		ys[i] = sum / n
	}
	return Curve{X: grid, Y: ys}
}

// Scale multiplies every Y by k, returning a new curve.
func (c Curve) Scale(k float64) Curve {
	ys := make([]float64, len(c.Y))
	copy(ys, c.Y)
	floats.Scale(k, ys)
	return Curve{X: c.X, Y: ys}
}
