// Package charts holds digitized empirical charts: one and two parameter
// tables with clamped linear lookups, and the flap design charts.
package charts

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/interp"
)

// Clip limits v to [lo, hi]. NaN passes through.
func Clip[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Curve is a digitized one-parameter chart. Lookups interpolate linearly and
// clamp the query to the sampled range.
type Curve struct {
	lo, hi float64
	fit    interp.PiecewiseLinear
}

// NewCurve builds a curve from sample points. xs must be strictly increasing.
func NewCurve(xs, ys []float64) (*Curve, error) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return nil, fmt.Errorf("curve needs at least 2 matching points, got %d x and %d y", len(xs), len(ys))
	}
	c := &Curve{lo: xs[0], hi: xs[len(xs)-1]}
	if err := c.fit.Fit(xs, ys); err != nil {
		return nil, err
	}
	return c, nil
}

// MustCurve is NewCurve for literal tables; it panics on malformed data.
func MustCurve(xs, ys []float64) *Curve {
	c, err := NewCurve(xs, ys)
	if err != nil {
		panic(err)
	}
	return c
}

// At returns the curve value at x.
func (c *Curve) At(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	return c.fit.Predict(Clip(x, c.lo, c.hi))
}

// Domain returns the sampled range of the curve.
func (c *Curve) Domain() (lo, hi float64) { return c.lo, c.hi }

// Grid is a digitized two-parameter chart: one curve per row parameter.
type Grid struct {
	rows   []float64
	curves []*Curve
}

// NewGrid builds a grid where values[i][j] is the chart value at (rows[i], cols[j]).
func NewGrid(rows, cols []float64, values [][]float64) (*Grid, error) {
	if len(rows) < 2 || len(rows) != len(values) {
		return nil, fmt.Errorf("grid needs at least 2 rows, got %d rows and %d value rows", len(rows), len(values))
	}
	g := &Grid{rows: rows, curves: make([]*Curve, len(rows))}
	for i, v := range values {
		c, err := NewCurve(cols, v)
		if err != nil {
			return nil, fmt.Errorf("row %g: %w", rows[i], err)
		}
		g.curves[i] = c
	}
	return g, nil
}

// MustGrid is NewGrid for literal tables; it panics on malformed data.
func MustGrid(rows, cols []float64, values [][]float64) *Grid {
	g, err := NewGrid(rows, cols, values)
	if err != nil {
		panic(err)
	}
	return g
}

// At returns the chart value at (row, col). Both parameters are clamped.
func (g *Grid) At(row, col float64) float64 {
	if math.IsNaN(row) || math.IsNaN(col) {
		return math.NaN()
	}
	ys := make([]float64, len(g.rows))
	for i, c := range g.curves {
		ys[i] = c.At(col)
	}
	var across interp.PiecewiseLinear
	if err := across.Fit(g.rows, ys); err != nil {
		return math.NaN()
	}
	return across.Predict(Clip(row, g.rows[0], g.rows[len(g.rows)-1]))
}
