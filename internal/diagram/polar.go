// Package diagram draws drag polars, as terminal charts or as PNG, SVG and
// PDF images.
package diagram

import (
	"fmt"
	"math"
	"slices"

	"github.com/alexiusacademia/gofastga/internal/charts"
)

// Polar is one named drag polar. CL and CD are paired point by point.
type Polar struct {
	Name string
	CL   []float64
	CD   []float64
}

// Valid reports whether the polar has at least two finite points.
func (p Polar) Valid() error {
	if len(p.CL) != len(p.CD) {
		return fmt.Errorf("polar %q: %d CL values for %d CD values", p.Name, len(p.CL), len(p.CD))
	}
	n := 0
	for i := range p.CL {
		if finite(p.CL[i]) && finite(p.CD[i]) {
			n++
		}
	}
	if n < 2 {
		return fmt.Errorf("polar %q: needs at least 2 finite points, got %d", p.Name, n)
	}
	return nil
}

// Resample returns CD on n CL stations evenly spread over the polar's CL
// range, along with the stations. Points are sorted by CL first and repeated
// CL values keep the first CD.
func (p Polar) Resample(n int) (cl, cd []float64, err error) {
	if err := p.Valid(); err != nil {
		return nil, nil, err
	}
	if n < 2 {
		return nil, nil, fmt.Errorf("resampling needs at least 2 stations, got %d", n)
	}

	type point struct{ cl, cd float64 }
	pts := make([]point, 0, len(p.CL))
	for i := range p.CL {
		if finite(p.CL[i]) && finite(p.CD[i]) {
			pts = append(pts, point{p.CL[i], p.CD[i]})
		}
	}
	slices.SortStableFunc(pts, func(a, b point) int {
		switch {
		case a.cl < b.cl:
			return -1
		case a.cl > b.cl:
			return 1
		}
		return 0
	})
	pts = slices.CompactFunc(pts, func(a, b point) bool { return a.cl == b.cl })

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = pt.cl, pt.cd
	}
	curve, err := charts.NewCurve(xs, ys)
	if err != nil {
		return nil, nil, fmt.Errorf("polar %q: %w", p.Name, err)
	}

	lo, hi := curve.Domain()
	cl = make([]float64, n)
	cd = make([]float64, n)
	for i := range cl {
		cl[i] = lo + (hi-lo)*float64(i)/float64(n-1)
		cd[i] = curve.At(cl[i])
	}
	return cl, cd, nil
}

// MaxFinesse returns the best lift to drag ratio of the polar and the CL at
// which it is reached.
func (p Polar) MaxFinesse() (ratio, cl float64) {
	ratio, cl = math.NaN(), math.NaN()
	for i := range p.CL {
		if !finite(p.CL[i]) || !finite(p.CD[i]) || p.CD[i] <= 0 {
			continue
		}
		if f := p.CL[i] / p.CD[i]; math.IsNaN(ratio) || f > ratio {
			ratio, cl = f, p.CL[i]
		}
	}
	return ratio, cl
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
