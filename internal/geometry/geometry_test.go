package geometry

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gofastga/internal/component"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestWingChords(t *testing.T) {
	t.Run("rectangular wing", func(t *testing.T) {
		res, _, err := component.Run(WingChords{}, component.Dataset{
			"data:geometry:wing:area":        component.Scalar(16, ""),
			"data:geometry:wing:root:y":      component.Scalar(0.6, "m"),
			"data:geometry:wing:tip:y":       component.Scalar(5, "m"),
			"data:geometry:wing:taper_ratio": component.Scalar(1, ""),
		})
		if err != nil {
			t.Fatal(err)
		}
		root := res["data:geometry:wing:root:chord"].Value[0]
		if !scalar.EqualWithinAbs(root, 1.6, 1e-12) {
			t.Errorf("root chord (actual, expected) = (%v, %v)", root, 1.6)
		}
		if kink := res["data:geometry:wing:kink:chord"].Value[0]; kink != root {
			t.Errorf("kink chord (actual, expected) = (%v, %v)", kink, root)
		}
	})

	t.Run("tapered wing reproduces its area", func(t *testing.T) {
		area, y2, y4, taper := 12.0, 0.5, 5.0, 0.6
		l2 := RootChord(area, y2, y4, taper)
		rebuilt := 2 * (y2*l2 + (y4-y2)*l2*(1+taper)/2)
		if !scalar.EqualWithinRel(rebuilt, area, 1e-12) {
			t.Errorf("(actual, expected) = (%v, %v)", rebuilt, area)
		}
	})
}

func TestTailDistance(t *testing.T) {
	cases := []struct {
		name     string
		tTail    float64
		expected float64
	}{
		{"conventional tail", 0, 0},
		{"T-tail", 1, 1.7},
		{"unset tail type", math.NaN(), 1.7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, _, err := component.Run(TailDistance{}, component.Dataset{
				"data:geometry:vertical_tail:span": component.Scalar(1.7, "m"),
				"data:geometry:has_T_tail":         component.Scalar(c.tTail, ""),
			})
			if err != nil {
				t.Fatal(err)
			}
			if got := res["data:geometry:horizontal_tail:z:from_wingMAC25"].Value[0]; got != c.expected {
				t.Errorf("(actual, expected) = (%v, %v)", got, c.expected)
			}
		})
	}
}
