package highlift

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gofastga/internal/charts"
	"github.com/alexiusacademia/gofastga/internal/component"
	"gonum.org/v1/gonum/floats/scalar"
)

func aircraft(flapType float64) component.Dataset {
	s := component.Scalar
	return component.Dataset{
		"data:geometry:wing:span":                            s(11.6, "m"),
		"data:geometry:wing:area":                            s(16.638, "m**2"),
		"data:geometry:horizontal_tail:area":                 s(3.44, "m**2"),
		"data:geometry:horizontal_tail:sweep_25":             s(4, "deg"),
		"data:geometry:wing:taper_ratio":                     s(1, ""),
		"data:geometry:fuselage:maximum_width":               s(1.2, "m"),
		"data:geometry:wing:root:y":                          s(0.6, "m"),
		"data:geometry:wing:root:chord":                      s(1.549, "m"),
		"data:geometry:wing:thickness_ratio":                 s(0.15, ""),
		"data:geometry:wing:aspect_ratio":                    s(7.98, ""),
		"data:geometry:wing:sweep_25":                        s(0, "deg"),
		"data:geometry:flap:chord_ratio":                     s(0.25, ""),
		"data:geometry:flap:span_ratio":                      s(0.8, ""),
		"data:geometry:flap_type":                            s(flapType, ""),
		"data:geometry:horizontal_tail:elevator_chord_ratio": s(0.3, ""),
		"data:geometry:horizontal_tail:thickness_ratio":      s(0.10, ""),
		"data:aerodynamics:wing:low_speed:CL_alpha":          s(4.65, "rad**-1"),
		"data:aerodynamics:low_speed:mach":                   s(0.12, ""),
		"data:aerodynamics:horizontal_tail:airfoil:CL_alpha": s(6.3, "rad**-1"),
		"data:aerodynamics:wing:airfoil:CL_alpha":            s(6.3, "rad**-1"),
		"data:mission:sizing:landing:elevator_angle":         s(-25, "deg"),
	}
}

func TestDeltaCLAirfoil2D(t *testing.T) {
	clAlpha := 0.9 * charts.ClAlphaTheory(0.12)

	t.Run("plain flap", func(t *testing.T) {
		got := DeltaCLAirfoil2D(Plain, 0.25, 0.12, clAlpha, 30, 0)
		expected := 0.915 * 4.056 * 0.57 * 30 * math.Pi / 180
		if !scalar.EqualWithinRel(got, expected, 1e-9) {
			t.Errorf("(actual, expected) = (%v, %v)", got, expected)
		}
	})

	t.Run("slotted flap", func(t *testing.T) {
		got := DeltaCLAirfoil2D(Slotted, 0.25, 0.12, clAlpha, 30, 0)
		expected := 2 * math.Pi * 0.47 * 30 * math.Pi / 180
		if !scalar.EqualWithinRel(got, expected, 1e-12) {
			t.Errorf("(actual, expected) = (%v, %v)", got, expected)
		}
	})

	t.Run("split flap uses the plain chain", func(t *testing.T) {
		plain := DeltaCLAirfoil2D(Plain, 0.25, 0.12, clAlpha, 30, 0)
		split := DeltaCLAirfoil2D(Split, 0.25, 0.12, clAlpha, 30, 0)
		if plain != split {
			t.Errorf("(plain, split) = (%v, %v)", plain, split)
		}
	})

	t.Run("compressibility raises the slotted increment", func(t *testing.T) {
		low := DeltaCLAirfoil2D(Slotted, 0.25, 0.12, clAlpha, 30, 0)
		high := DeltaCLAirfoil2D(Slotted, 0.25, 0.12, clAlpha, 30, 0.3)
		if !scalar.EqualWithinRel(high, low/math.Sqrt(1-0.09), 1e-12) {
			t.Errorf("(actual, expected) = (%v, %v)", high, low/math.Sqrt(1-0.09))
		}
	})
}

func TestFlapsDeltaCD(t *testing.T) {
	t.Run("thickness ratio is clamped", func(t *testing.T) {
		for _, ft := range []FlapType{Plain, Slotted, Split} {
			thick := FlapsDeltaCD(ft, 0.25, 0.35, 30, 0.3)
			limit := FlapsDeltaCD(ft, 0.25, 0.30, 30, 0.3)
			if thick != limit {
				t.Errorf("%v: (t/c 0.35, t/c 0.30) = (%v, %v)", ft, thick, limit)
			}
			thin := FlapsDeltaCD(ft, 0.25, 0.05, 30, 0.3)
			floor := FlapsDeltaCD(ft, 0.25, 0.12, 30, 0.3)
			if thin != floor {
				t.Errorf("%v: (t/c 0.05, t/c 0.12) = (%v, %v)", ft, thin, floor)
			}
		}
	})

	t.Run("plain flap at the fitted thickness", func(t *testing.T) {
		cr, a := 0.25, 20.0
		k1 := -21.09*cr*cr*cr + 14.091*cr*cr + 3.165*cr - 0.00103
		k2 := -3.795e-7*a*a*a + 5.387e-5*a*a + 6.843e-4*a - 1.4729e-3
		got := FlapsDeltaCD(Plain, cr, 0.12, a, 0.5)
		if !scalar.EqualWithinRel(got, k1*k2*0.5, 1e-12) {
			t.Errorf("(actual, expected) = (%v, %v)", got, k1*k2*0.5)
		}
		if DeltaCDPlainFlap(cr, a) != FlapsDeltaCD(Plain, cr, 0.12, a, 1) {
			t.Error("DeltaCDPlainFlap should be the unit-area plain flap increment")
		}
	})

	t.Run("NaN thickness propagates", func(t *testing.T) {
		if got := FlapsDeltaCD(Plain, 0.25, math.NaN(), 30, 0.3); !math.IsNaN(got) {
			t.Errorf("expected NaN, got %v", got)
		}
	})
}

func TestFlapTypeOf(t *testing.T) {
	cases := []struct {
		v        float64
		expected FlapType
	}{{0, Plain}, {1, Slotted}, {2, Split}, {5, Split}, {math.NaN(), Split}}
	for _, c := range cases {
		if got := FlapTypeOf(c.v); got != c.expected {
			t.Errorf("%v: (actual, expected) = (%v, %v)", c.v, got, c.expected)
		}
	}
}

func TestFlapAreaRatio(t *testing.T) {
	// A full-span flap on a rectangular wing covers the whole reference area.
	w := Wing{Span: 10, Area: 15, TaperRatio: 1, FuselageWidth: 0, RootY: 0, RootChord: 1.5, FlapSpanRatio: 1}
	if got := w.FlapAreaRatio(); !scalar.EqualWithinAbs(got, 1, 1e-12) {
		t.Errorf("(actual, expected) = (%v, %v)", got, 1.0)
	}
}

func TestDeltaHighLift(t *testing.T) {
	t.Run("slotted flaps", func(t *testing.T) {
		res, report, err := component.Run(DeltaHighLift{}, aircraft(1))
		if err != nil {
			t.Fatal(err)
		}
		if !report.Clean() {
			t.Errorf("unexpected report %+v", report)
		}
		get := func(name string) float64 { return res[name].Value[0] }

		landing := get("data:aerodynamics:flaps:landing:CL")
		takeoff := get("data:aerodynamics:flaps:takeoff:CL")
		if !(landing > takeoff && takeoff > 0) {
			t.Errorf("expected 0 < takeoff < landing, got (takeoff, landing) = (%v, %v)", takeoff, landing)
		}
		if cm := get("data:aerodynamics:flaps:landing:CM"); cm >= 0 {
			t.Errorf("flap moment should be nose down, got %v", cm)
		}
		if v := get("data:aerodynamics:elevator:low_speed:CL_delta"); v <= 0 {
			t.Errorf("elevator CL_delta should be positive, got %v", v)
		}
		if v := get("data:aerodynamics:elevator:low_speed:CD_delta"); v <= 0 {
			t.Errorf("elevator CD_delta should be positive, got %v", v)
		}
		if u := res["data:aerodynamics:elevator:low_speed:CD_delta"].Units; u != "rad**-2" {
			t.Errorf("units (actual, expected) = (%v, %v)", u, "rad**-2")
		}
	})

	t.Run("plain and slotted lift differ", func(t *testing.T) {
		plain, _, _ := component.Run(DeltaHighLift{}, aircraft(0))
		slotted, _, _ := component.Run(DeltaHighLift{}, aircraft(1))
		key := "data:aerodynamics:flaps:landing:CL"
		if plain[key].Value[0] == slotted[key].Value[0] {
			t.Errorf("plain and slotted gave the same increment %v", plain[key].Value[0])
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a, _, _ := component.Run(DeltaHighLift{}, aircraft(2))
		b, _, _ := component.Run(DeltaHighLift{}, aircraft(2))
		for name, q := range a {
			if math.Float64bits(q.Value[0]) != math.Float64bits(b[name].Value[0]) {
				t.Errorf("%s: (first, second) = (%v, %v)", name, q.Value[0], b[name].Value[0])
			}
		}
	})

	t.Run("unset inputs give NaN", func(t *testing.T) {
		res, _, err := component.Run(DeltaHighLift{}, component.Dataset{})
		if err != nil {
			t.Fatal(err)
		}
		for name, q := range res {
			if !math.IsNaN(q.Value[0]) {
				t.Errorf("%s: expected NaN, got %v", name, q.Value[0])
			}
		}
	})

	t.Run("registered", func(t *testing.T) {
		c, err := component.New(ID, nil)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := c.(DeltaHighLift); !ok {
			t.Errorf("unexpected component type %T", c)
		}
	})
}
