package component

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

type area struct{}

func (area) Setup(d *Declarations) {
	d.AddInput("data:geometry:wing:span", math.NaN(), "m")
	d.AddInput("data:geometry:wing:MAC:length", 1.5, "m")
	d.AddOutput("data:geometry:wing:area", "m**2", 1)
}

func (area) Compute(in *Inputs, out *Outputs) error {
	out.Set("data:geometry:wing:area", in.Get("data:geometry:wing:span")*in.Get("data:geometry:wing:MAC:length"))
	return nil
}

type loading struct{}

func (loading) Setup(d *Declarations) {
	d.AddInput("data:geometry:wing:area", math.NaN(), "m**2")
	d.AddInput("data:weight:aircraft:MTOW", math.NaN(), "kg")
	d.AddOutput("data:weight:aircraft:wing_loading", "kg/m**2", 1)
}

func (loading) Compute(in *Inputs, out *Outputs) error {
	out.Set("data:weight:aircraft:wing_loading", in.Get("data:weight:aircraft:MTOW")/in.Get("data:geometry:wing:area"))
	return nil
}

// sloppy writes to a key it did not declare and reads one it did not declare.
type sloppy struct{}

func (sloppy) Setup(d *Declarations) {
	d.AddInput("data:a", 1, "")
	d.AddOutput("data:declared", "m", 1)
	d.AddOutput("data:forgotten", "m", 1)
}

func (sloppy) Compute(in *Inputs, out *Outputs) error {
	out.Set("data:declared", in.Get("data:a")+in.Get("data:undeclared"))
	out.Set("data:other", 2)
	return nil
}

func TestDeclarationDescriptions(t *testing.T) {
	d := NewDeclarations()
	d.AddInput("data:geometry:hybrid_powertrain:h2_storage:fos", math.NaN(), "").Desc = "Factor of safety"
	// Enough further declarations to grow the backing slices several times.
	for i := 0; i < 64; i++ {
		d.AddInput("data:filler:"+string(rune('a'+i%26))+string(rune('a'+i/26)), 0, "")
	}
	d.AddOutput("data:geometry:hybrid_powertrain:h2_storage:wall_thickness", "m", 1).Desc = "Tank wall"
	for i := 0; i < 64; i++ {
		d.AddOutput("data:out:"+string(rune('a'+i%26))+string(rune('a'+i/26)), "", 1)
	}

	if got := d.Inputs()[0].Desc; got != "Factor of safety" {
		t.Errorf("input desc: (actual, expected) = (%q, %q)", got, "Factor of safety")
	}
	if got := d.Outputs()[0].Desc; got != "Tank wall" {
		t.Errorf("output desc: (actual, expected) = (%q, %q)", got, "Tank wall")
	}
	if n := len(d.Inputs()); n != 65 {
		t.Errorf("inputs: (actual, expected) = (%d, %d)", n, 65)
	}
}

func TestRun(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		res, report, err := Run(area{}, Dataset{"data:geometry:wing:span": Scalar(10, "m")})
		if err != nil {
			t.Fatal(err)
		}
		got := res["data:geometry:wing:area"]
		if got.Value[0] != 15 || got.Units != "m**2" {
			t.Errorf("(actual, expected) = (%v %s, 15 m**2)", got.Value[0], got.Units)
		}
		if !report.Clean() {
			t.Errorf("unexpected report %+v", report)
		}
	})

	t.Run("converts supplied units", func(t *testing.T) {
		res, _, err := Run(area{}, Dataset{
			"data:geometry:wing:span":       Scalar(1/0.3048, "ft"),
			"data:geometry:wing:MAC:length": Scalar(2000, "mm"),
		})
		if err != nil {
			t.Fatal(err)
		}
		if v := res["data:geometry:wing:area"].Value[0]; !scalar.EqualWithinAbs(v, 2, 1e-12) {
			t.Errorf("(actual, expected) = (%v, %v)", v, 2.0)
		}
	})

	t.Run("unset inputs propagate NaN", func(t *testing.T) {
		res, _, err := Run(area{}, Dataset{})
		if err != nil {
			t.Fatal(err)
		}
		if v := res["data:geometry:wing:area"].Value[0]; !math.IsNaN(v) {
			t.Errorf("expected NaN, got %v", v)
		}
	})

	t.Run("rejects incompatible units", func(t *testing.T) {
		_, _, err := Run(area{}, Dataset{"data:geometry:wing:span": Scalar(10, "kg")})
		if err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("reports contract defects", func(t *testing.T) {
		res, report, err := Run(sloppy{}, Dataset{"data:undeclared": Scalar(3, "")})
		if err != nil {
			t.Fatal(err)
		}
		if v := res["data:declared"].Value[0]; v != 4 {
			t.Errorf("undeclared read should still see the dataset: (actual, expected) = (%v, %v)", v, 4.0)
		}
		if len(report.UnwrittenOutputs) != 1 || report.UnwrittenOutputs[0] != "data:forgotten" {
			t.Errorf("unwritten outputs = %v", report.UnwrittenOutputs)
		}
		if len(report.UndeclaredWrites) != 1 || report.UndeclaredWrites[0] != "data:other" {
			t.Errorf("undeclared writes = %v", report.UndeclaredWrites)
		}
		if len(report.UndeclaredReads) != 1 || report.UndeclaredReads[0] != "data:undeclared" {
			t.Errorf("undeclared reads = %v", report.UndeclaredReads)
		}
		if _, ok := res["data:other"]; !ok {
			t.Error("undeclared writes should still be returned")
		}
	})
}

func TestGroup(t *testing.T) {
	g := NewGroup("test.group", Slot{"area", area{}}, Slot{"loading", loading{}})

	t.Run("declares only external inputs", func(t *testing.T) {
		d := Declare(g)
		if d.IsInput("data:geometry:wing:area") {
			t.Error("an input produced by an earlier child should not be a group input")
		}
		if !d.IsInput("data:weight:aircraft:MTOW") || !d.IsOutput("data:geometry:wing:area") {
			t.Errorf("inputs %v, outputs %v", d.Inputs(), d.Outputs())
		}
	})

	t.Run("feeds outputs forward", func(t *testing.T) {
		res, report, err := Run(g, Dataset{
			"data:geometry:wing:span":   Scalar(10, "m"),
			"data:weight:aircraft:MTOW": Scalar(1500, "kg"),
		})
		if err != nil {
			t.Fatal(err)
		}
		if v := res["data:weight:aircraft:wing_loading"].Value[0]; v != 100 {
			t.Errorf("(actual, expected) = (%v, %v)", v, 100.0)
		}
		if !report.Clean() {
			t.Errorf("unexpected report %+v", report)
		}
	})
}

func TestRegistry(t *testing.T) {
	Register("test.area", func(Options) (Component, error) { return area{}, nil })

	if _, err := New("test.area", nil); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := New("test.missing", nil); err == nil {
		t.Error("expected an error for an unknown id")
	}
	found := false
	for _, id := range IDs() {
		found = found || id == "test.area"
	}
	if !found {
		t.Errorf("test.area missing from %v", IDs())
	}
}

func TestOptions(t *testing.T) {
	opts := Options{"low_speed_aero": true, "x_cg_ratio": 0.3, "count": 2, "flag": "yes", "bad": []int{1}}

	t.Run("typed reads", func(t *testing.T) {
		if b, _ := opts.Bool("low_speed_aero", false); !b {
			t.Error("low_speed_aero should be true")
		}
		if b, _ := opts.Bool("flag", false); !b {
			t.Error("flag should parse as true")
		}
		if f, _ := opts.Float("count", 0); f != 2 {
			t.Errorf("(actual, expected) = (%v, %v)", f, 2.0)
		}
		if f, _ := opts.Float("absent", 0.25); f != 0.25 {
			t.Errorf("(actual, expected) = (%v, %v)", f, 0.25)
		}
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := opts.Float("bad", 0)
		var optErr *OptionError
		if !errors.As(err, &optErr) || optErr.Key != "bad" {
			t.Errorf("expected an OptionError, got %v", err)
		}
	})
}
