package equilibrium

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gofastga/internal/atmosphere"
	"github.com/alexiusacademia/gofastga/internal/component"
	"gonum.org/v1/gonum/floats/scalar"
)

// solveRunner runs the solver inside a component so it reads converted inputs.
type solveRunner struct {
	mass, q, xcg float64
	got          *Repartition
}

func (p solveRunner) Setup(d *component.Declarations) { DeclareInputs(d, Cruise) }

func (p solveRunner) Compute(in *component.Inputs, out *component.Outputs) error {
	r, err := Aircraft{}.FindLiftRepartition(in, 1, p.mass, p.q, Cruise, p.xcg)
	*p.got = r
	return err
}

func aircraft() component.Dataset {
	s := component.Scalar
	return component.Dataset{
		"data:geometry:wing:MAC:length":                                              s(1.45, "m"),
		"data:geometry:wing:MAC:at25percent:x":                                       s(3.0, "m"),
		"data:geometry:wing:area":                                                    s(16.6, "m**2"),
		"data:geometry:horizontal_tail:MAC:at25percent:x:from_wingMAC25":             s(4.5, "m"),
		"data:aerodynamics:wing:low_speed:CL_max_clean":                              s(1.5, ""),
		"data:aerodynamics:wing:cruise:CL0_clean":                                    s(0.1, ""),
		"data:aerodynamics:wing:cruise:CL_alpha":                                     s(4.8, "rad**-1"),
		"data:aerodynamics:wing:cruise:CM0_clean":                                    s(-0.05, ""),
		"data:aerodynamics:horizontal_tail:cruise:CL_alpha":                          s(0.6, "rad**-1"),
		"data:aerodynamics:elevator:low_speed:CL_delta":                              s(0.5, "rad**-1"),
		"data:weight:aircraft:in_flight_variation:fixed_mass_comp:equivalent_moment": s(3480, "kg*m"),
		"data:weight:aircraft:in_flight_variation:fixed_mass_comp:mass":              s(1200, "kg"),
		"data:weight:propulsion:tank:CG:x":                                           s(2.9, "m"),
	}
}

func solve(t *testing.T, data component.Dataset, mass, q, xcg float64) Repartition {
	t.Helper()
	var r Repartition
	if _, _, err := component.Run(solveRunner{mass: mass, q: q, xcg: xcg, got: &r}, data); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestFindLiftRepartition(t *testing.T) {
	q := 0.5 * 1.225 * 60 * 60
	mass := 1500.0

	t.Run("balances lift and moment", func(t *testing.T) {
		xcg := 2.9
		r := solve(t, aircraft(), mass, q, xcg)

		clRequired := mass * atmosphere.G / (q * 16.6)
		if !scalar.EqualWithinAbs(r.CL(), clRequired, 1e-12) {
			t.Errorf("lift (actual, expected) = (%v, %v)", r.CL(), clRequired)
		}
		moment := r.CLWing*(xcg-3.0) + (r.CLTail+r.CLElevator)*(xcg-7.5) - 0.05*1.45
		if !scalar.EqualWithinAbs(moment, 0, 1e-12) {
			t.Errorf("moment residual = %v", moment)
		}
		if r.Stalled {
			t.Error("unexpected stall")
		}
	})

	t.Run("derives the CG from the fixed mass", func(t *testing.T) {
		explicit := solve(t, aircraft(), mass, q, 2.9)
		derived := solve(t, aircraft(), mass, q, -1)
		if !scalar.EqualWithinAbs(explicit.CLWing, derived.CLWing, 1e-12) ||
			!scalar.EqualWithinAbs(explicit.ElevatorAngle, derived.ElevatorAngle, 1e-9) {
			t.Errorf("(explicit, derived) = (%+v, %+v)", explicit, derived)
		}
	})

	t.Run("flags a stalled wing", func(t *testing.T) {
		r := solve(t, aircraft(), 6000, q, 2.9)
		if !r.Stalled {
			t.Errorf("expected a stall with CL_wing %v", r.CLWing)
		}
	})

	t.Run("unset inputs give NaN", func(t *testing.T) {
		r := solve(t, component.Dataset{}, mass, q, 2.9)
		if !math.IsNaN(r.CLWing) || !math.IsNaN(r.CLElevator) {
			t.Errorf("expected NaN repartition, got %+v", r)
		}
	})

	t.Run("singular system", func(t *testing.T) {
		data := aircraft()
		data["data:aerodynamics:elevator:low_speed:CL_delta"] = component.Scalar(0, "rad**-1")
		data["data:aerodynamics:horizontal_tail:cruise:CL_alpha"] = component.Scalar(0, "rad**-1")
		var r Repartition
		_, _, err := component.Run(solveRunner{mass: mass, q: q, xcg: 2.9, got: &r}, data)
		if err == nil {
			t.Error("expected an error for an untrimmable aircraft")
		}
	})
}

func TestRegime(t *testing.T) {
	if RegimeOf(true) != LowSpeed || RegimeOf(false) != Cruise {
		t.Error("unexpected regime mapping")
	}
	if LowSpeed.String() != "low_speed" || Cruise.String() != "cruise" {
		t.Errorf("(low speed, cruise) = (%v, %v)", LowSpeed, Cruise)
	}
}
