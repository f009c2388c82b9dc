// Package equilibrium finds the wing / tail lift split that trims the aircraft
// in pitch.
package equilibrium

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gofastga/internal/atmosphere"
	"github.com/alexiusacademia/gofastga/internal/component"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// Regime selects the aerodynamic data set: low speed (takeoff, approach) or cruise.
type Regime int

const (
	Cruise Regime = iota
	LowSpeed
)

func (r Regime) String() string {
	if r == LowSpeed {
		return "low_speed"
	}
	return "cruise"
}

// RegimeOf maps the low_speed_aero option onto a regime.
func RegimeOf(lowSpeed bool) Regime {
	if lowSpeed {
		return LowSpeed
	}
	return Cruise
}

// Repartition is the trimmed lift split, coefficients referred to the wing area.
type Repartition struct {
	CLWing        float64
	CLTail        float64 // tail lift without elevator
	CLElevator    float64 // elevator contribution
	Alpha         float64 // deg
	ElevatorAngle float64 // deg
	Stalled       bool    // wing lift above its clean maximum
}

// CL returns the total lift coefficient.
func (r Repartition) CL() float64 { return r.CLWing + r.CLTail + r.CLElevator }

// Solver computes the lift repartition at a flight condition. xcg is the
// centre of gravity position (m); a negative value asks the solver to derive
// it from the fixed-mass moment and the fuel at the tank CG.
type Solver interface {
	FindLiftRepartition(in *component.Inputs, loadFactor, mass, q float64, regime Regime, xcg float64) (Repartition, error)
}

// DeclareInputs declares the inputs the trim solution reads for the regime.
func DeclareInputs(d *component.Declarations, regime Regime) {
	nan := math.NaN()
	r := regime.String()
	d.AddInput("data:geometry:wing:MAC:length", nan, "m")
	d.AddInput("data:geometry:wing:MAC:at25percent:x", nan, "m")
	d.AddInput("data:geometry:wing:area", nan, "m**2")
	d.AddInput("data:geometry:horizontal_tail:MAC:at25percent:x:from_wingMAC25", nan, "m")
	d.AddInput("data:aerodynamics:wing:low_speed:CL_max_clean", nan, "")
	d.AddInput("data:aerodynamics:wing:"+r+":CL0_clean", nan, "")
	d.AddInput("data:aerodynamics:wing:"+r+":CL_alpha", nan, "rad**-1")
	d.AddInput("data:aerodynamics:wing:"+r+":CM0_clean", nan, "")
	d.AddInput("data:aerodynamics:horizontal_tail:"+r+":CL_alpha", nan, "rad**-1")
	d.AddInput("data:aerodynamics:elevator:low_speed:CL_delta", nan, "rad**-1")
	d.AddInput("data:weight:aircraft:in_flight_variation:fixed_mass_comp:equivalent_moment", nan, "kg*m")
	d.AddInput("data:weight:aircraft:in_flight_variation:fixed_mass_comp:mass", nan, "kg")
	d.AddInput("data:weight:propulsion:tank:CG:x", nan, "m")
}

// Aircraft trims a wing plus horizontal tail with a linear lift model. It
// solves the lift and pitching moment balance about the CG for the angle of
// attack and elevator deflection.
type Aircraft struct{}

// FindLiftRepartition implements Solver.
func (Aircraft) FindLiftRepartition(in *component.Inputs, loadFactor, mass, q float64, regime Regime, xcg float64) (Repartition, error) {
	r := regime.String()
	l0 := in.Get("data:geometry:wing:MAC:length")
	xw := in.Get("data:geometry:wing:MAC:at25percent:x")
	xh := xw + in.Get("data:geometry:horizontal_tail:MAC:at25percent:x:from_wingMAC25")
	area := in.Get("data:geometry:wing:area")
	cl0 := in.Get("data:aerodynamics:wing:" + r + ":CL0_clean")
	clAlphaWing := in.Get("data:aerodynamics:wing:" + r + ":CL_alpha")
	cm0 := in.Get("data:aerodynamics:wing:" + r + ":CM0_clean")
	clAlphaTail := in.Get("data:aerodynamics:horizontal_tail:" + r + ":CL_alpha")
	clDelta := in.Get("data:aerodynamics:elevator:low_speed:CL_delta")
	clMax := in.Get("data:aerodynamics:wing:low_speed:CL_max_clean")

	if xcg < 0 {
		moment := in.Get("data:weight:aircraft:in_flight_variation:fixed_mass_comp:equivalent_moment")
		fixedMass := in.Get("data:weight:aircraft:in_flight_variation:fixed_mass_comp:mass")
		xTank := in.Get("data:weight:propulsion:tank:CG:x")
		xcg = (moment + (mass-fixedMass)*xTank) / mass
	}

	clRequired := loadFactor * mass * atmosphere.G / (q * area)

	a := []float64{
		clAlphaWing + clAlphaTail, clDelta,
		clAlphaWing*(xcg-xw) + clAlphaTail*(xcg-xh), clDelta * (xcg - xh),
	}
	b := []float64{
		clRequired - cl0,
		-cl0*(xcg-xw) - cm0*l0,
	}
	for _, v := range append(a, b...) {
		if math.IsNaN(v) {
			nan := math.NaN()
			return Repartition{CLWing: nan, CLTail: nan, CLElevator: nan, Alpha: nan, ElevatorAngle: nan}, nil
		}
	}

	var x mat.VecDense
	if err := x.SolveVec(mat.NewDense(2, 2, a), mat.NewVecDense(2, b)); err != nil {
		return Repartition{}, fmt.Errorf("trim at mass %.1f kg, xcg %.3f m: %w", mass, xcg, err)
	}
	alpha, delta := x.AtVec(0), x.AtVec(1)

	rep := Repartition{
		CLWing:        cl0 + clAlphaWing*alpha,
		CLTail:        clAlphaTail * alpha,
		CLElevator:    clDelta * delta,
		Alpha:         alpha * 180 / math.Pi,
		ElevatorAngle: delta * 180 / math.Pi,
	}
	if rep.CLWing > clMax {
		rep.Stalled = true
		log.WithFields(log.Fields{
			"mass":    mass,
			"cl_wing": rep.CLWing,
			"cl_max":  clMax,
		}).Debug("trimmed wing lift above clean maximum")
	}
	return rep, nil
}
