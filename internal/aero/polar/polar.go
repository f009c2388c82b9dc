// Package polar builds drag polars: a clean, untrimmed one over an angle of
// attack sweep and a trimmed one over a mass sweep.
package polar

import (
	"math"

	"github.com/alexiusacademia/gofastga/internal/aero/equilibrium"
	"github.com/alexiusacademia/gofastga/internal/component"
	"gonum.org/v1/gonum/floats"
)

const (
	// AlphaPoints is the size of the non-equilibrated polar vectors.
	AlphaPoints = 16
	// MassPoints is the size of the equilibrated polar vectors.
	MassPoints  = 10

	maxAlpha = 15.0 // deg
)

const (
	NonEquilibratedID = "fastga.aerodynamics.polar.non_equilibrated"
	EquilibratedID    = "fastga.aerodynamics.polar.equilibrated"
	GroupID           = "fastga.aerodynamics.polar"
)

// Regime selects low speed or cruise aerodynamics.
type Regime = equilibrium.Regime

const (
	Cruise   = equilibrium.Cruise
	LowSpeed = equilibrium.LowSpeed
)

func init() {
	component.Register(NonEquilibratedID, func(opts component.Options) (component.Component, error) {
		low, err := opts.Bool("low_speed_aero", false)
		if err != nil {
			return nil, err
		}
		return NewNonEquilibrated(equilibrium.RegimeOf(low)), nil
	})
	component.Register(EquilibratedID, func(opts component.Options) (component.Component, error) {
		low, err := opts.Bool("low_speed_aero", false)
		if err != nil {
			return nil, err
		}
		ratio, err := opts.Float("x_cg_ratio", 0)
		if err != nil {
			return nil, err
		}
		return NewEquilibrated(equilibrium.RegimeOf(low), ratio), nil
	})
	component.Register(GroupID, func(component.Options) (component.Component, error) {
		return NewGroup(), nil
	})
}

// NewGroup returns the cruise and low speed polars, untrimmed then trimmed.
func NewGroup() *component.Group {
	return component.NewGroup(GroupID,
		component.Slot{Name: "non_equilibrated_polar_cruise", Component: NewNonEquilibrated(Cruise)},
		component.Slot{Name: "equilibrated_polar_cruise", Component: NewEquilibrated(Cruise, 0)},
		component.Slot{Name: "non_equilibrated_polar_low_speed", Component: NewNonEquilibrated(LowSpeed)},
		component.Slot{Name: "equilibrated_polar_low_speed", Component: NewEquilibrated(LowSpeed, 0)},
	)
}

// NonEquilibrated computes the clean wing polar cl = CL0 + CLα·α,
// cd = CD0 + k·cl² for α from 0 to 15°.
type NonEquilibrated struct {
	Regime Regime
}

// NewNonEquilibrated returns the untrimmed polar for the regime.
func NewNonEquilibrated(r Regime) *NonEquilibrated {
	return &NonEquilibrated{Regime: r}
}

func (p *NonEquilibrated) ID() string { return NonEquilibratedID + "." + p.Regime.String() }

func (p *NonEquilibrated) Setup(d *component.Declarations) {
	r := p.Regime.String()
	nan := math.NaN()
	d.AddInput("data:aerodynamics:wing:"+r+":CL0_clean", nan, "")
	d.AddInput("data:aerodynamics:wing:"+r+":induced_drag_coefficient", nan, "")
	d.AddInput("data:aerodynamics:aircraft:"+r+":CD0", nan, "")
	d.AddInput("data:aerodynamics:wing:"+r+":CL_alpha", nan, "rad**-1")

	d.AddOutput("data:aerodynamics:polar:non_equilibrated:"+r+":cd_vector", "", AlphaPoints)
	d.AddOutput("data:aerodynamics:polar:non_equilibrated:"+r+":cl_vector", "", AlphaPoints)
}

func (p *NonEquilibrated) Compute(in *component.Inputs, out *component.Outputs) error {
	r := p.Regime.String()
	k := in.Get("data:aerodynamics:wing:" + r + ":induced_drag_coefficient")
	cd0 := in.Get("data:aerodynamics:aircraft:" + r + ":CD0")
	cl0 := in.Get("data:aerodynamics:wing:" + r + ":CL0_clean")
	clAlpha := in.Get("data:aerodynamics:wing:" + r + ":CL_alpha")

	alpha := floats.Span(make([]float64, AlphaPoints), 0, maxAlpha)
	cl := make([]float64, AlphaPoints)
	cd := make([]float64, AlphaPoints)
	for i, a := range alpha {
		cl[i] = cl0 + a*math.Pi/180*clAlpha
		cd[i] = cd0 + k*cl[i]*cl[i]
	}

	out.SetVector("data:aerodynamics:polar:non_equilibrated:"+r+":cd_vector", cd)
	out.SetVector("data:aerodynamics:polar:non_equilibrated:"+r+":cl_vector", cl)
	return nil
}
