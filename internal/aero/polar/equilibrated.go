package polar

import (
	"math"

	"github.com/alexiusacademia/gofastga/internal/aero/equilibrium"
	"github.com/alexiusacademia/gofastga/internal/atmosphere"
	"github.com/alexiusacademia/gofastga/internal/component"
	"gonum.org/v1/gonum/floats"
)

// Equilibrated computes the trimmed polar over masses from 0.5 to 1.5 MTOW at
// a load factor of one. At low speed the aircraft flies at the approach speed
// at sea level; in cruise at the cruise speed and altitude.
type Equilibrated struct {
	Regime Regime
	// XCGRatio places the CG at this fraction of the MAC. Zero lets the
	// solver derive the CG from the loading of each point.
	XCGRatio float64
	Solver   equilibrium.Solver
}

// NewEquilibrated returns the trimmed polar solved with equilibrium.Aircraft.
func NewEquilibrated(r Regime, xcgRatio float64) *Equilibrated {
	return &Equilibrated{Regime: r, XCGRatio: xcgRatio, Solver: equilibrium.Aircraft{}}
}

func (p *Equilibrated) ID() string { return EquilibratedID + "." + p.Regime.String() }

func (p *Equilibrated) Setup(d *component.Declarations) {
	r := p.Regime.String()
	nan := math.NaN()
	d.AddInput("data:geometry:wing:MAC:leading_edge:x:local", nan, "m")
	d.AddInput("data:geometry:wing:root:virtual_chord", nan, "m")
	d.AddInput("data:geometry:fuselage:maximum_width", nan, "m")
	d.AddInput("data:geometry:fuselage:length", nan, "m")
	d.AddInput("data:weight:aircraft:CG:aft:x", nan, "m")
	d.AddInput("data:weight:aircraft:MTOW", nan, "kg")
	equilibrium.DeclareInputs(d, p.Regime)

	d.AddInput("data:aerodynamics:"+r+":mach", nan, "")
	d.AddInput("data:aerodynamics:wing:"+r+":induced_drag_coefficient", nan, "")
	d.AddInput("data:aerodynamics:aircraft:"+r+":CD0", nan, "")
	d.AddInput("data:aerodynamics:horizontal_tail:"+r+":induced_drag_coefficient", nan, "")
	if p.Regime == LowSpeed {
		d.AddInput("data:TLAR:v_approach", nan, "m/s")
	} else {
		d.AddInput("data:mission:sizing:main_route:cruise:altitude", nan, "m")
		d.AddInput("data:TLAR:v_cruise", nan, "m/s")
	}

	d.AddOutput("data:aerodynamics:polar:equilibrated:"+r+":cd_vector", "", MassPoints)
	d.AddOutput("data:aerodynamics:polar:equilibrated:"+r+":cl_vector", "", MassPoints)
}

func (p *Equilibrated) Compute(in *component.Inputs, out *component.Outputs) error {
	r := p.Regime.String()
	mtow := in.Get("data:weight:aircraft:MTOW")
	kWing := in.Get("data:aerodynamics:wing:" + r + ":induced_drag_coefficient")
	kTail := in.Get("data:aerodynamics:horizontal_tail:" + r + ":induced_drag_coefficient")
	cd0 := in.Get("data:aerodynamics:aircraft:" + r + ":CD0")

	var altitude, tas float64
	if p.Regime == LowSpeed {
		tas = in.Get("data:TLAR:v_approach")
	} else {
		altitude = in.Get("data:mission:sizing:main_route:cruise:altitude")
		tas = in.Get("data:TLAR:v_cruise")
	}
	q := atmosphere.Standard(altitude).DynamicPressure(tas)

	xcg := -1.0
	if p.XCGRatio != 0 {
		mac := in.Get("data:geometry:wing:MAC:length")
		xcg = in.Get("data:geometry:wing:MAC:at25percent:x") - 0.25*mac + p.XCGRatio*mac
	}

	masses := floats.Span(make([]float64, MassPoints), 0.5*mtow, 1.5*mtow)
	cl := make([]float64, MassPoints)
	cd := make([]float64, MassPoints)
	for i, m := range masses {
		rep, err := p.Solver.FindLiftRepartition(in, 1, m, q, p.Regime, xcg)
		if err != nil {
			return err
		}
		tail := rep.CLTail + rep.CLElevator
		cl[i] = rep.CL()
		cd[i] = cd0 + kWing*rep.CLWing*rep.CLWing + kTail*tail*tail
	}

	out.SetVector("data:aerodynamics:polar:equilibrated:"+r+":cd_vector", cd)
	out.SetVector("data:aerodynamics:polar:equilibrated:"+r+":cl_vector", cl)
	return nil
}
