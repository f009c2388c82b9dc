// Package mass estimates component masses: Raymer's tail regressions and the
// hydrogen and battery masses of a hybrid powertrain.
package mass

import (
	"math"

	"github.com/alexiusacademia/gofastga/internal/atmosphere"
	"github.com/alexiusacademia/gofastga/internal/component"
	"github.com/alexiusacademia/gofastga/internal/hybrid"
	"github.com/alexiusacademia/gofastga/internal/units"
)

const (
	TailID     = "fastga.weight.mass.tail"
	HydrogenID = "fastga.weight.mass.hydrogen"
	BatteryID  = "fastga.weight.mass.battery"
)

func init() {
	component.Register(TailID, func(component.Options) (component.Component, error) {
		return Tail{}, nil
	})
	component.Register(HydrogenID, func(component.Options) (component.Component, error) {
		return Hydrogen{}, nil
	})
	component.Register(BatteryID, func(component.Options) (component.Component, error) {
		return Battery{}, nil
	})
}

// CruiseDynamicPressure returns the dynamic pressure (lb/ft²) at a cruise
// speed in knots and an altitude in feet.
func CruiseDynamicPressure(vCruise, altitude float64) float64 {
	rho := atmosphere.Standard(altitude * units.Foot).Density
	v := vCruise * 0.5144
	return 0.5 * rho * v * v * 0.0208854
}

// Surface is a lifting surface as the tail regressions see it.
type Surface struct {
	Area           float64 // ft²
	ThicknessRatio float64
	Sweep25        float64 // deg
	AspectRatio    float64
	TaperRatio     float64
}

func (s Surface) cosSweep() float64 { return math.Cos(s.Sweep25 * math.Pi / 180) }

// HorizontalTailMass returns the Raymer horizontal tail mass (lb) for an
// ultimate load factor nz, a design mass (lb) and a dynamic pressure q (lb/ft²).
func HorizontalTailMass(nz, mtow, q float64, s Surface) float64 {
	c := s.cosSweep()
	return 0.016 * (math.Pow(nz*mtow, 0.414) *
		math.Pow(q, 0.168) *
		math.Pow(s.Area, 0.896) *
		math.Pow(100*s.ThicknessRatio/c, -0.12) *
		math.Pow(s.AspectRatio/(c*c), 0.043) *
		math.Pow(s.TaperRatio, -0.02))
}

// VerticalTailMass returns the Raymer vertical tail mass (lb). tTail is 1 for
// a T-tail and 0 otherwise.
func VerticalTailMass(nz, mtow, q, tTail float64, s Surface) float64 {
	c := s.cosSweep()
	return 0.073 * (1 + 0.2*tTail) * (math.Pow(nz*mtow, 0.376) *
		math.Pow(q, 0.122) *
		math.Pow(s.Area, 0.873) *
		math.Pow(100*s.ThicknessRatio/c, -0.49) *
		math.Pow(s.AspectRatio/(c*c), 0.357) *
		math.Pow(s.TaperRatio, 0.039))
}

// Tail computes the horizontal and vertical tail masses, each scaled by its
// calibration k-factor.
type Tail struct{}

func (Tail) ID() string { return TailID }

func (Tail) Setup(d *component.Declarations) {
	nan := math.NaN()
	d.AddInput("data:mission:sizing:cs23:sizing_factor_ultimate", nan, "")
	d.AddInput("data:weight:aircraft:MTOW", nan, "lb")
	d.AddInput("data:weight:airframe:horizontal_tail:k_factor", 1.0, "")
	d.AddInput("data:weight:airframe:vertical_tail:k_factor", 1.0, "")
	d.AddInput("data:TLAR:v_cruise", nan, "kn")
	d.AddInput("data:mission:sizing:main_route:cruise:altitude", nan, "ft")
	d.AddInput("data:geometry:has_T_tail", nan, "")
	for _, tail := range []string{"horizontal_tail", "vertical_tail"} {
		d.AddInput("data:geometry:"+tail+":area", nan, "ft**2")
		d.AddInput("data:geometry:"+tail+":thickness_ratio", nan, "")
		d.AddInput("data:geometry:"+tail+":sweep_25", nan, "deg")
		d.AddInput("data:geometry:"+tail+":aspect_ratio", nan, "")
		d.AddInput("data:geometry:"+tail+":taper_ratio", nan, "")
	}

	d.AddOutput("data:weight:airframe:horizontal_tail:mass", "lb", 1)
	d.AddOutput("data:weight:airframe:vertical_tail:mass", "lb", 1)
}

func surface(in *component.Inputs, tail string) Surface {
	return Surface{
		Area:           in.Get("data:geometry:" + tail + ":area"),
		ThicknessRatio: in.Get("data:geometry:" + tail + ":thickness_ratio"),
		Sweep25:        in.Get("data:geometry:" + tail + ":sweep_25"),
		AspectRatio:    in.Get("data:geometry:" + tail + ":aspect_ratio"),
		TaperRatio:     in.Get("data:geometry:" + tail + ":taper_ratio"),
	}
}

func (Tail) Compute(in *component.Inputs, out *component.Outputs) error {
	nz := in.Get("data:mission:sizing:cs23:sizing_factor_ultimate")
	mtow := in.Get("data:weight:aircraft:MTOW")
	q := CruiseDynamicPressure(
		in.Get("data:TLAR:v_cruise"),
		in.Get("data:mission:sizing:main_route:cruise:altitude"),
	)

	ht := HorizontalTailMass(nz, mtow, q, surface(in, "horizontal_tail"))
	vt := VerticalTailMass(nz, mtow, q, in.Get("data:geometry:has_T_tail"), surface(in, "vertical_tail"))

	out.Set("data:weight:airframe:horizontal_tail:mass", ht*in.Get("data:weight:airframe:horizontal_tail:k_factor"))
	out.Set("data:weight:airframe:vertical_tail:mass", vt*in.Get("data:weight:airframe:vertical_tail:k_factor"))
	return nil
}

// Hydrogen computes the hydrogen mass as endurance times the fuel cell
// hydrogen flow. The endurance stays in minutes against a flow in kg/s.
type Hydrogen struct{}

func (Hydrogen) ID() string { return HydrogenID }

func (Hydrogen) Setup(d *component.Declarations) {
	nan := math.NaN()
	d.AddInput("data:mission:sizing:endurance", nan, "min")
	d.AddInput("data:propulsion:hybrid_powertrain:fuel_cell:design_power", nan, "W")
	d.AddInput("data:propulsion:hybrid_powertrain:fuel_cell:cell_voltage", nan, "V")

	d.AddOutput("data:weight:hybrid_powertrain:hydrogen:mass", "kg", 1)
}

func (Hydrogen) Compute(in *component.Inputs, out *component.Outputs) error {
	flow := hybrid.HydrogenFlow(
		in.Get("data:propulsion:hybrid_powertrain:fuel_cell:design_power"),
		in.Get("data:propulsion:hybrid_powertrain:fuel_cell:cell_voltage"),
	)
	out.Set("data:weight:hybrid_powertrain:hydrogen:mass", in.Get("data:mission:sizing:endurance")*flow)
	return nil
}

// Battery computes the mass of one battery pack from its cell counts.
type Battery struct{}

func (Battery) ID() string { return BatteryID }

func (Battery) Setup(d *component.Declarations) {
	nan := math.NaN()
	d.AddInput("data:geometry:hybrid_powertrain:battery:N_series", nan, "")
	d.AddInput("data:geometry:hybrid_powertrain:battery:N_parallel", nan, "")
	d.AddInput("data:geometry:hybrid_powertrain:battery:cell_mass", nan, "kg")

	d.AddOutput("data:weight:hybrid_powertrain:battery:mass", "kg", 1)
}

func (Battery) Compute(in *component.Inputs, out *component.Outputs) error {
	out.Set("data:weight:hybrid_powertrain:battery:mass", hybrid.PackMass(
		in.Get("data:geometry:hybrid_powertrain:battery:N_series"),
		in.Get("data:geometry:hybrid_powertrain:battery:N_parallel"),
		in.Get("data:geometry:hybrid_powertrain:battery:cell_mass"),
	))
	return nil
}
