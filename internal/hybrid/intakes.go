package hybrid

import (
	"math"

	"github.com/alexiusacademia/gofastga/internal/atmosphere"
	"github.com/alexiusacademia/gofastga/internal/component"
)

// NACAIntake is a submerged intake of reference dimensions and flow.
type NACAIntake struct {
	Length   float64 // mm
	Width    float64 // mm
	Depth    float64 // mm
	MassFlow float64 // kg/s
}

// ReferenceIntake is the NACA inlet the intakes are scaled from.
var ReferenceIntake = NACAIntake{Length: 330, Width: 85, Depth: 22, MassFlow: 0.2}

// Scale returns the intake swallowing flow (kg/s). Dimensions grow with the
// square root of the mass flow ratio.
func (n NACAIntake) Scale(flow float64) NACAIntake {
	k := math.Sqrt(flow / n.MassFlow)
	return NACAIntake{Length: n.Length * k, Width: n.Width * k, Depth: n.Depth * k, MassFlow: flow}
}

// CoolingFlow returns the air mass flow (kg/s) through one of n intakes
// feeding a heat exchanger of the given face area at airSpeed, from the
// sea level total state.
func CoolingFlow(area, airSpeed, n float64) float64 {
	const r = 287.0
	cp := atmosphere.Gamma * r / (atmosphere.Gamma - 1)
	t := atmosphere.T0 - airSpeed*airSpeed/(2*cp)
	p := atmosphere.P0 / math.Pow(atmosphere.T0/t, atmosphere.Gamma/(atmosphere.Gamma-1))
	rho := p / (r * t)
	return area * airSpeed * rho / n
}

// Intakes sizes the fuel cell air intake and the cooling intakes.
type Intakes struct{}

func (Intakes) ID() string { return IntakesID }

func (Intakes) Setup(d *component.Declarations) {
	nan := math.NaN()
	d.AddInput("data:geometry:hybrid_powertrain:hex:area", nan, "m**2")
	d.AddInput("data:propulsion:hybrid_powertrain:fuel_cell:ox_mass_flow", nan, "kg/s")
	d.AddInput("data:propulsion:hybrid_powertrain:hex:air_speed", nan, "m/s")
	d.AddInput("data:geometry:hybrid_powertrain:cooling_intake:nb_intakes", nan, "")

	for _, intake := range []string{"fc_intake", "cooling_intake"} {
		for _, dim := range []string{"length", "width", "depth"} {
			d.AddOutput("data:geometry:hybrid_powertrain:"+intake+":"+dim, "mm", 1)
		}
	}
}

func (Intakes) Compute(in *component.Inputs, out *component.Outputs) error {
	fc := ReferenceIntake.Scale(in.Get("data:propulsion:hybrid_powertrain:fuel_cell:ox_mass_flow"))
	cooling := ReferenceIntake.Scale(CoolingFlow(
		in.Get("data:geometry:hybrid_powertrain:hex:area"),
		in.Get("data:propulsion:hybrid_powertrain:hex:air_speed"),
		in.Get("data:geometry:hybrid_powertrain:cooling_intake:nb_intakes"),
	))

	for name, n := range map[string]NACAIntake{"fc_intake": fc, "cooling_intake": cooling} {
		out.Set("data:geometry:hybrid_powertrain:"+name+":length", n.Length)
		out.Set("data:geometry:hybrid_powertrain:"+name+":width", n.Width)
		out.Set("data:geometry:hybrid_powertrain:"+name+":depth", n.Depth)
	}
	return nil
}
