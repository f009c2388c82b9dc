package hybrid

import (
	"math"

	"github.com/alexiusacademia/gofastga/internal/atmosphere"
	"github.com/alexiusacademia/gofastga/internal/component"
)

// HeatTransferCoefficient returns the convective coefficient (W/(m²·K)) of a
// compact heat exchanger at the given air speed (m/s).
func HeatTransferCoefficient(airSpeed float64) float64 {
	return 1269.0*airSpeed + 99.9
}

// HeatExchanger sizes the fuel cell radiator against the ISA temperature at
// cruise altitude.
type HeatExchanger struct{}

func (HeatExchanger) ID() string { return HexID }

func (HeatExchanger) Setup(d *component.Declarations) {
	nan := math.NaN()
	d.AddInput("data:propulsion:hybrid_powertrain:hex:air_speed", nan, "m/s")
	d.AddInput("data:propulsion:hybrid_powertrain:fuel_cell:operating_temperature", nan, "K")
	d.AddInput("data:geometry:hybrid_powertrain:hex:radiator_surface_density", nan, "kg/m**2")
	d.AddInput("data:propulsion:hybrid_powertrain:fuel_cell:cooling_power", nan, "W")
	d.AddInput("data:mission:sizing:main_route:cruise:altitude", nan, "m")

	d.AddOutput("data:geometry:hybrid_powertrain:hex:area", "m**2", 1)
	d.AddOutput("data:weight:hybrid_powertrain:hex:radiator_mass", "kg", 1)
}

func (HeatExchanger) Compute(in *component.Inputs, out *component.Outputs) error {
	speed := in.Get("data:propulsion:hybrid_powertrain:hex:air_speed")
	opTemp := in.Get("data:propulsion:hybrid_powertrain:fuel_cell:operating_temperature")
	density := in.Get("data:geometry:hybrid_powertrain:hex:radiator_surface_density")
	power := in.Get("data:propulsion:hybrid_powertrain:fuel_cell:cooling_power")
	ambient := atmosphere.Standard(in.Get("data:mission:sizing:main_route:cruise:altitude")).Temperature

	area := power / (HeatTransferCoefficient(speed) * (opTemp - ambient))
	out.Set("data:geometry:hybrid_powertrain:hex:area", area)
	out.Set("data:weight:hybrid_powertrain:hex:radiator_mass", area*density)
	return nil
}
