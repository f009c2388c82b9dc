// Package cg positions the main landing gear and the hybrid powertrain
// items along the fuselage.
//
// The battery, fuel cell and hydrogen tank components keep the keys they
// have always used: they write data:weight:propulsion:battery:CG:x while
// declaring data:weight:hybrid_powertrain:battery:CG:x, and the tank
// component writes nothing. component.Report lists these findings.
package cg

import (
	"math"

	"github.com/alexiusacademia/gofastga/internal/component"
)

const (
	MainLandingGearID = "fastga.weight.cg.main_landing_gear"
	BatteryID         = "fastga.weight.cg.battery"
	FuelCellID        = "fastga.weight.cg.fuel_cell"
	H2StorageID       = "fastga.weight.cg.h2_storage"

	declaredBatteryCG = "data:weight:hybrid_powertrain:battery:CG:x"
	writtenBatteryCG  = "data:weight:propulsion:battery:CG:x"
)

func init() {
	component.Register(MainLandingGearID, func(component.Options) (component.Component, error) {
		return MainLandingGear{}, nil
	})
	component.Register(BatteryID, func(component.Options) (component.Component, error) {
		return Battery{}, nil
	})
	component.Register(FuelCellID, func(component.Options) (component.Component, error) {
		return FuelCell{}, nil
	})
	component.Register(H2StorageID, func(component.Options) (component.Component, error) {
		return H2Storage{}, nil
	})
}

// MainLandingGearX returns the main gear position (m) that puts the aft CG at
// cgRatio of the MAC when the nose gear at xFront carries frontRatio of the
// gear load.
func MainLandingGearX(mac, mac25, cgRatio, xFront, frontRatio float64) float64 {
	xcg := mac25 - 0.25*mac + cgRatio*mac
	return (xcg - frontRatio*xFront) / (1 - frontRatio)
}

// MainLandingGear places the main landing gear behind the aft CG.
type MainLandingGear struct{}

func (MainLandingGear) ID() string { return MainLandingGearID }

func (MainLandingGear) Setup(d *component.Declarations) {
	nan := math.NaN()
	d.AddInput("data:geometry:wing:MAC:length", nan, "m")
	d.AddInput("data:geometry:wing:MAC:at25percent:x", nan, "m")
	d.AddInput("data:weight:aircraft:CG:aft:MAC_position", nan, "")
	d.AddInput("data:weight:airframe:landing_gear:front:CG:x", nan, "m")
	d.AddInput("settings:weight:airframe:landing_gear:front:weight_ratio", 0.3, "")

	d.AddOutput("data:weight:airframe:landing_gear:main:CG:x", "m", 1)
}

func (MainLandingGear) Compute(in *component.Inputs, out *component.Outputs) error {
	out.Set("data:weight:airframe:landing_gear:main:CG:x", MainLandingGearX(
		in.Get("data:geometry:wing:MAC:length"),
		in.Get("data:geometry:wing:MAC:at25percent:x"),
		in.Get("data:weight:aircraft:CG:aft:MAC_position"),
		in.Get("data:weight:airframe:landing_gear:front:CG:x"),
		in.Get("settings:weight:airframe:landing_gear:front:weight_ratio"),
	))
	return nil
}

// Battery places the battery packs. A single pack is split between 10 % of
// the fuselage and 90 % of the cabin; otherwise the packs sit a pilot seat
// length behind the fuselage length.
type Battery struct{}

func (Battery) ID() string { return BatteryID }

func (Battery) Setup(d *component.Declarations) {
	nan := math.NaN()
	d.AddInput("data:geometry:hybrid_powertrain:battery:nb_packs", nan, "")
	d.AddInput("data:geometry:cabin:seats:pilot:length", nan, "m")
	d.AddInput("data:geometry:fuselage:length", nan, "m")
	d.AddInput("data:geometry:fuselage:front_length", nan, "m")
	d.AddInput("data:geometry:cabin:length", nan, "m")

	d.AddOutput(declaredBatteryCG, "m", 1)
}

func (Battery) Compute(in *component.Inputs, out *component.Outputs) error {
	fuselage := in.Get("data:geometry:fuselage:length")

	var x float64
	if in.Get("data:geometry:hybrid_powertrain:battery:nb_packs") == 1 {
		first := 0.1 * fuselage
		second := in.Get("data:geometry:fuselage:front_length") + 0.9*in.Get("data:geometry:cabin:length")
		x = (first + second) / 2
	} else {
		x = fuselage + in.Get("data:geometry:cabin:seats:pilot:length")
	}
	out.Set(writtenBatteryCG, x)
	return nil
}

// FuelCell places the stacks side by side at 10 % of the fuselage length.
type FuelCell struct{}

func (FuelCell) ID() string { return FuelCellID }

func (FuelCell) Setup(d *component.Declarations) {
	d.AddInput("data:geometry:fuselage:length", math.NaN(), "m")

	d.AddOutput(declaredBatteryCG, "m", 1)
}

func (FuelCell) Compute(in *component.Inputs, out *component.Outputs) error {
	out.Set(writtenBatteryCG, 0.1*in.Get("data:geometry:fuselage:length"))
	return nil
}

// H2Storage is meant to place the tanks behind the pilot seat. It reads the
// battery pack count and writes no position.
type H2Storage struct{}

func (H2Storage) ID() string { return H2StorageID }

func (H2Storage) Setup(d *component.Declarations) {
	nan := math.NaN()
	d.AddInput("data:geometry:cabin:seats:pilot:length", nan, "m")
	d.AddInput("data:geometry:fuselage:length", nan, "m")
	d.AddInput("data:geometry:fuselage:front_length", nan, "m")
	d.AddInput("data:geometry:cabin:length", nan, "m")

	d.AddOutput(declaredBatteryCG, "m", 1)
}

func (H2Storage) Compute(in *component.Inputs, out *component.Outputs) error {
	in.Get("data:geometry:hybrid_powertrain:battery:nb_packs")
	return nil
}
