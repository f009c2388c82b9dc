package hybrid

import (
	"math"

	"github.com/alexiusacademia/gofastga/internal/component"
)

const (
	faraday   = 96500.0 // C/mol
	hydrogenR = 4157.2  // J/(kg·K)
)

// Compressibility returns the hydrogen compressibility factor at pressure p (Pa).
func Compressibility(p float64) float64 {
	return 0.99704 + 6.4149e-9*p
}

// HydrogenFlow returns the hydrogen consumption of a stack delivering power
// at the given cell voltage.
func HydrogenFlow(power, cellVoltage float64) float64 {
	return power / (cellVoltage * 2 * faraday * 500)
}

// H2Storage describes gaseous hydrogen stored in identical cylindrical tanks.
type H2Storage struct {
	CellVoltage       float64 // V
	DesignPower       float64 // kJ
	Duration          float64 // h
	Pressure          float64 // Pa
	Temperature       float64 // K
	Tanks             float64
	LengthRadiusRatio float64
	FoS               float64
	MaxStress         float64 // Pa
	Density           float64 // kg/m³, tank wall material
	MassFit           float64
}

// TankSizing is the result of sizing an H2Storage.
type TankSizing struct {
	HydrogenMass   float64 // kg
	HydrogenVolume float64 // m³
	InternalVolume float64 // m³, one tank
	Radius         float64 // m, internal
	Length         float64 // m, internal
	Thickness      float64 // m
	TankVolume     float64 // m³, one tank outer
	TotalVolume    float64 // m³
	TankMass       float64 // kg
	TotalMass      float64 // kg
}

// Size computes the tank dimensions. The wall follows the thin-wall hoop
// stress t = P·r·FoS/(2σ).
func (s H2Storage) Size() TankSizing {
	var z TankSizing
	z.HydrogenMass = s.Duration * HydrogenFlow(s.DesignPower, s.CellVoltage)
	z.HydrogenVolume = Compressibility(s.Pressure) * hydrogenR * z.HydrogenMass * s.Temperature / s.Pressure

	z.InternalVolume = z.HydrogenVolume / s.Tanks
	z.Radius = math.Cbrt(z.InternalVolume / (s.LengthRadiusRatio * math.Pi))
	z.Length = s.LengthRadiusRatio * z.Radius

	z.Thickness = s.Pressure * z.Radius * s.FoS / (2 * s.MaxStress)
	outerRadius := z.Radius + z.Thickness
	outerLength := z.Length + 2*z.Thickness
	z.TankVolume = math.Pi * outerRadius * outerRadius * outerLength
	z.TotalVolume = s.Tanks * z.TankVolume

	z.TankMass = (z.TankVolume - z.InternalVolume) * s.Density * s.MassFit
	z.TotalMass = s.Tanks * z.TankMass
	return z
}

// H2Tanks sizes 700 bar class gaseous hydrogen tanks for the reserve duration.
type H2Tanks struct{}

func (H2Tanks) ID() string { return H2StorageID }

func (H2Tanks) Setup(d *component.Declarations) {
	nan := math.NaN()
	d.AddInput("data:propulsion:hybrid_powertrain:fuel_cell:cell_voltage", nan, "V")
	d.AddInput("data:propulsion:hybrid_powertrain:fuel_cell:design_power", nan, "kJ")
	d.AddInput("data:mission:sizing:main_route:reserve:duration", nan, "h")
	d.AddInput("data:propulsion:hybrid_powertrain:h2_storage:pressure", nan, "Pa")
	d.AddInput("data:propulsion:hybrid_powertrain:h2_storage:temperature", nan, "K")
	d.AddInput("data:geometry:hybrid_powertrain:h2_storage:nb_tanks", nan, "")
	d.AddInput("data:geometry:hybrid_powertrain:h2_storage:length_radius_ratio", nan, "")
	d.AddInput("data:geometry:hybrid_powertrain:h2_storage:fos", nan, "").Desc = "Factor of safety"
	d.AddInput("data:geometry:hybrid_powertrain:h2_storage:maximum_stress", nan, "Pa")
	d.AddInput("data:geometry:hybrid_powertrain:h2_storage:mass_fitting_factor", 1, "").Desc =
		"Adjusts the tank mass"
	d.AddInput("data:geometry:hybrid_powertrain:h2_storage:tank_density", nan, "kg/m**3")

	d.AddOutput("data:geometry:hybrid_powertrain:h2_storage:total_tanks_volume", "m**3", 1)
	d.AddOutput("data:geometry:hybrid_powertrain:h2_storage:single_tank_volume", "m**3", 1)
	d.AddOutput("data:geometry:hybrid_powertrain:h2_storage:tank_internal_radius", "m", 1)
	d.AddOutput("data:geometry:hybrid_powertrain:h2_storage:tank_internal_height", "m", 1)
	d.AddOutput("data:geometry:hybrid_powertrain:h2_storage:wall_thickness", "m", 1)
	d.AddOutput("data:weight:hybrid_powertrain:h2_storage:single_tank_mass", "kg", 1)
	d.AddOutput("data:weight:hybrid_powertrain:h2_storage:total_tanks_mass", "kg", 1)
}

func (H2Tanks) Compute(in *component.Inputs, out *component.Outputs) error {
	s := H2Storage{
		CellVoltage:       in.Get("data:propulsion:hybrid_powertrain:fuel_cell:cell_voltage"),
		DesignPower:       in.Get("data:propulsion:hybrid_powertrain:fuel_cell:design_power"),
		Duration:          in.Get("data:mission:sizing:main_route:reserve:duration"),
		Pressure:          in.Get("data:propulsion:hybrid_powertrain:h2_storage:pressure"),
		Temperature:       in.Get("data:propulsion:hybrid_powertrain:h2_storage:temperature"),
		Tanks:             in.Get("data:geometry:hybrid_powertrain:h2_storage:nb_tanks"),
		LengthRadiusRatio: in.Get("data:geometry:hybrid_powertrain:h2_storage:length_radius_ratio"),
		FoS:               in.Get("data:geometry:hybrid_powertrain:h2_storage:fos"),
		MaxStress:         in.Get("data:geometry:hybrid_powertrain:h2_storage:maximum_stress"),
		Density:           in.Get("data:geometry:hybrid_powertrain:h2_storage:tank_density"),
		MassFit:           in.Get("data:geometry:hybrid_powertrain:h2_storage:mass_fitting_factor"),
	}
	z := s.Size()
	out.Set("data:geometry:hybrid_powertrain:h2_storage:total_tanks_volume", z.TotalVolume)
	out.Set("data:geometry:hybrid_powertrain:h2_storage:single_tank_volume", z.TankVolume)
	out.Set("data:geometry:hybrid_powertrain:h2_storage:tank_internal_radius", z.Radius)
	out.Set("data:geometry:hybrid_powertrain:h2_storage:tank_internal_height", z.Length)
	out.Set("data:geometry:hybrid_powertrain:h2_storage:wall_thickness", z.Thickness)
	out.Set("data:weight:hybrid_powertrain:h2_storage:single_tank_mass", z.TankMass)
	out.Set("data:weight:hybrid_powertrain:h2_storage:total_tanks_mass", z.TotalMass)
	return nil
}
