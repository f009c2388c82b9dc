package hybrid

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gofastga/internal/component"
)

const (
	// CellWeightFraction is the share of the pack mass made of cells.
	CellWeightFraction = 0.65
	// PackOverhead is the share of the pack volume made of cells.
	PackOverhead = 0.8

	hexagonalPacking = 0.907
	socVoltageDrop   = 0.94 // V
)

// Battery is one pack of cylindrical cells in hexagonal stacking. When there
// is more than one pack the others are identical emergency backups.
type Battery struct {
	Cell               CellType
	Packs              float64
	RequiredEnergy     float64 // Wh
	MaxCRate           float64 // h**-1
	InternalResistance float64 // ohm
	SOC                float64
	SystemVoltage      float64 // V
	TakeoffPower       float64 // W
	MotorEfficiency    float64
}

// CellVoltage is the loaded cell voltage, linear in state of charge and
// discharge rate.
func (b Battery) CellVoltage() float64 {
	return b.Cell.NominalVoltage - socVoltageDrop*b.SOC - b.InternalResistance*b.Cell.Capacity*b.MaxCRate
}

// SeriesCells returns the smallest n with n·cell ≥ nominal. Non positive or
// non finite cell voltages give the plain quotient ceiling.
func SeriesCells(nominal, cell float64) float64 {
	n := math.Ceil(nominal / cell)
	if cell <= 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return n
	}
	for n > 1 && (n-1)*cell >= nominal {
		n--
	}
	for n*cell < nominal {
		n++
	}
	return n
}

// SeriesCells is the string length that reaches the system voltage.
func (b Battery) SeriesCells() float64 {
	return SeriesCells(b.SystemVoltage, b.CellVoltage())
}

// ParallelCells is the larger of the string counts sized by takeoff power
// and by energy.
func (b Battery) ParallelCells() float64 {
	byPower := math.Ceil(b.TakeoffPower /
		(b.CellVoltage() * b.SeriesCells() * b.MotorEfficiency * b.Cell.Capacity * b.MaxCRate))
	byEnergy := math.Ceil(b.RequiredEnergy / (b.Cell.Capacity * b.SystemVoltage))
	return math.Max(byPower, byEnergy)
}

// PackVolume returns the volume of a single pack (m³).
func (b Battery) PackVolume() float64 {
	d, l := b.Cell.Diameter, b.Cell.Length
	return math.Pi * d * d * l * b.SeriesCells() * b.ParallelCells() / (4 * hexagonalPacking * PackOverhead)
}

// TotalVolume returns the volume of all packs (m³).
func (b Battery) TotalVolume() float64 {
	return b.Packs * b.PackVolume()
}

// PackMass returns the mass (kg) of nSeries × nParallel cells with their
// casing and wiring.
func PackMass(nSeries, nParallel, cellMass float64) float64 {
	return nSeries * nParallel * cellMass / CellWeightFraction
}

// Mass returns the mass of one pack (kg).
func (b Battery) Mass() float64 {
	return PackMass(b.SeriesCells(), b.ParallelCells(), b.Cell.Mass)
}

// Batteries sizes the battery packs from the cell data. A catalogue Cell
// replaces the cell inputs.
type Batteries struct {
	Cell *CellType
}

// NewBatteries returns the sizing for the named catalogue cell, or for the
// cell inputs when name is empty.
func NewBatteries(name string) (*Batteries, error) {
	if name == "" {
		return &Batteries{}, nil
	}
	c, err := LookupCell(name)
	if err != nil {
		return nil, err
	}
	if !c.Sized() {
		return nil, fmt.Errorf("cell type %q has no geometry", name)
	}
	return &Batteries{Cell: &c}, nil
}

func (b *Batteries) ID() string { return BatteryID }

func (b *Batteries) Setup(d *component.Declarations) {
	nan := math.NaN()
	d.AddInput("data:geometry:hybrid_powertrain:battery:nb_packs", nan, "")
	d.AddInput("data:propulsion:hybrid_powertrain:battery:required_energy", nan, "Wh")
	d.AddInput("data:propulsion:hybrid_powertrain:battery:input_current", nan, "A")
	d.AddInput("data:geometry:hybrid_powertrain:battery:cell_diameter", nan, "m")
	d.AddInput("data:geometry:hybrid_powertrain:battery:cell_length", nan, "m")
	d.AddInput("data:geometry:hybrid_powertrain:battery:cell_capacity", nan, "Ah")
	d.AddInput("data:geometry:hybrid_powertrain:battery:cell_mass", nan, "kg")
	d.AddInput("data:propulsion:hybrid_powertrain:battery:cell_nominal_voltage", nan, "V")
	d.AddInput("data:propulsion:hybrid_powertrain:battery:max_C_rate", nan, "h**-1")
	d.AddInput("data:propulsion:hybrid_powertrain:battery:int_resistance", nan, "ohm")
	d.AddInput("data:propulsion:hybrid_powertrain:battery:SOC", nan, "")
	d.AddInput("data:propulsion:hybrid_powertrain:battery:sys_nom_voltage", nan, "V")
	d.AddInput("data:propulsion:hybrid_powertrain:motor:motor_eff", nan, "")
	d.AddInput("data:propulsion:hybrid_powertrain:TO_power", nan, "W")

	d.AddOutput("data:geometry:hybrid_powertrain:battery:N_series", "", 1)
	d.AddOutput("data:geometry:hybrid_powertrain:battery:N_parallel", "", 1)
	d.AddOutput("data:geometry:hybrid_powertrain:battery:pack_volume", "m**3", 1)
	d.AddOutput("data:geometry:hybrid_powertrain:battery:tot_volume", "m**3", 1)
}

// BatteryFromInputs builds the pack described by the inputs, with cell
// overriding the cell inputs when not nil.
func BatteryFromInputs(in *component.Inputs, cell *CellType) Battery {
	c := CellType{
		Diameter:       in.Get("data:geometry:hybrid_powertrain:battery:cell_diameter"),
		Length:         in.Get("data:geometry:hybrid_powertrain:battery:cell_length"),
		Capacity:       in.Get("data:geometry:hybrid_powertrain:battery:cell_capacity"),
		Mass:           in.Get("data:geometry:hybrid_powertrain:battery:cell_mass"),
		NominalVoltage: in.Get("data:propulsion:hybrid_powertrain:battery:cell_nominal_voltage"),
	}
	if cell != nil {
		c = *cell
	}
	return Battery{
		Cell:               c,
		Packs:              in.Get("data:geometry:hybrid_powertrain:battery:nb_packs"),
		RequiredEnergy:     in.Get("data:propulsion:hybrid_powertrain:battery:required_energy"),
		MaxCRate:           in.Get("data:propulsion:hybrid_powertrain:battery:max_C_rate"),
		InternalResistance: in.Get("data:propulsion:hybrid_powertrain:battery:int_resistance"),
		SOC:                in.Get("data:propulsion:hybrid_powertrain:battery:SOC"),
		SystemVoltage:      in.Get("data:propulsion:hybrid_powertrain:battery:sys_nom_voltage"),
		TakeoffPower:       in.Get("data:propulsion:hybrid_powertrain:TO_power"),
		MotorEfficiency:    in.Get("data:propulsion:hybrid_powertrain:motor:motor_eff"),
	}
}

func (b *Batteries) Compute(in *component.Inputs, out *component.Outputs) error {
	batt := BatteryFromInputs(in, b.Cell)
	out.Set("data:geometry:hybrid_powertrain:battery:N_series", batt.SeriesCells())
	out.Set("data:geometry:hybrid_powertrain:battery:N_parallel", batt.ParallelCells())
	out.Set("data:geometry:hybrid_powertrain:battery:pack_volume", batt.PackVolume())
	out.Set("data:geometry:hybrid_powertrain:battery:tot_volume", batt.TotalVolume())
	return nil
}

// TemperatureCorrection returns the capacity correction factor for a pack
// operating at temperature t (K).
func TemperatureCorrection(t float64) float64 {
	switch {
	case t > 288 && t <= 298:
		return 1.59
	case t > 298 && t <= 308:
		return 1.40
	case t > 308 && t <= 318:
		return 1.30
	case t > 318 && t <= 328:
		return 1.19
	case t > 328 && t <= 338:
		return 1.11
	case t > 338 && t <= 348:
		return 1.04
	}
	return 1.00
}

// BatteriesV2 sizes the bank capacity from a backup time, in the manner of
// an inverter battery bank. The pack volumes are declared but not computed.
type BatteriesV2 struct{}

func (BatteriesV2) ID() string { return BatteryV2ID }

func (BatteriesV2) Setup(d *component.Declarations) {
	nan := math.NaN()
	d.AddInput("data:propulsion:hybrid_powertrain:battery:required_power", nan, "VA")
	d.AddInput("data:propulsion:hybrid_powertrain:battery:bank_voltage", nan, "V")
	d.AddInput("data:propulsion:hybrid_powertrain:battery:backup_time", nan, "h")
	d.AddInput("data:propulsion:hybrid_powertrain:battery:wire_loss_factor", nan, "")
	d.AddInput("data:propulsion:hybrid_powertrain:battery:aging_factor", nan, "")
	d.AddInput("data:propulsion:hybrid_powertrain:battery:efficiency", nan, "")
	d.AddInput("data:propulsion:hybrid_powertrain:battery:SOC", nan, "")
	d.AddInput("data:propulsion:hybrid_powertrain:battery:operating_temperature", nan, "K")

	d.AddOutput("data:propulsion:hybrid_powertrain:battery:design_capacity", "Ah", 1)
	d.AddOutput("data:geometry:hybrid_powertrain:battery:pack_volume", "m**3", 1)
	d.AddOutput("data:geometry:hybrid_powertrain:battery:tot_volume", "m**3", 1)
}

func (BatteriesV2) Compute(in *component.Inputs, out *component.Outputs) error {
	power := in.Get("data:propulsion:hybrid_powertrain:battery:required_power")
	voltage := in.Get("data:propulsion:hybrid_powertrain:battery:bank_voltage")
	backup := in.Get("data:propulsion:hybrid_powertrain:battery:backup_time")
	wireLoss := in.Get("data:propulsion:hybrid_powertrain:battery:wire_loss_factor")
	aging := in.Get("data:propulsion:hybrid_powertrain:battery:aging_factor")
	eff := in.Get("data:propulsion:hybrid_powertrain:battery:efficiency")
	soc := in.Get("data:propulsion:hybrid_powertrain:battery:SOC")
	temp := in.Get("data:propulsion:hybrid_powertrain:battery:operating_temperature")

	load := power * backup / voltage // Ah
	capacity := load * (1 + wireLoss) * (1 + aging) * TemperatureCorrection(temp) / (eff * (1 - soc))
	out.Set("data:propulsion:hybrid_powertrain:battery:design_capacity", capacity)
	return nil
}
