// Package hybrid sizes the fuel cell / battery powertrain: battery packs,
// pressurised hydrogen tanks, the heat exchanger and the air intakes.
package hybrid

import (
	"fmt"
	"math"
	"sort"
)

// CellType describes a battery cell. NaN fields are unknown.
type CellType struct {
	Name           string
	Diameter       float64 // m
	Length         float64 // m
	Capacity       float64 // Ah, rated
	Mass           float64 // kg
	NominalVoltage float64 // V
	MaxCurrent     float64 // A
	CutOffVoltage  float64 // V
	SpecificEnergy float64 // Wh/kg
	EnergyDensity  float64 // Wh/L
}

// Sized reports whether the cell carries what pack sizing needs.
func (c CellType) Sized() bool {
	for _, v := range []float64{c.Diameter, c.Length, c.Capacity, c.Mass, c.NominalVoltage} {
		if math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Cells is the catalogue of known cells.
var Cells = map[string]CellType{
	"LG-HG2": {
		Name:           "LG-HG2",
		Diameter:       0.018,
		Length:         0.065,
		Capacity:       3.0,
		Mass:           0.0445,
		NominalVoltage: 3.6,
		MaxCurrent:     20,
		CutOffVoltage:  2.5,
		SpecificEnergy: 240,
		EnergyDensity:  670,
	},
	// Lithium-sulphur, 2023 assessment. Only the energy figures are known.
	"LI-S": unsizedCell("LI-S", 550, 620),
}

func unsizedCell(name string, specificEnergy, energyDensity float64) CellType {
	nan := math.NaN()
	return CellType{
		Name:           name,
		Diameter:       nan,
		Length:         nan,
		Capacity:       nan,
		Mass:           nan,
		NominalVoltage: nan,
		MaxCurrent:     nan,
		CutOffVoltage:  nan,
		SpecificEnergy: specificEnergy,
		EnergyDensity:  energyDensity,
	}
}

// LookupCell returns the catalogue cell called name.
func LookupCell(name string) (CellType, error) {
	c, ok := Cells[name]
	if !ok {
		return CellType{}, fmt.Errorf("unknown cell type %q (known: %v)", name, CellNames())
	}
	return c, nil
}

// CellNames returns the catalogue keys in sorted order.
func CellNames() []string {
	names := make([]string, 0, len(Cells))
	for k := range Cells {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
