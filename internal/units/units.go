package units

import (
	"fmt"
	"strings"
)

// Unit describes how a unit string maps onto its SI reference unit.
// value_SI = value*Factor + Offset
type Unit struct {
	Symbol    string
	Dimension string
	Factor    float64
	Offset    float64
}

// Conversion constants used by the imperial regressions
const (
	Foot       = 0.3048          // m
	Inch       = 0.0254          // m
	Pound      = 0.45359237      // kg
	Knot       = 1852.0 / 3600.0 // m/s
	PsfToPa    = 47.880258980336 // Pa per lb/ft²
	PaToPsf    = 1 / PsfToPa     // lb/ft² per Pa
	DegToRad   = 0.017453292519943295
	RadToDeg   = 1 / DegToRad
	WattHour   = 3600.0 // J
	AmpereHour = 3600.0 // C
)

var known = map[string]Unit{}

func register(dim string, factor float64, symbols ...string) {
	for _, s := range symbols {
		known[s] = Unit{Symbol: s, Dimension: dim, Factor: factor}
	}
}

func init() {
	register("dimensionless", 1, "", "unitless", "-", "percent_fraction")

	register("length", 1, "m")
	register("length", 1e-3, "mm")
	register("length", 1e-2, "cm")
	register("length", 1e3, "km")
	register("length", Foot, "ft")
	register("length", Inch, "inch", "in")
	register("length", 1852, "NM", "nmi")

	register("area", 1, "m**2", "m²")
	register("area", Foot*Foot, "ft**2", "ft²")

	register("volume", 1, "m**3", "m³")
	register("volume", 1e-3, "L", "l")

	register("mass", 1, "kg")
	register("mass", 1e-3, "g")
	register("mass", Pound, "lb", "lbm")

	register("angle", 1, "rad")
	register("angle", DegToRad, "deg", "°")

	register("inverse_angle", 1, "rad**-1", "1/rad")
	register("inverse_angle", RadToDeg, "deg**-1", "1/deg")
	register("inverse_angle_squared", 1, "rad**-2")

	register("speed", 1, "m/s")
	register("speed", Knot, "kn", "kt", "knot")
	register("speed", 1/3.6, "km/h")
	register("speed", Foot, "ft/s")

	register("pressure", 1, "Pa")
	register("pressure", 1e5, "bar")
	register("pressure", 1e6, "MPa")
	register("pressure", PsfToPa, "lbf/ft**2", "psf")

	register("power", 1, "W", "VA")
	register("power", 1e3, "kW")

	register("energy", 1, "J")
	register("energy", 1e3, "kJ")
	register("energy", WattHour, "Wh", "W*h")
	register("energy", 1e3*WattHour, "kWh")

	register("time", 1, "s")
	register("time", 60, "min")
	register("time", 3600, "h")

	register("inverse_time", 1/3600.0, "h**-1", "1/h")
	register("inverse_time", 1, "s**-1", "1/s")

	register("current", 1, "A")
	register("charge", AmpereHour, "Ah", "A*h")
	register("charge", AmpereHour*1e-3, "mAh")
	register("voltage", 1, "V")
	register("resistance", 1, "ohm", "Ω")

	register("temperature", 1, "K", "degK")
	known["degC"] = Unit{Symbol: "degC", Dimension: "temperature", Factor: 1, Offset: 273.15}

	register("mass_flow", 1, "kg/s")
	register("density", 1, "kg/m**3")
	register("surface_density", 1, "kg/m**2")
	register("moment", 1, "kg*m")
	register("moment", Pound*Foot, "lb*ft")
}

// Lookup returns the unit registered under symbol.
func Lookup(symbol string) (Unit, error) {
	u, ok := known[strings.TrimSpace(symbol)]
	if !ok {
		return Unit{}, fmt.Errorf("unknown unit %q", symbol)
	}
	return u, nil
}

// Convert converts value expressed in unit from into unit to.
// An empty from means the value is already in the target unit.
func Convert(value float64, from, to string) (float64, error) {
	if from == "" || from == to {
		return value, nil
	}
	uf, err := Lookup(from)
	if err != nil {
		return 0, err
	}
	ut, err := Lookup(to)
	if err != nil {
		return 0, err
	}
	if uf.Dimension != ut.Dimension {
		return 0, &DimensionError{From: from, To: to}
	}
	si := value*uf.Factor + uf.Offset
	return (si - ut.Offset) / ut.Factor, nil
}

// ConvertSlice converts every element of values, returning a new slice.
func ConvertSlice(values []float64, from, to string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		c, err := Convert(v, from, to)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// DimensionError is returned when two units measure different quantities
type DimensionError struct {
	From, To string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %q: incompatible dimensions", e.From, e.To)
}
