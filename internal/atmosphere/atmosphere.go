package atmosphere

import "math"

// ISA constants
const (
	R         = 287.05287 // Specific gas constant for dry air (J/(kg·K))
	Gamma     = 1.4       // Heat capacity ratio
	G         = 9.80665   // Gravity (m/s²)
	T0        = 288.15    // Sea level temperature (K)
	P0        = 101325.0  // Sea level pressure (Pa)
	Rho0      = 1.225     // Sea level density (kg/m³)
	LapseRate = 0.0065    // Temperature lapse rate in the troposphere (K/m)

	TropopauseAlt   = 11000.0 // m
	TropopauseTemp  = 216.65  // K
	StratosphereTop = 20000.0 // m
)

var tropopausePressure = P0 * math.Pow(TropopauseTemp/T0, G/(LapseRate*R))

// Atmosphere is the ISA state at a given geometric altitude
type Atmosphere struct {
	Altitude     float64 // m
	Temperature  float64 // K
	Pressure     float64 // Pa
	Density      float64 // kg/m³
	SpeedOfSound float64 // m/s
}

// New returns the standard atmosphere at altitude (m), with a temperature offset
// deltaISA (K) applied on top of the standard temperature.
// Altitudes above the lower stratosphere are clamped to its upper bound.
// A NaN altitude gives a NaN state.
func New(altitude, deltaISA float64) Atmosphere {
	if math.IsNaN(altitude) {
		nan := math.NaN()
		return Atmosphere{Altitude: nan, Temperature: nan, Pressure: nan, Density: nan, SpeedOfSound: nan}
	}
	h := math.Min(altitude, StratosphereTop)

	var tStd, p float64
	if h <= TropopauseAlt {
		tStd = T0 - LapseRate*h
		p = P0 * math.Pow(tStd/T0, G/(LapseRate*R))
	} else {
		tStd = TropopauseTemp
		p = tropopausePressure * math.Exp(-G/(R*TropopauseTemp)*(h-TropopauseAlt))
	}

	t := tStd + deltaISA
	return Atmosphere{
		Altitude:     altitude,
		Temperature:  t,
		Pressure:     p,
		Density:      p / (R * t),
		SpeedOfSound: math.Sqrt(Gamma * R * t),
	}
}

// Standard returns the ISA atmosphere at altitude (m).
func Standard(altitude float64) Atmosphere {
	return New(altitude, 0)
}

// DynamicPressure returns ½ρV² (Pa) for a true airspeed in m/s.
func (a Atmosphere) DynamicPressure(tas float64) float64 {
	return 0.5 * a.Density * tas * tas
}

// Mach returns the Mach number of a true airspeed in m/s.
func (a Atmosphere) Mach(tas float64) float64 {
	return tas / a.SpeedOfSound
}
