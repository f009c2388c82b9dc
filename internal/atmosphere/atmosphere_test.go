package atmosphere

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestStandard(t *testing.T) {
	t.Run("sea level", func(t *testing.T) {
		a := Standard(0)
		if a.Temperature != T0 {
			t.Errorf("temperature (actual, expected) = (%v, %v)", a.Temperature, T0)
		}
		if !scalar.EqualWithinAbs(a.Density, Rho0, 1e-4) {
			t.Errorf("density (actual, expected) = (%v, %v)", a.Density, Rho0)
		}
		if !scalar.EqualWithinAbs(a.SpeedOfSound, 340.294, 1e-2) {
			t.Errorf("speed of sound (actual, expected) = (%v, %v)", a.SpeedOfSound, 340.294)
		}
	})

	t.Run("tropopause", func(t *testing.T) {
		a := Standard(TropopauseAlt)
		if !scalar.EqualWithinAbs(a.Temperature, TropopauseTemp, 1e-9) {
			t.Errorf("temperature (actual, expected) = (%v, %v)", a.Temperature, TropopauseTemp)
		}
		if !scalar.EqualWithinRel(a.Pressure, 22632.0, 1e-3) {
			t.Errorf("pressure (actual, expected) = (%v, %v)", a.Pressure, 22632.0)
		}
	})

	t.Run("isothermal layer", func(t *testing.T) {
		a := Standard(15000)
		if a.Temperature != TropopauseTemp {
			t.Errorf("temperature (actual, expected) = (%v, %v)", a.Temperature, TropopauseTemp)
		}
		if !scalar.EqualWithinRel(a.Density, 0.19367, 2e-3) {
			t.Errorf("density (actual, expected) = (%v, %v)", a.Density, 0.19367)
		}
	})

	t.Run("NaN altitude", func(t *testing.T) {
		a := Standard(math.NaN())
		if !math.IsNaN(a.Temperature) || !math.IsNaN(a.Density) {
			t.Errorf("expected a NaN state, got %+v", a)
		}
	})

	t.Run("clamped above 20 km", func(t *testing.T) {
		if Standard(25000).Pressure != Standard(StratosphereTop).Pressure {
			t.Error("pressure above the lower stratosphere should be clamped")
		}
	})
}

func TestDeltaISA(t *testing.T) {
	hot := New(3000, 15)
	std := Standard(3000)
	if hot.Pressure != std.Pressure {
		t.Errorf("pressure (actual, expected) = (%v, %v)", hot.Pressure, std.Pressure)
	}
	if hot.Density >= std.Density {
		t.Errorf("a hot day should be less dense: (hot, standard) = (%v, %v)", hot.Density, std.Density)
	}
}

func TestDynamicPressure(t *testing.T) {
	q := Standard(0).DynamicPressure(50)
	if !scalar.EqualWithinRel(q, 0.5*Standard(0).Density*2500, 1e-12) {
		t.Errorf("(actual, expected) = (%v, %v)", q, 0.5*Standard(0).Density*2500)
	}
}
