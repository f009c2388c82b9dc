package highlift

import (
	"math"

	"github.com/alexiusacademia/gofastga/internal/charts"
	"gonum.org/v1/gonum/interp"
)

// Young's profile drag increments (Gudmundsson, General Aviation Aircraft
// Design, p. 725). Each factor is fitted for 12%, 21% and 30% thick sections
// and interpolated linearly in between.

func plainK1(cr float64) [3]float64 {
	return [3]float64{
		-21.09*cr*cr*cr + 14.091*cr*cr + 3.165*cr - 0.00103,
		-19.988*cr*cr*cr + 12.68*cr*cr + 3.363*cr - 0.0050,
		-0.000*cr*cr*cr + 4.694*cr*cr + 4.372*cr - 0.0031,
	}
}

func plainK2(a float64) float64 {
	return -3.795e-7*a*a*a + 5.387e-5*a*a + 6.843e-4*a - 1.4729e-3
}

func slottedK1(cr float64) [2]float64 {
	return [2]float64{
		179.32*pow(cr, 4) - 111.6*pow(cr, 3) + 28.929*cr*cr + 2.3705*cr - 0.0089,
		8.2658*cr*cr + 3.4564*cr - 0.0054,
	}
}

// The 30% linear coefficient is -41677e-3 in the published fit, three orders
// of magnitude off its neighbours. It is kept as published.
func slottedK2(a float64) [3]float64 {
	return [3]float64{
		-3.9877e-12*pow(a, 6) + 1.1685e-9*pow(a, 5) - 1.2846e-7*pow(a, 4) + 6.1742e-6*pow(a, 3) -
			9.89444e-5*a*a + 6.8324e-4*a - 3.892e-4,
		-4.6025e-11*pow(a, 5) + 1.0025e-8*pow(a, 4) - 9.8465e-7*pow(a, 3) + 5.6732e-5*a*a -
			2.64884e-4*a - 3.3591e-4,
		-3.6841e-7*pow(a, 3) + 5.3342e-5*a*a - 41677e-3*a + 6.749e-4,
	}
}

func splitK2(a float64) [3]float64 {
	return [3]float64{
		-4.161e-7*a*a*a + 5.5496e-5*a*a + 1.0110e-3*a - 2.219e-5,
		-5.1007e-7*a*a*a + 7.4060e-5*a*a - 4.8877e-5*a + 8.1775e-4,
		-3.2740e-7*a*a*a + 5.598e-5*a*a - 1.2443e-4*a + 5.1647e-4,
	}
}

var thicknessStations = []float64{0.12, 0.21, 0.30}

// acrossThickness interpolates the fitted values at the clipped thickness ratio.
func acrossThickness(stations, values []float64, tc float64) float64 {
	if math.IsNaN(tc) {
		return math.NaN()
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(stations, values); err != nil {
		return math.NaN()
	}
	return pl.Predict(charts.Clip(tc, stations[0], stations[len(stations)-1]))
}

// FlapsDeltaCD returns the profile drag increment of a flap of the given type
// deflected by angle (deg). The thickness ratio is clipped to the fitted
// range, [0.12, 0.30], or [0.12, 0.21] for the slotted chord factor.
func FlapsDeltaCD(ft FlapType, chordRatio, thicknessRatio, angle, areaRatio float64) float64 {
	var k1, k2 float64
	switch ft {
	case Plain:
		k := plainK1(chordRatio)
		k1 = acrossThickness(thicknessStations, k[:], thicknessRatio)
		k2 = plainK2(angle)
	case Slotted:
		k := slottedK1(chordRatio)
		k1 = acrossThickness(thicknessStations[:2], k[:], thicknessRatio)
		kk := slottedK2(angle)
		k2 = acrossThickness(thicknessStations, kk[:], thicknessRatio)
	default:
		k := plainK1(chordRatio)
		k1 = acrossThickness(thicknessStations, k[:], thicknessRatio)
		kk := splitK2(angle)
		k2 = acrossThickness(thicknessStations, kk[:], thicknessRatio)
	}
	return k1 * k2 * areaRatio
}

// DeltaCDPlainFlap returns the two-dimensional drag increment of a plain flap
// on a 12% thick section, deflected by angle (deg).
func DeltaCDPlainFlap(chordRatio, angle float64) float64 {
	return FlapsDeltaCD(Plain, chordRatio, 0.12, angle, 1)
}
