package charts

import "math"

// Device selects the flap family of a chart.
type Device int

const (
	Plain Device = iota
	Slotted
	Split
)

func (d Device) String() string {
	switch d {
	case Plain:
		return "plain"
	case Slotted:
		return "slotted"
	case Split:
		return "split"
	}
	return "unknown"
}

// Roskam part VI, figure 8.14: theoretical lift effectiveness of a plain flap.
// Rows are thickness ratio, columns flap chord ratio.
var clDeltaTheory = MustGrid(
	[]float64{0, 0.04, 0.08, 0.12, 0.15},
	[]float64{0, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.40, 0.50},
	[][]float64{
		{0, 1.774, 2.487, 3.019, 3.455, 3.826, 4.152, 4.699, 5.142},
		{0, 1.809, 2.537, 3.079, 3.524, 3.903, 4.235, 4.793, 5.245},
		{0, 1.845, 2.586, 3.140, 3.593, 3.979, 4.318, 4.887, 5.348},
		{0, 1.880, 2.636, 3.200, 3.662, 4.056, 4.401, 4.981, 5.451},
		{0, 1.916, 2.686, 3.261, 3.731, 4.132, 4.484, 5.075, 5.553},
	},
)

// Roskam part VI, figure 8.15: correction of the theoretical lift effectiveness.
// Rows are clα/clα_theory, columns flap chord ratio.
var kClDelta = MustGrid(
	[]float64{0.7, 0.8, 0.9, 1.0},
	[]float64{0.05, 0.10, 0.20, 0.30, 0.40, 0.50},
	[][]float64{
		{0.70, 0.72, 0.75, 0.78, 0.81, 0.84},
		{0.80, 0.81, 0.83, 0.85, 0.87, 0.89},
		{0.90, 0.905, 0.91, 0.92, 0.93, 0.94},
		{1, 1, 1, 1, 1, 1},
	},
)

// Roskam part VI, figure 8.13: plain flap non-linearity correction K'.
// Rows are flap chord ratio, columns deflection (deg).
var kPrimePlain = MustGrid(
	[]float64{0.10, 0.15, 0.25, 0.30, 0.50},
	[]float64{0, 10, 15, 20, 30, 40, 50, 60, 70},
	[][]float64{
		{1, 1, 0.86, 0.72, 0.55, 0.46, 0.40, 0.36, 0.33},
		{1, 1, 0.88, 0.74, 0.56, 0.47, 0.41, 0.37, 0.34},
		{1, 0.98, 0.86, 0.73, 0.57, 0.48, 0.42, 0.38, 0.35},
		{1, 0.96, 0.84, 0.72, 0.57, 0.49, 0.43, 0.39, 0.36},
		{1, 0.90, 0.78, 0.68, 0.56, 0.49, 0.44, 0.40, 0.37},
	},
)

// Roskam part VI, figure 8.17: single slotted flap effectiveness αδ.
// Rows are flap chord ratio, columns deflection (deg).
var alphaDeltaSlotted = MustGrid(
	[]float64{0.15, 0.20, 0.25, 0.30, 0.40},
	[]float64{0, 10, 20, 30, 40, 50, 60},
	[][]float64{
		{0.50, 0.50, 0.47, 0.41, 0.34, 0.29, 0.25},
		{0.55, 0.55, 0.51, 0.44, 0.37, 0.31, 0.27},
		{0.60, 0.60, 0.54, 0.47, 0.39, 0.33, 0.29},
		{0.64, 0.64, 0.58, 0.50, 0.42, 0.35, 0.31},
		{0.72, 0.72, 0.65, 0.56, 0.47, 0.39, 0.34},
	},
)

// Roskam part VI, figure 8.52: flap span factor Kb.
// Rows are taper ratio, columns spanwise station η.
var kbFlaps = MustGrid(
	[]float64{0, 0.5, 1},
	[]float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
	[][]float64{
		{0, 0.17, 0.33, 0.48, 0.61, 0.73, 0.82, 0.90, 0.95, 0.985, 1},
		{0, 0.14, 0.28, 0.41, 0.53, 0.64, 0.74, 0.83, 0.91, 0.97, 1},
		{0, 0.12, 0.24, 0.36, 0.47, 0.58, 0.68, 0.78, 0.87, 0.95, 1},
	},
)

// Roskam part VI, figure 8.53: two-dimensional flap effectiveness τ.
var aDeltaAirfoil = MustCurve(
	[]float64{0, 0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.4, 0.5, 0.6},
	[]float64{0, 0.2823, 0.3958, 0.4805, 0.5498, 0.6090, 0.6607, 0.7478, 0.8183, 0.8760},
)

// Roskam part VI, figure 8.53: ratio of three- to two-dimensional flap effectiveness.
// Rows are αδ, columns aspect ratio.
var kADelta = MustGrid(
	[]float64{0.2, 0.4, 0.6, 0.8, 1.0},
	[]float64{0, 2, 4, 6, 8, 10, 12},
	[][]float64{
		{1.50, 1.28, 1.17, 1.12, 1.09, 1.07, 1.05},
		{1.40, 1.20, 1.12, 1.08, 1.06, 1.05, 1.04},
		{1.27, 1.13, 1.08, 1.05, 1.04, 1.03, 1.02},
		{1.12, 1.06, 1.03, 1.02, 1.015, 1.01, 1.01},
		{1, 1, 1, 1, 1, 1, 1},
	},
)

// Roskam part VI, figure 8.31: base maximum lift increment, by thickness (%).
var baseMaxLift = map[Device]*Curve{
	Plain:   MustCurve([]float64{10, 12, 15, 18, 21}, []float64{0.85, 0.90, 0.95, 1.00, 1.05}),
	Slotted: MustCurve([]float64{10, 12, 15, 18, 21}, []float64{1.20, 1.30, 1.40, 1.48, 1.55}),
	Split:   MustCurve([]float64{10, 12, 15, 18, 21}, []float64{0.90, 0.95, 1.00, 1.05, 1.10}),
}

// Roskam part VI, figure 8.32: chord factor k1, by flap chord ratio (%).
var k1MaxLift = map[Device]*Curve{
	Plain:   MustCurve([]float64{0, 10, 15, 20, 25, 30, 35, 40}, []float64{0, 0.53, 0.70, 0.86, 1.0, 1.12, 1.22, 1.30}),
	Slotted: MustCurve([]float64{0, 10, 15, 20, 25, 30, 35, 40}, []float64{0, 0.50, 0.68, 0.85, 1.0, 1.13, 1.24, 1.33}),
	Split:   MustCurve([]float64{0, 10, 15, 20, 25, 30, 35, 40}, []float64{0, 0.53, 0.70, 0.86, 1.0, 1.12, 1.22, 1.30}),
}

// Roskam part VI, figure 8.33: deflection factor k2, by deflection (deg).
var k2MaxLift = map[Device]*Curve{
	Plain:   MustCurve([]float64{0, 10, 20, 30, 40, 50, 60, 70}, []float64{0, 0.25, 0.48, 0.67, 0.82, 0.93, 1.0, 1.03}),
	Slotted: MustCurve([]float64{0, 10, 20, 30, 40, 45, 50, 60}, []float64{0, 0.32, 0.60, 0.82, 0.96, 1.0, 1.02, 1.03}),
	Split:   MustCurve([]float64{0, 10, 20, 30, 40, 50, 60, 70}, []float64{0, 0.25, 0.48, 0.67, 0.82, 0.93, 1.0, 1.03}),
}

// Reference deflection of k2 for each device (deg).
var deltaRef = map[Device]float64{Plain: 60, Slotted: 45, Split: 60}

// Roskam part VI, figure 8.34: motion factor k3, by δ/δref.
var k3MaxLift = MustCurve(
	[]float64{0, 0.2, 0.4, 0.6, 0.8, 1.0, 1.2},
	[]float64{0, 0.27, 0.52, 0.74, 0.90, 1.0, 1.04},
)

// Roskam part VI, figure 8.105: pitching moment factor K_p, by taper ratio.
var kpFlaps = MustCurve(
	[]float64{0.0, 0.2, 0.33, 0.5, 1.0},
	[]float64{0.65, 0.75, 0.7, 0.63, 0.5},
)

// ClAlphaTheory is the thin-airfoil lift slope corrected for thickness (rad⁻¹).
func ClAlphaTheory(thicknessRatio float64) float64 {
	return 2*math.Pi + 4.7*thicknessRatio
}

// ClDeltaTheoryPlainFlap returns the theoretical plain flap lift effectiveness (rad⁻¹).
func ClDeltaTheoryPlainFlap(thicknessRatio, chordRatio float64) float64 {
	return clDeltaTheory.At(thicknessRatio, chordRatio)
}

// KClDeltaPlainFlap corrects the theoretical effectiveness for the actual
// airfoil lift slope clAlpha (rad⁻¹).
func KClDeltaPlainFlap(thicknessRatio, clAlpha, chordRatio float64) float64 {
	return kClDelta.At(clAlpha/ClAlphaTheory(thicknessRatio), chordRatio)
}

// KPrimePlainFlap returns the non-linear correction of a plain flap at angle (deg).
func KPrimePlainFlap(angle, chordRatio float64) float64 {
	return kPrimePlain.At(chordRatio, angle)
}

// KPrimeSingleSlotted returns the effectiveness αδ of a single slotted flap at angle (deg).
func KPrimeSingleSlotted(angle, chordRatio float64) float64 {
	return alphaDeltaSlotted.At(chordRatio, angle)
}

// KbFlaps returns the span factor of a flap between stations etaIn and etaOut.
func KbFlaps(etaIn, etaOut, taperRatio float64) float64 {
	etaIn = Clip(etaIn, 0, 1)
	etaOut = Clip(etaOut, 0, 1)
	return kbFlaps.At(taperRatio, etaOut) - kbFlaps.At(taperRatio, etaIn)
}

// ADeltaAirfoil returns the two-dimensional flap effectiveness for a chord ratio.
func ADeltaAirfoil(chordRatio float64) float64 {
	return aDeltaAirfoil.At(chordRatio)
}

// KADelta returns the ratio of 3D to 2D flap effectiveness.
func KADelta(aDelta, aspectRatio float64) float64 {
	return kADelta.At(aDelta, aspectRatio)
}

// BaseMaxLiftIncrement returns ΔClmax_base for a thickness ratio given in percent.
func BaseMaxLiftIncrement(thicknessPercent float64, d Device) float64 {
	return baseMaxLift[normalize(d)].At(thicknessPercent)
}

// K1MaxLift returns the chord factor for a flap chord ratio given in percent.
func K1MaxLift(chordPercent float64, d Device) float64 {
	return k1MaxLift[normalize(d)].At(chordPercent)
}

// K2MaxLift returns the deflection factor at angle (deg).
func K2MaxLift(angle float64, d Device) float64 {
	return k2MaxLift[normalize(d)].At(angle)
}

// K3MaxLift returns the flap motion factor at angle (deg).
func K3MaxLift(angle float64, d Device) float64 {
	d = normalize(d)
	return k3MaxLift.At(angle / deltaRef[d])
}

// KpFlaps returns the flap pitching moment factor; the taper ratio is clamped to [0, 1].
func KpFlaps(taperRatio float64) float64 {
	return kpFlaps.At(Clip(taperRatio, 0, 1))
}

func normalize(d Device) Device {
	if d == Plain || d == Slotted {
		return d
	}
	return Split
}
