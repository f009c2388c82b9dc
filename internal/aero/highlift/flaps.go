package highlift

import (
	"math"

	"github.com/alexiusacademia/gofastga/internal/charts"
)

// FlapType is the high-lift device family, coded as in the aircraft data files.
type FlapType int

const (
	Plain   FlapType = 0
	Slotted FlapType = 1
	Split   FlapType = 2
)

// FlapTypeOf decodes the numeric flap type. Anything but 0 or 1, NaN
// included, is a split flap.
func FlapTypeOf(v float64) FlapType {
	switch v {
	case 0:
		return Plain
	case 1:
		return Slotted
	}
	return Split
}

func (f FlapType) device() charts.Device {
	switch f {
	case Plain:
		return charts.Plain
	case Slotted:
		return charts.Slotted
	}
	return charts.Split
}

func (f FlapType) String() string { return f.device().String() }

// Wing holds the planform and flap data of the main wing.
type Wing struct {
	Span           float64 // m
	Area           float64 // m²
	TaperRatio     float64
	FuselageWidth  float64 // m, maximum fuselage width
	RootY          float64 // m, spanwise station of the root chord
	RootChord      float64 // m
	ThicknessRatio float64
	AspectRatio    float64
	Sweep25        float64 // deg

	FlapType       FlapType
	FlapChordRatio float64
	FlapSpanRatio  float64

	CLAlpha        float64 // rad⁻¹, low speed wing lift slope
	ClAlphaAirfoil float64 // rad⁻¹
}

// FlapAreaRatio returns the flapped area over the reference area, counting the
// portion of the flap hidden by the fuselage.
func (w Wing) FlapAreaRatio() float64 {
	y1 := w.FuselageWidth / 2
	y2 := w.RootY
	f := w.FlapSpanRatio
	flapArea := (y2-y1)*w.RootChord + f*(w.Span/2-y2)*(w.RootChord*(2-(1-w.TaperRatio)*f))*0.5
	return 2 * flapArea / w.Area
}

// DeltaCLAirfoil2D returns the section lift increment of a flap deflected by
// angle (deg). Slotted flaps use the single-slotted effectiveness; the other
// types follow the plain flap chain of Roskam part VI, section 8.1.2.1.
func DeltaCLAirfoil2D(ft FlapType, chordRatio, thicknessRatio, clAlphaAirfoil, angle, mach float64) float64 {
	rad := angle * math.Pi / 180
	if ft == Slotted {
		alphaFlap := charts.KPrimeSingleSlotted(angle, chordRatio)
		return 2 * math.Pi / math.Sqrt(1-mach*mach) * alphaFlap * rad
	}
	clDeltaTheory := charts.ClDeltaTheoryPlainFlap(thicknessRatio, chordRatio)
	k := charts.KPrimePlainFlap(math.Abs(angle), chordRatio)
	kClDelta := charts.KClDeltaPlainFlap(thicknessRatio, clAlphaAirfoil, chordRatio)
	return kClDelta * clDeltaTheory * k * rad
}

// DeltaCL returns the wing lift increment at zero incidence and the maximum
// lift increment, for a flap angle in degrees.
func (w Wing) DeltaCL(angle, mach float64) (cl, clMax float64) {
	cl2D := DeltaCLAirfoil2D(w.FlapType, w.FlapChordRatio, w.ThicknessRatio, w.ClAlphaAirfoil, angle, mach)

	semiSpan := w.Span / 2
	y1 := w.FuselageWidth / 2
	etaIn := y1 / semiSpan
	etaOut := ((w.RootY - y1) + w.FlapSpanRatio*(semiSpan-w.RootY)) / (semiSpan - w.RootY)
	kb := charts.KbFlaps(etaIn, etaOut, w.TaperRatio)
	kADelta := charts.KADelta(charts.ADeltaAirfoil(w.FlapChordRatio), w.AspectRatio)

	cl = kb * cl2D * (w.CLAlpha / w.ClAlphaAirfoil) * kADelta
	return cl, w.deltaCLMax(angle)
}

// deltaCLMax follows Roskam part VI, section 8.1.2.2.
func (w Wing) deltaCLMax(angle float64) float64 {
	d := w.FlapType.device()
	base := charts.BaseMaxLiftIncrement(w.ThicknessRatio*100, d)
	k1 := charts.K1MaxLift(w.FlapChordRatio*100, d)
	k2 := charts.K2MaxLift(angle, d)
	k3 := charts.K3MaxLift(angle, d)

	sweep := w.Sweep25 * math.Pi / 180
	kPlanform := (1 - 0.08*math.Pow(math.Cos(sweep), 2)) * math.Pow(math.Cos(sweep), 0.75)
	return base * k1 * k2 * k3 * kPlanform * w.FlapAreaRatio()
}

// DeltaCM returns the pitching moment increment of the flap (Roskam figures
// 8.105 and 8.106).
func (w Wing) DeltaCM(angle, mach float64) float64 {
	cl, _ := w.DeltaCL(angle, mach)
	return charts.KpFlaps(w.TaperRatio) * (-0.27) * cl
}

// DeltaCD returns the profile drag increment of the deflected flap.
func (w Wing) DeltaCD(angle float64) float64 {
	return FlapsDeltaCD(w.FlapType, w.FlapChordRatio, w.ThicknessRatio, angle, w.FlapAreaRatio())
}

// Tail holds the horizontal tail data used for the elevator.
type Tail struct {
	Area               float64 // m²
	Sweep25            float64 // rad
	ThicknessRatio     float64
	ElevatorChordRatio float64
	ClAlphaAirfoil     float64 // rad⁻¹
}

// ElevatorDeflection is the deflection (deg) up to which the elevator lift
// is taken as linear.
const ElevatorDeflection = 25.0

// fuselageCarryOver removes the elevator-free central part of the tail.
const fuselageCarryOver = 0.9

// ElevatorCLDelta returns the elevator lift derivative referred to the wing
// area, evaluated as a plain flap at ElevatorDeflection.
func (t Tail) ElevatorCLDelta(wingArea float64) float64 {
	cr := t.ElevatorChordRatio
	clDeltaTheory := charts.ClDeltaTheoryPlainFlap(t.ThicknessRatio, cr)
	k := charts.KPrimePlainFlap(ElevatorDeflection, cr)
	kClDelta := charts.KClDeltaPlainFlap(t.ThicknessRatio, t.ClAlphaAirfoil, cr)
	return clDeltaTheory * k * kClDelta * t.Area / wingArea * fuselageCarryOver
}

// ElevatorCDDelta returns the elevator drag coefficient per squared
// deflection (rad⁻²) for the deflection angle in degrees.
func (t Tail) ElevatorCDDelta(angle, wingArea float64) float64 {
	a := math.Abs(angle)
	rad := a * math.Pi / 180
	return DeltaCDPlainFlap(t.ElevatorChordRatio, a) / (rad * rad) * math.Cos(t.Sweep25) * t.Area / wingArea
}

func pow(x, n float64) float64 { return math.Pow(x, n) }
