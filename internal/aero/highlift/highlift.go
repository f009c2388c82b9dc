// Package highlift computes lift, moment and drag increments of flaps and
// elevator at low speed.
package highlift

import (
	"math"

	"github.com/alexiusacademia/gofastga/internal/component"
)

// ID is the registry id of DeltaHighLift.
const ID = "fastga.aerodynamics.high_lift"

func init() {
	component.Register(ID, func(component.Options) (component.Component, error) {
		return DeltaHighLift{}, nil
	})
}

// DeltaHighLift provides the flap increments for landing and takeoff and the
// elevator derivatives at low speed.
type DeltaHighLift struct{}

func (DeltaHighLift) ID() string { return ID }

func (DeltaHighLift) Setup(d *component.Declarations) {
	nan := math.NaN()
	d.AddInput("data:geometry:wing:span", nan, "m")
	d.AddInput("data:geometry:wing:area", nan, "m**2")
	d.AddInput("data:geometry:horizontal_tail:area", nan, "m**2")
	d.AddInput("data:geometry:horizontal_tail:sweep_25", nan, "rad")
	d.AddInput("data:geometry:wing:taper_ratio", nan, "")
	d.AddInput("data:geometry:fuselage:maximum_width", nan, "m")
	d.AddInput("data:geometry:wing:root:y", nan, "m")
	d.AddInput("data:geometry:wing:root:chord", nan, "m")
	d.AddInput("data:geometry:wing:thickness_ratio", nan, "")
	d.AddInput("data:geometry:wing:aspect_ratio", nan, "")
	d.AddInput("data:geometry:wing:sweep_25", nan, "deg")
	d.AddInput("data:geometry:flap:chord_ratio", 0.2, "")
	d.AddInput("data:geometry:flap:span_ratio", nan, "")
	d.AddInput("data:geometry:flap_type", nan, "")
	d.AddInput("data:geometry:horizontal_tail:elevator_chord_ratio", nan, "")
	d.AddInput("data:geometry:horizontal_tail:thickness_ratio", nan, "")
	d.AddInput("data:aerodynamics:wing:low_speed:CL_alpha", nan, "rad**-1")
	d.AddInput("data:aerodynamics:low_speed:mach", nan, "")
	d.AddInput("data:aerodynamics:horizontal_tail:airfoil:CL_alpha", nan, "rad**-1")
	d.AddInput("data:aerodynamics:wing:airfoil:CL_alpha", nan, "rad**-1")
	d.AddInput("data:mission:sizing:landing:flap_angle", 30, "deg")
	d.AddInput("data:mission:sizing:landing:elevator_angle", nan, "deg")
	d.AddInput("data:mission:sizing:takeoff:flap_angle", 10, "deg")

	for _, phase := range []string{"landing", "takeoff"} {
		for _, coef := range []string{"CL", "CL_max", "CM", "CD"} {
			d.AddOutput("data:aerodynamics:flaps:"+phase+":"+coef, "", 1)
		}
	}
	d.AddOutput("data:aerodynamics:elevator:low_speed:CL_delta", "rad**-1", 1)
	d.AddOutput("data:aerodynamics:elevator:low_speed:CD_delta", "rad**-2", 1)
}

func (DeltaHighLift) Compute(in *component.Inputs, out *component.Outputs) error {
	w := WingFromInputs(in)
	mach := in.Get("data:aerodynamics:low_speed:mach")

	for _, phase := range []string{"landing", "takeoff"} {
		angle := in.Get("data:mission:sizing:" + phase + ":flap_angle")
		cl, clMax := w.DeltaCL(angle, mach)
		out.Set("data:aerodynamics:flaps:"+phase+":CL", cl)
		out.Set("data:aerodynamics:flaps:"+phase+":CL_max", clMax)
		out.Set("data:aerodynamics:flaps:"+phase+":CM", w.DeltaCM(angle, mach))
		out.Set("data:aerodynamics:flaps:"+phase+":CD", w.DeltaCD(angle))
	}

	t := Tail{
		Area:               in.Get("data:geometry:horizontal_tail:area"),
		Sweep25:            in.Get("data:geometry:horizontal_tail:sweep_25"),
		ThicknessRatio:     in.Get("data:geometry:horizontal_tail:thickness_ratio"),
		ElevatorChordRatio: in.Get("data:geometry:horizontal_tail:elevator_chord_ratio"),
		ClAlphaAirfoil:     in.Get("data:aerodynamics:horizontal_tail:airfoil:CL_alpha"),
	}
	out.Set("data:aerodynamics:elevator:low_speed:CL_delta", t.ElevatorCLDelta(w.Area))
	out.Set("data:aerodynamics:elevator:low_speed:CD_delta",
		t.ElevatorCDDelta(in.Get("data:mission:sizing:landing:elevator_angle"), w.Area))
	return nil
}

// WingFromInputs reads the wing and flap description from component inputs.
func WingFromInputs(in *component.Inputs) Wing {
	return Wing{
		Span:           in.Get("data:geometry:wing:span"),
		Area:           in.Get("data:geometry:wing:area"),
		TaperRatio:     in.Get("data:geometry:wing:taper_ratio"),
		FuselageWidth:  in.Get("data:geometry:fuselage:maximum_width"),
		RootY:          in.Get("data:geometry:wing:root:y"),
		RootChord:      in.Get("data:geometry:wing:root:chord"),
		ThicknessRatio: in.Get("data:geometry:wing:thickness_ratio"),
		AspectRatio:    in.Get("data:geometry:wing:aspect_ratio"),
		Sweep25:        in.Get("data:geometry:wing:sweep_25"),
		FlapType:       FlapTypeOf(in.Get("data:geometry:flap_type")),
		FlapChordRatio: in.Get("data:geometry:flap:chord_ratio"),
		FlapSpanRatio:  in.Get("data:geometry:flap:span_ratio"),
		CLAlpha:        in.Get("data:aerodynamics:wing:low_speed:CL_alpha"),
		ClAlphaAirfoil: in.Get("data:aerodynamics:wing:airfoil:CL_alpha"),
	}
}
