// Package geometry holds the planform relations that other models depend on.
package geometry

import (
	"math"

	"github.com/alexiusacademia/gofastga/internal/component"
)

const (
	WingChordsID   = "fastga.geometry.wing.l2_l3"
	TailDistanceID = "fastga.geometry.ht.distance"
)

func init() {
	component.Register(WingChordsID, func(component.Options) (component.Component, error) {
		return WingChords{}, nil
	})
	component.Register(TailDistanceID, func(component.Options) (component.Component, error) {
		return TailDistance{}, nil
	})
}

// RootChord returns the root chord (m) of a wing with a constant chord from
// the centreline to the root station y2 and a linear taper to the tip station y4.
func RootChord(area, y2, y4, taperRatio float64) float64 {
	return area / (2*y2 + (y4-y2)*(1+taperRatio))
}

// WingChords computes the root and kink chords. The wing has no kink, so both
// are equal.
type WingChords struct{}

func (WingChords) ID() string { return WingChordsID }

func (WingChords) Setup(d *component.Declarations) {
	nan := math.NaN()
	d.AddInput("data:geometry:wing:area", nan, "m**2")
	d.AddInput("data:geometry:wing:root:y", nan, "m")
	d.AddInput("data:geometry:wing:tip:y", nan, "m")
	d.AddInput("data:geometry:wing:taper_ratio", nan, "")

	d.AddOutput("data:geometry:wing:root:chord", "m", 1)
	d.AddOutput("data:geometry:wing:kink:chord", "m", 1)
}

func (WingChords) Compute(in *component.Inputs, out *component.Outputs) error {
	l2 := RootChord(
		in.Get("data:geometry:wing:area"),
		in.Get("data:geometry:wing:root:y"),
		in.Get("data:geometry:wing:tip:y"),
		in.Get("data:geometry:wing:taper_ratio"),
	)
	out.Set("data:geometry:wing:root:chord", l2)
	out.Set("data:geometry:wing:kink:chord", l2)
	return nil
}

// TailDistance computes the height of the horizontal tail above the wing
// MAC25: the vertical tail span for a T-tail, zero for a conventional tail.
type TailDistance struct{}

func (TailDistance) ID() string { return TailDistanceID }

func (TailDistance) Setup(d *component.Declarations) {
	d.AddInput("data:geometry:vertical_tail:span", math.NaN(), "m")
	d.AddInput("data:geometry:has_T_tail", math.NaN(), "")

	d.AddOutput("data:geometry:horizontal_tail:z:from_wingMAC25", "m", 1)
}

func (TailDistance) Compute(in *component.Inputs, out *component.Outputs) error {
	height := 0.0
	// Only an explicit 0 means a conventional tail.
	if in.Get("data:geometry:has_T_tail") != 0 {
		height = in.Get("data:geometry:vertical_tail:span")
	}
	out.Set("data:geometry:horizontal_tail:z:from_wingMAC25", height)
	return nil
}
