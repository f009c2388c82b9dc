// Package loads derives the CS-23 manoeuvre load factors.
package loads

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gofastga/internal/component"
)

const ID = "fastga.loads.cs23"

// UltimateFactor is the factor of safety between limit and ultimate loads.
const UltimateFactor = 1.5

// Category is the certification category of the aircraft.
type Category int

const (
	Normal Category = iota
	Utility
	Acrobatic
)

var categoryNames = [...]string{"normal", "utility", "acrobatic"}

func (c Category) String() string {
	if c < Normal || c > Acrobatic {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory maps a category name onto its Category.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(s, name) {
			return Category(i), nil
		}
	}
	return Normal, fmt.Errorf("unknown category %q", s)
}

func init() {
	component.Register(ID, func(opts component.Options) (component.Component, error) {
		name, err := opts.String("category", "normal")
		if err != nil {
			return nil, err
		}
		cat, err := ParseCategory(name)
		if err != nil {
			return nil, err
		}
		return CS23{Category: cat}, nil
	})
}

// LimitLoadFactors returns the positive and negative limit manoeuvre load
// factors (CS 23.337) for a design mass in lb.
func LimitLoadFactors(mtow float64, c Category) (positive, negative float64) {
	switch c {
	case Utility:
		positive = 4.4
	case Acrobatic:
		positive = 6.0
	default:
		positive = math.Min(2.1+24000/(mtow+10000), 3.8)
	}
	if math.IsNaN(mtow) {
		positive = math.NaN()
	}

	if c == Acrobatic {
		return positive, -0.5 * positive
	}
	return positive, -0.4 * positive
}

// CS23 computes the limit load factors and the ultimate sizing factor.
type CS23 struct {
	Category Category
}

func (c CS23) ID() string { return ID + "." + c.Category.String() }

func (CS23) Setup(d *component.Declarations) {
	d.AddInput("data:weight:aircraft:MTOW", math.NaN(), "lb")

	d.AddOutput("data:mission:sizing:cs23:load_factor:positive_limit", "", 1)
	d.AddOutput("data:mission:sizing:cs23:load_factor:negative_limit", "", 1)
	d.AddOutput("data:mission:sizing:cs23:sizing_factor_ultimate", "", 1)
}

func (c CS23) Compute(in *component.Inputs, out *component.Outputs) error {
	pos, neg := LimitLoadFactors(in.Get("data:weight:aircraft:MTOW"), c.Category)
	out.Set("data:mission:sizing:cs23:load_factor:positive_limit", pos)
	out.Set("data:mission:sizing:cs23:load_factor:negative_limit", neg)
	out.Set("data:mission:sizing:cs23:sizing_factor_ultimate", UltimateFactor*pos)
	return nil
}
