package component

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/gofastga/internal/units"
	log "github.com/sirupsen/logrus"
)

// Report lists contract defects found while running a component.
// They do not change the computed values.
type Report struct {
	ID               string
	UnwrittenOutputs []string // declared but never written
	UndeclaredWrites []string // written but not declared as outputs
	UndeclaredReads  []string // read but not declared as inputs
}

// Clean reports whether the run respected its declarations.
func (r *Report) Clean() bool {
	return len(r.UnwrittenOutputs) == 0 && len(r.UndeclaredWrites) == 0 && len(r.UndeclaredReads) == 0
}

// Merge appends the findings of other to r.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.UnwrittenOutputs = append(r.UnwrittenOutputs, other.UnwrittenOutputs...)
	r.UndeclaredWrites = append(r.UndeclaredWrites, other.UndeclaredWrites...)
	r.UndeclaredReads = append(r.UndeclaredReads, other.UndeclaredReads...)
}

// Warn logs every finding of the report at warning level.
func (r *Report) Warn() {
	for _, name := range r.UnwrittenOutputs {
		log.WithFields(log.Fields{"component": r.ID, "variable": name}).Warn("declared output never written")
	}
	for _, name := range r.UndeclaredWrites {
		log.WithFields(log.Fields{"component": r.ID, "variable": name}).Warn("output written but not declared")
	}
	for _, name := range r.UndeclaredReads {
		log.WithFields(log.Fields{"component": r.ID, "variable": name}).Warn("input read but not declared")
	}
}

// Run evaluates c on data. Declared inputs missing from data take their
// default; supplied ones are converted to the declared unit. The returned
// dataset holds the written outputs with their declared units.
func Run(c Component, data Dataset) (Dataset, *Report, error) {
	if g, ok := c.(*Group); ok {
		return g.run(data)
	}

	decl := Declare(c)
	in, err := prepareInputs(decl, data)
	if err != nil {
		return nil, nil, err
	}
	out := &Outputs{values: map[string][]float64{}}

	if err := c.Compute(in, out); err != nil {
		return nil, nil, err
	}

	result := Dataset{}
	report := &Report{ID: nameOf(c)}
	for _, v := range decl.Outputs() {
		values, ok := out.values[v.Name]
		if !ok {
			report.UnwrittenOutputs = append(report.UnwrittenOutputs, v.Name)
			continue
		}
		result[v.Name] = Quantity{Value: values, Units: v.Units}
	}
	for _, name := range out.order {
		if !decl.IsOutput(name) {
			report.UndeclaredWrites = append(report.UndeclaredWrites, name)
			result[name] = Quantity{Value: out.values[name]}
		}
	}
	for name := range in.reads {
		report.UndeclaredReads = append(report.UndeclaredReads, name)
	}
	sort.Strings(report.UndeclaredReads)

	log.WithFields(log.Fields{
		"component": report.ID,
		"inputs":    len(decl.Inputs()),
		"outputs":   len(result),
	}).Debug("component computed")

	return result, report, nil
}

func prepareInputs(decl *Declarations, data Dataset) (*Inputs, error) {
	in := &Inputs{
		values:   map[string][]float64{},
		declared: decl,
		raw:      data,
		reads:    map[string]bool{},
	}
	for _, v := range decl.Inputs() {
		q, ok := data[v.Name]
		if !ok {
			def := make([]float64, v.Shape)
			for i := range def {
				def[i] = v.Default
			}
			in.values[v.Name] = def
			continue
		}
		converted, err := units.ConvertSlice(q.Value, q.Units, v.Units)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", v.Name, err)
		}
		in.values[v.Name] = converted
	}
	return in, nil
}

// Named is implemented by components that know their registry id.
type Named interface {
	ID() string
}

func nameOf(c Component) string {
	if n, ok := c.(Named); ok {
		return n.ID()
	}
	return fmt.Sprintf("%T", c)
}

// NaNs returns a slice of n NaN values.
func NaNs(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = math.NaN()
	}
	return v
}
