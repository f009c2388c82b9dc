package component

import (
	"math"
)

// Variable is a named physical quantity declared by a component.
type Variable struct {
	Name    string
	Units   string  // "" for dimensionless
	Default float64 // NaN when unset
	Shape   int     // 1 for scalars
	Desc    string
}

// Quantity is a value with its unit, as read from or written to a data file.
// An empty Units means the value is already expressed in the declared unit.
type Quantity struct {
	Value []float64 `json:"value" yaml:"value"`
	Units string    `json:"units,omitempty" yaml:"units,omitempty"`
}

// Scalar builds a one-element quantity.
func Scalar(v float64, units string) Quantity {
	return Quantity{Value: []float64{v}, Units: units}
}

// Dataset maps variable names to quantities.
type Dataset map[string]Quantity

// Merge copies every entry of other into d, overwriting existing keys.
func (d Dataset) Merge(other Dataset) {
	for k, v := range other {
		d[k] = v
	}
}

// Component is a disciplinary model with declared inputs and outputs.
// Compute must not keep state between calls.
type Component interface {
	Setup(d *Declarations)
	Compute(in *Inputs, out *Outputs) error
}

// Declarations collects the inputs and outputs a component declares in Setup.
type Declarations struct {
	inputs  []Variable
	outputs []Variable
	index   map[string]bool
	outIdx  map[string]bool
}

// NewDeclarations returns an empty declaration set.
func NewDeclarations() *Declarations {
	return &Declarations{index: map[string]bool{}, outIdx: map[string]bool{}}
}

// Declare runs the Setup of c and returns what it declared.
func Declare(c Component) *Declarations {
	d := NewDeclarations()
	c.Setup(d)
	return d
}

// AddInput declares a scalar input. Use math.NaN() as def for "unset".
// The returned pointer is only valid until the next Add call.
func (d *Declarations) AddInput(name string, def float64, units string) *Variable {
	return d.AddVectorInput(name, units, []float64{def})
}

// AddVectorInput declares an input whose default is the given vector.
// The returned pointer is only valid until the next Add call.
func (d *Declarations) AddVectorInput(name, units string, def []float64) *Variable {
	if d.index[name] {
		return d.lookup(d.inputs, name)
	}
	d.index[name] = true
	v := Variable{Name: name, Units: units, Default: math.NaN(), Shape: len(def)}
	if len(def) > 0 {
		v.Default = def[0]
	}
	d.inputs = append(d.inputs, v)
	return &d.inputs[len(d.inputs)-1]
}

// AddOutput declares an output of the given shape. The returned pointer is
// only valid until the next Add call.
func (d *Declarations) AddOutput(name, units string, shape int) *Variable {
	if d.outIdx[name] {
		return d.lookup(d.outputs, name)
	}
	if shape < 1 {
		shape = 1
	}
	d.outIdx[name] = true
	d.outputs = append(d.outputs, Variable{Name: name, Units: units, Default: math.NaN(), Shape: shape})
	return &d.outputs[len(d.outputs)-1]
}

func (d *Declarations) lookup(vars []Variable, name string) *Variable {
	for i := range vars {
		if vars[i].Name == name {
			return &vars[i]
		}
	}
	return nil
}

// Inputs returns the declared inputs in declaration order.
func (d *Declarations) Inputs() []Variable { return d.inputs }

// Outputs returns the declared outputs in declaration order.
func (d *Declarations) Outputs() []Variable { return d.outputs }

// IsInput reports whether name is a declared input.
func (d *Declarations) IsInput(name string) bool { return d.index[name] }

// IsOutput reports whether name is a declared output.
func (d *Declarations) IsOutput(name string) bool { return d.outIdx[name] }

// Inputs gives a component read access to its input values, in declared units.
type Inputs struct {
	values   map[string][]float64
	declared *Declarations
	raw      Dataset
	reads    map[string]bool
}

// Get returns the scalar value of name, or NaN when it is missing.
func (in *Inputs) Get(name string) float64 {
	v := in.Vector(name)
	if len(v) == 0 {
		return math.NaN()
	}
	return v[0]
}

// Vector returns the values of name. Reading an undeclared name falls back to
// the raw dataset and is recorded in the run report.
func (in *Inputs) Vector(name string) []float64 {
	if in.declared.IsInput(name) {
		return in.values[name]
	}
	in.reads[name] = true
	if q, ok := in.raw[name]; ok {
		return q.Value
	}
	return nil
}

// Has reports whether name was supplied by the caller rather than defaulted.
func (in *Inputs) Has(name string) bool {
	_, ok := in.raw[name]
	return ok
}

// Outputs collects the values a component writes.
type Outputs struct {
	values map[string][]float64
	order  []string
}

// Set writes a scalar output.
func (out *Outputs) Set(name string, v float64) {
	out.SetVector(name, []float64{v})
}

// SetVector writes a vector output. The slice is copied.
func (out *Outputs) SetVector(name string, v []float64) {
	if _, ok := out.values[name]; !ok {
		out.order = append(out.order, name)
	}
	out.values[name] = append([]float64(nil), v...)
}

// Get returns what was written to name so far, NaN if nothing.
func (out *Outputs) Get(name string) float64 {
	v := out.values[name]
	if len(v) == 0 {
		return math.NaN()
	}
	return v[0]
}
