package component

import "fmt"

// Slot is a named child of a group.
type Slot struct {
	Name      string
	Component Component
}

// Group evaluates its children in order; outputs of earlier children are
// visible to later ones. There is no iteration, so cycles are not resolved.
type Group struct {
	id       string
	children []Slot
}

// NewGroup returns a group with the given id and children.
func NewGroup(id string, children ...Slot) *Group {
	return &Group{id: id, children: children}
}

// Add appends a child.
func (g *Group) Add(name string, c Component) {
	g.children = append(g.children, Slot{Name: name, Component: c})
}

// Children returns the children in evaluation order.
func (g *Group) Children() []Slot { return g.children }

func (g *Group) ID() string { return g.id }

// Setup declares the inputs of every child that no earlier child produces,
// and the outputs of all children.
func (g *Group) Setup(d *Declarations) {
	produced := map[string]bool{}
	for _, s := range g.children {
		cd := Declare(s.Component)
		for _, v := range cd.Inputs() {
			if produced[v.Name] || d.IsOutput(v.Name) {
				continue
			}
			d.AddVectorInput(v.Name, v.Units, fill(v.Shape, v.Default))
		}
		for _, v := range cd.Outputs() {
			produced[v.Name] = true
			d.AddOutput(v.Name, v.Units, v.Shape)
		}
	}
}

// Compute runs the children on the group inputs. Child reports are logged.
func (g *Group) Compute(in *Inputs, out *Outputs) error {
	data := Dataset{}
	for _, v := range in.declared.Inputs() {
		data[v.Name] = Quantity{Value: in.values[v.Name], Units: v.Units}
	}
	result, report, err := g.run(data)
	if err != nil {
		return err
	}
	report.Warn()
	for name, q := range result {
		out.SetVector(name, q.Value)
	}
	return nil
}

func (g *Group) run(data Dataset) (Dataset, *Report, error) {
	work := Dataset{}
	work.Merge(data)
	result := Dataset{}
	report := &Report{ID: g.id}
	for _, s := range g.children {
		res, rep, err := Run(s.Component, work)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		work.Merge(res)
		result.Merge(res)
		report.Merge(rep)
	}
	return result, report, nil
}

func fill(n int, v float64) []float64 {
	if n < 1 {
		n = 1
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
