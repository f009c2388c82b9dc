// Package dataio reads and writes variable data files: maps of variable name
// to {value, units}, as YAML or JSON.
//
//	data:geometry:wing:area:
//	  value: 16.6
//	  units: m**2
//
// A value is a number or a list of numbers. A null or missing value is unset
// and reads as NaN.
package dataio

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gofastga/internal/component"
	"gopkg.in/yaml.v3"
)

// Format is a data file encoding.
type Format int

const (
	YAML Format = iota
	JSON
)

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "yaml"
}

// FormatOf picks the format from the file extension. Anything but .json is YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// values is a Quantity value that may be written as a single number.
type values []float64

type record struct {
	Value values `json:"value" yaml:"value"`
	Units string `json:"units,omitempty" yaml:"units,omitempty"`
}

func (v *values) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		f, err := scalarYAML(node)
		if err != nil {
			return err
		}
		*v = values{f}
	case yaml.SequenceNode:
		out := make(values, len(node.Content))
		for i, n := range node.Content {
			f, err := scalarYAML(n)
			if err != nil {
				return err
			}
			out[i] = f
		}
		*v = out
	default:
		return fmt.Errorf("line %d: value must be a number or a list of numbers", node.Line)
	}
	return nil
}

func scalarYAML(node *yaml.Node) (float64, error) {
	if node.Tag == "!!null" {
		return math.NaN(), nil
	}
	var f float64
	if err := node.Decode(&f); err != nil {
		return 0, err
	}
	return f, nil
}

func (v values) MarshalYAML() (any, error) {
	if len(v) == 1 {
		return v[0], nil
	}
	return []float64(v), nil
}

func (v *values) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = values{math.NaN()}
	case float64:
		*v = values{x}
	case []any:
		out := make(values, len(x))
		for i, e := range x {
			switch f := e.(type) {
			case nil:
				out[i] = math.NaN()
			case float64:
				out[i] = f
			default:
				return fmt.Errorf("value element %d: %v is not a number", i, e)
			}
		}
		*v = out
	default:
		return fmt.Errorf("value %v is not a number or a list of numbers", raw)
	}
	return nil
}

// MarshalJSON writes NaN as null, which JSON has no number for.
func (v values) MarshalJSON() ([]byte, error) {
	enc := make([]any, len(v))
	for i, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			enc[i] = nil
		} else {
			enc[i] = f
		}
	}
	if len(enc) == 1 {
		return json.Marshal(enc[0])
	}
	return json.Marshal(enc)
}

// Decode parses data file content.
func Decode(content []byte, f Format) (component.Dataset, error) {
	records := map[string]record{}
	var err error
	if f == JSON {
		err = json.Unmarshal(content, &records)
	} else {
		err = yaml.Unmarshal(content, &records)
	}
	if err != nil {
		return nil, err
	}
	data := make(component.Dataset, len(records))
	for name, r := range records {
		if len(r.Value) == 0 {
			r.Value = values{math.NaN()}
		}
		data[name] = component.Quantity{Value: r.Value, Units: r.Units}
	}
	return data, nil
}

// Encode renders data in the given format, variables sorted by name.
func Encode(data component.Dataset, f Format) ([]byte, error) {
	records := make(map[string]record, len(data))
	for name, q := range data {
		records[name] = record{Value: q.Value, Units: q.Units}
	}
	if f == JSON {
		return json.MarshalIndent(records, "", "  ")
	}
	return yaml.Marshal(records)
}

// Load reads a data file.
func Load(path string) (component.Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err := Decode(content, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Save writes data to path in the format its extension selects.
func Save(path string, data component.Dataset) error {
	content, err := Encode(data, FormatOf(path))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, content, 0o644)
}

// Template lists the inputs a component declares, with their defaults.
func Template(c component.Component) component.Dataset {
	data := component.Dataset{}
	for _, v := range component.Declare(c).Inputs() {
		value := make([]float64, v.Shape)
		for i := range value {
			value[i] = v.Default
		}
		data[v.Name] = component.Quantity{Value: value, Units: v.Units}
	}
	return data
}
