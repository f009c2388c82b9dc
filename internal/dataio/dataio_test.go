package dataio

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gofastga/internal/component"
	"github.com/alexiusacademia/gofastga/internal/geometry"
	"gonum.org/v1/gonum/floats"
)

func TestDecode(t *testing.T) {
	t.Run("yaml scalars, lists and null", func(t *testing.T) {
		content := `
data:geometry:wing:area:
  value: 16.6
  units: m**2
data:aerodynamics:polar:cruise:cl_vector:
  value: [0.1, 0.2, 0.3]
data:geometry:flap:span_ratio:
  value: null
data:geometry:has_T_tail:
  value: .nan
`
		data, err := Decode([]byte(content), YAML)
		if err != nil {
			t.Fatal(err)
		}
		area := data["data:geometry:wing:area"]
		if !floats.Equal(area.Value, []float64{16.6}) || area.Units != "m**2" {
			t.Errorf("area = %+v", area)
		}
		if cl := data["data:aerodynamics:polar:cruise:cl_vector"].Value; !floats.Equal(cl, []float64{0.1, 0.2, 0.3}) {
			t.Errorf("cl = %v", cl)
		}
		for _, name := range []string{"data:geometry:flap:span_ratio", "data:geometry:has_T_tail"} {
			if v := data[name].Value; len(v) != 1 || !math.IsNaN(v[0]) {
				t.Errorf("%s: expected [NaN], got %v", name, v)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		content := `{
  "data:geometry:wing:area": {"value": 16.6, "units": "m**2"},
  "data:TLAR:v_cruise": {"value": [158], "units": "kn"},
  "data:geometry:flap:span_ratio": {"value": [null, 0.5]}
}`
		data, err := Decode([]byte(content), JSON)
		if err != nil {
			t.Fatal(err)
		}
		if v := data["data:TLAR:v_cruise"]; !floats.Equal(v.Value, []float64{158}) || v.Units != "kn" {
			t.Errorf("v_cruise = %+v", v)
		}
		if v := data["data:geometry:flap:span_ratio"].Value; !floats.Same(v, []float64{math.NaN(), 0.5}) {
			t.Errorf("span ratio = %v", v)
		}
	})

	t.Run("rejects text values", func(t *testing.T) {
		if _, err := Decode([]byte("a:\n  value: wing\n"), YAML); err == nil {
			t.Error("expected an error for yaml")
		}
		if _, err := Decode([]byte(`{"a": {"value": "wing"}}`), JSON); err == nil {
			t.Error("expected an error for json")
		}
	})
}

func TestEncode(t *testing.T) {
	data := component.Dataset{
		"data:geometry:wing:area":    component.Scalar(16.6, "m**2"),
		"data:geometry:flap_type":    component.Scalar(math.NaN(), ""),
		"data:geometry:wing:span_xy": {Value: []float64{1, 2}, Units: "m"},
	}

	t.Run("json writes NaN as null", func(t *testing.T) {
		b, err := Encode(data, JSON)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(b), `"value": null`) {
			t.Errorf("expected a null value in\n%s", b)
		}
	})

	for _, f := range []Format{YAML, JSON} {
		t.Run(f.String()+" round trip", func(t *testing.T) {
			b, err := Encode(data, f)
			if err != nil {
				t.Fatal(err)
			}
			back, err := Decode(b, f)
			if err != nil {
				t.Fatal(err)
			}
			for name, q := range data {
				if !floats.Same(back[name].Value, q.Value) || back[name].Units != q.Units {
					t.Errorf("%s: (actual, expected) = (%+v, %+v)", name, back[name], q)
				}
			}
		})
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	data := component.Dataset{"data:geometry:wing:area": component.Scalar(16.6, "m**2")}
	for _, name := range []string{"inputs.yaml", "inputs.yml", "inputs.json"} {
		path := filepath.Join(dir, name)
		if err := Save(path, data); err != nil {
			t.Fatal(err)
		}
		back, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if !floats.Equal(back["data:geometry:wing:area"].Value, []float64{16.6}) {
			t.Errorf("%s: got %+v", name, back)
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]Format{
		"a.json": JSON,
		"a.JSON": JSON,
		"a.yaml": YAML,
		"a.yml":  YAML,
		"a":      YAML,
	} {
		if got := FormatOf(path); got != want {
			t.Errorf("%s: (actual, expected) = (%v, %v)", path, got, want)
		}
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template(geometry.WingChords{})
	if len(tmpl) != 4 {
		t.Errorf("inputs (actual, expected) = (%d, %d)", len(tmpl), 4)
	}
	area := tmpl["data:geometry:wing:area"]
	if area.Units != "m**2" || len(area.Value) != 1 || !math.IsNaN(area.Value[0]) {
		t.Errorf("area = %+v", area)
	}
}
