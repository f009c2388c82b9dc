package calibration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gofastga/internal/component"
	"github.com/alexiusacademia/gofastga/internal/weight/mass"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const sample = `
[data.weight.airframe.horizontal_tail]
k_factor = 1.05

[data.weight.airframe.vertical_tail]
k_factor = 0.95

[data.mission.sizing.landing]
flap_angle = 35 deg

[data.aerodynamics.polar.cruise]
cl_vector = 0.1, 0.2, 0.3
`

func TestParse(t *testing.T) {
	data, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	for name, expected := range map[string]component.Quantity{
		"data:weight:airframe:horizontal_tail:k_factor": component.Scalar(1.05, ""),
		"data:weight:airframe:vertical_tail:k_factor":   component.Scalar(0.95, ""),
		"data:mission:sizing:landing:flap_angle":        component.Scalar(35, "deg"),
		"data:aerodynamics:polar:cruise:cl_vector":      {Value: []float64{0.1, 0.2, 0.3}},
	} {
		got, ok := data[name]
		if !ok {
			t.Errorf("%s missing", name)
			continue
		}
		if !floats.Equal(got.Value, expected.Value) || got.Units != expected.Units {
			t.Errorf("%s: (actual, expected) = (%+v, %+v)", name, got, expected)
		}
	}
	if len(data) != 4 {
		t.Errorf("entries (actual, expected) = (%d, %d)", len(data), 4)
	}
}

func TestParseErrors(t *testing.T) {
	for _, content := range []string{
		"[a]\nb = wing\n",
		"[a]\nb = 1, x, 3\n",
		"[a]\nb =\n",
	} {
		if _, err := Parse([]byte(content)); err == nil {
			t.Errorf("expected an error for %q", content)
		}
	}
}

func TestCalibratesTailMass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calibration.ini")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	calib, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	s := component.Scalar
	data := component.Dataset{
		"data:mission:sizing:cs23:sizing_factor_ultimate": s(5.7, ""),
		"data:weight:aircraft:MTOW":                       s(1700, "kg"),
		"data:TLAR:v_cruise":                              s(158, "kn"),
		"data:mission:sizing:main_route:cruise:altitude":  s(8000, "ft"),
		"data:geometry:has_T_tail":                        s(0, ""),
	}
	for _, tail := range []string{"horizontal_tail", "vertical_tail"} {
		data["data:geometry:"+tail+":area"] = s(3, "m**2")
		data["data:geometry:"+tail+":thickness_ratio"] = s(0.1, "")
		data["data:geometry:"+tail+":sweep_25"] = s(10, "deg")
		data["data:geometry:"+tail+":aspect_ratio"] = s(4, "")
		data["data:geometry:"+tail+":taper_ratio"] = s(0.6, "")
	}
	plain, _, err := component.Run(mass.Tail{}, data)
	if err != nil {
		t.Fatal(err)
	}
	data.Merge(calib)
	calibrated, _, err := component.Run(mass.Tail{}, data)
	if err != nil {
		t.Fatal(err)
	}

	key := "data:weight:airframe:horizontal_tail:mass"
	if got, expected := calibrated[key].Value[0], 1.05*plain[key].Value[0]; !scalar.EqualWithinRel(got, expected, 1e-12) {
		t.Errorf("(actual, expected) = (%v, %v)", got, expected)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.ini")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
