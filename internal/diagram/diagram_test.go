package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func quadratic(name string, n int) Polar {
	p := Polar{Name: name, CL: make([]float64, n), CD: make([]float64, n)}
	for i := range p.CL {
		cl := -0.2 + 1.6*float64(i)/float64(n-1)
		p.CL[i] = cl
		p.CD[i] = 0.025 + 0.045*cl*cl
	}
	return p
}

func TestValid(t *testing.T) {
	t.Run("mismatched lengths", func(t *testing.T) {
		p := Polar{Name: "x", CL: []float64{0, 1}, CD: []float64{0.02}}
		if p.Valid() == nil {
			t.Error("expected an error")
		}
	})
	t.Run("too few finite points", func(t *testing.T) {
		p := Polar{Name: "x", CL: []float64{0, math.NaN()}, CD: []float64{0.02, 0.03}}
		if p.Valid() == nil {
			t.Error("expected an error")
		}
	})
	t.Run("ok", func(t *testing.T) {
		if err := quadratic("x", 5).Valid(); err != nil {
			t.Error(err)
		}
	})
}

func TestResample(t *testing.T) {
	t.Run("stations span the CL range", func(t *testing.T) {
		cl, cd, err := quadratic("clean", 16).Resample(31)
		if err != nil {
			t.Fatal(err)
		}
		if len(cl) != 31 || len(cd) != 31 {
			t.Fatalf("(len cl, len cd) = (%d, %d), expected 31", len(cl), len(cd))
		}
		if !scalar.EqualWithinAbs(cl[0], -0.2, 1e-12) || !scalar.EqualWithinAbs(cl[30], 1.4, 1e-12) {
			t.Errorf("(first, last) = (%v, %v), expected (-0.2, 1.4)", cl[0], cl[30])
		}
		// Linear interpolation of a convex curve never undershoots it.
		for i := range cl {
			exact := 0.025 + 0.045*cl[i]*cl[i]
			if cd[i] < exact-1e-12 || cd[i]-exact > 2e-3 {
				t.Errorf("station %d: (actual, expected) = (%v, %v)", i, cd[i], exact)
			}
		}
	})

	t.Run("unsorted input with duplicates", func(t *testing.T) {
		p := Polar{Name: "trimmed", CL: []float64{0.8, 0.2, 0.5, 0.5}, CD: []float64{0.05, 0.03, 0.04, 0.09}}
		cl, cd, err := p.Resample(3)
		if err != nil {
			t.Fatal(err)
		}
		if !floats.EqualApprox(cl, []float64{0.2, 0.5, 0.8}, 1e-12) {
			t.Errorf("cl = %v", cl)
		}
		if !floats.EqualApprox(cd, []float64{0.03, 0.04, 0.05}, 1e-12) {
			t.Errorf("cd = %v", cd)
		}
	})

	t.Run("one station", func(t *testing.T) {
		if _, _, err := quadratic("x", 4).Resample(1); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestMaxFinesse(t *testing.T) {
	// L/D of cd0 + k·cl² peaks at cl = sqrt(cd0/k).
	ratio, cl := quadratic("clean", 1601).MaxFinesse()
	want := math.Sqrt(0.025 / 0.045)
	if !scalar.EqualWithinAbs(cl, want, 1e-3) {
		t.Errorf("cl: (actual, expected) = (%v, %v)", cl, want)
	}
	wantRatio := 1 / (2 * math.Sqrt(0.025*0.045))
	if !scalar.EqualWithinRel(ratio, wantRatio, 1e-6) {
		t.Errorf("ratio: (actual, expected) = (%v, %v)", ratio, wantRatio)
	}

	empty := Polar{CL: []float64{0.1}, CD: []float64{0}}
	if r, _ := empty.MaxFinesse(); !math.IsNaN(r) {
		t.Errorf("expected NaN, got %v", r)
	}
}

func TestDrawASCIIPolar(t *testing.T) {
	out, err := DrawASCIIPolar(quadratic("cruise", 16), 10)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "cruise: CD over CL") {
		t.Errorf("caption missing from:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines < 10 {
		t.Errorf("expected at least 10 lines, got %d", lines)
	}

	if _, err := DrawASCIIPolar(Polar{Name: "bad"}, 10); err == nil {
		t.Error("expected an error for an empty polar")
	}
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("CS-23 LOADS", []string{"n+ = 3.80", "n- = 1.52"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	width := len([]rune(lines[0]))
	for i, l := range lines {
		if n := len([]rune(l)); n != width {
			t.Errorf("line %d: (width, expected) = (%d, %d)", i, n, width)
		}
	}
}

func TestExportPolars(t *testing.T) {
	dir := t.TempDir()
	polars := []Polar{quadratic("cruise", 16), quadratic("low_speed", 16)}

	t.Run("png in a new directory", func(t *testing.T) {
		path, err := ExportPolars(polars, "Drag polars", filepath.Join(dir, "plots", "polar.png"))
		if err != nil {
			t.Fatal(err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("expected a non-empty file at %s (%v)", path, err)
		}
	})

	t.Run("svg", func(t *testing.T) {
		path, err := ExportPolars(polars[:1], "Cruise", filepath.Join(dir, "polar.svg"))
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Ext(path) != ".svg" {
			t.Errorf("path = %s", path)
		}
	})

	t.Run("unknown extension falls back to png", func(t *testing.T) {
		path, err := ExportPolars(polars, "Drag polars", filepath.Join(dir, "polar.dat"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasSuffix(path, "polar.dat.png") {
			t.Errorf("path = %s", path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Error(err)
		}
	})

	t.Run("nothing to draw", func(t *testing.T) {
		if _, err := ExportPolars(nil, "x", filepath.Join(dir, "none.png")); err == nil {
			t.Error("expected an error")
		}
	})
}
