package cmd

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gofastga/internal/calibration"
	"github.com/alexiusacademia/gofastga/internal/component"
	"github.com/alexiusacademia/gofastga/internal/dataio"

	// Model packages register their components on import.
	_ "github.com/alexiusacademia/gofastga/internal/aero/highlift"
	_ "github.com/alexiusacademia/gofastga/internal/aero/polar"
	_ "github.com/alexiusacademia/gofastga/internal/geometry"
	_ "github.com/alexiusacademia/gofastga/internal/hybrid"
	_ "github.com/alexiusacademia/gofastga/internal/loads"
	_ "github.com/alexiusacademia/gofastga/internal/weight/cg"
	_ "github.com/alexiusacademia/gofastga/internal/weight/mass"
)

// readData loads the data files in order, later files overriding earlier
// ones, then applies the calibration file if any.
func readData(calibrationFile string, paths ...string) (component.Dataset, error) {
	data := component.Dataset{}
	for _, p := range paths {
		if p == "" {
			continue
		}
		d, err := dataio.Load(p)
		if err != nil {
			return nil, err
		}
		data.Merge(d)
	}
	if calibrationFile != "" {
		c, err := calibration.Load(calibrationFile)
		if err != nil {
			return nil, err
		}
		data.Merge(c)
	}
	return data, nil
}

// parseOptions turns key=value pairs into model options. Values read as
// booleans or numbers when they parse as such.
func parseOptions(pairs []string) (component.Options, error) {
	opts := component.Options{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("option %q: expected key=value", pair)
		}
		if b, err := strconv.ParseBool(value); err == nil {
			opts[key] = b
		} else if f, err := strconv.ParseFloat(value, 64); err == nil {
			opts[key] = f
		} else {
			opts[key] = value
		}
	}
	return opts, nil
}

func printDataset(title string, data component.Dataset) {
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%s:\n", title)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		q := data[name]
		fmt.Fprintf(w, "  %s\t%s\t%s\n", name, formatValues(q.Value), q.Units)
	}
	w.Flush()
	fmt.Println()
}

func printReport(r *component.Report) {
	if r.Clean() {
		return
	}
	fmt.Println("CONTRACT WARNINGS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range r.UnwrittenOutputs {
		fmt.Fprintf(w, "  ⚠ declared, never written:\t%s\n", name)
	}
	for _, name := range r.UndeclaredWrites {
		fmt.Fprintf(w, "  ⚠ written, not declared:\t%s\n", name)
	}
	for _, name := range r.UndeclaredReads {
		fmt.Fprintf(w, "  ⚠ read, not declared:\t%s\n", name)
	}
	w.Flush()
	fmt.Println()
}

func formatValues(v []float64) string {
	if len(v) == 1 {
		return formatValue(v[0])
	}
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = formatValue(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatValue(x float64) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	return strconv.FormatFloat(x, 'g', 6, 64)
}
