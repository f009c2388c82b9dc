package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var palette = []color.Color{
	color.RGBA{R: 0, G: 0, B: 139, A: 255},
	color.RGBA{R: 178, G: 34, B: 34, A: 255},
	color.RGBA{R: 0, G: 100, B: 0, A: 255},
	color.RGBA{R: 255, G: 140, B: 0, A: 255},
}

// ExportPolars draws the polars as CL against CD and saves the image. The
// format follows the file extension; anything other than .png, .svg or .pdf
// gets a .png suffix. The path actually written is returned.
func ExportPolars(polars []Polar, title, filename string) (string, error) {
	if len(polars) == 0 {
		return "", fmt.Errorf("no polar to export")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "CD"
	p.Y.Label.Text = "CL"
	p.Add(plotter.NewGrid())
	p.Legend.Top = false
	p.Legend.Left = false

	for i, pol := range polars {
		if err := pol.Valid(); err != nil {
			return "", err
		}
		pts := make(plotter.XYs, 0, len(pol.CL))
		for j := range pol.CL {
			if finite(pol.CL[j]) && finite(pol.CD[j]) {
				pts = append(pts, plotter.XY{X: pol.CD[j], Y: pol.CL[j]})
			}
		}
		c := palette[i%len(palette)]

		line, err := plotter.NewLine(pts)
		if err != nil {
			return "", err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = c
		p.Add(line)

		marks, err := plotter.NewScatter(pts)
		if err != nil {
			return "", err
		}
		marks.GlyphStyle.Color = c
		marks.GlyphStyle.Radius = vg.Points(3)
		marks.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(marks)
		p.Legend.Add(pol.Name, line)

		if ratio, cl := pol.MaxFinesse(); finite(ratio) {
			lbl, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    []plotter.XY{{X: cl / ratio, Y: cl}},
				Labels: []string{fmt.Sprintf("L/D=%.1f", ratio)},
			})
			if err != nil {
				return "", err
			}
			p.Add(lbl)
		}
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
