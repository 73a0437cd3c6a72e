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

// ExportInteractionDiagram exports the M-N interaction diagram to an image file
func ExportInteractionDiagram(data InteractionDiagramData, filename string) error {
	if len(data.Vertices) == 0 {
		return fmt.Errorf("interaction diagram has no vertices")
	}

	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Interaction Diagram"
	}
	p.X.Label.Text = "Moment M_Rd (kNm)"
	p.Y.Label.Text = "Axial load N_Rd (kN)"
	p.X.Min, p.Y.Min = 0, 0
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(data.Vertices))
	labels := make([]string, len(data.Vertices))
	for i, v := range data.Vertices {
		pts[i] = plotter.XY{X: v.Moment, Y: v.Axial}
		labels[i] = v.Label
	}

	envelope, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	envelope.LineStyle.Width = vg.Points(1.5)
	envelope.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	envelope.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(envelope)

	vertices, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	vertices.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	vertices.GlyphStyle.Radius = vg.Points(4)
	vertices.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(vertices)

	l, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if err != nil {
		return err
	}
	l.Offset = vg.Point{X: vg.Points(5), Y: vg.Points(5)}
	p.Add(l)

	if data.NEd > 0 {
		var maxM float64
		for _, v := range data.Vertices {
			maxM = max(maxM, v.Moment)
		}
		ned, err := plotter.NewLine(plotter.XYs{{X: 0, Y: data.NEd}, {X: maxM, Y: data.NEd}})
		if err != nil {
			return err
		}
		ned.LineStyle.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}
		ned.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(ned)
		p.Legend.Add("N_Ed", ned)
	}

	return save(p, 10*vg.Inch, 6*vg.Inch, filename)
}

// ExportBeamDiagrams exports the shear and moment diagrams as two files,
// <name>-shear.<ext> and <name>-moment.<ext>. It returns the written paths.
func ExportBeamDiagrams(data BeamDiagramData, filename string) ([]string, error) {
	if len(data.X) == 0 || len(data.X) != len(data.Shear) || len(data.X) != len(data.Moment) {
		return nil, fmt.Errorf("beam diagram data is empty or inconsistent")
	}

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".png"
	}
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	diagrams := []struct {
		suffix, title, label string
		values               []float64
	}{
		{"-shear", "Shear Diagram", "Shear Force (kN)", data.Shear},
		{"-moment", "Moment Diagram", "Moment (kNm)", data.Moment},
	}

	var written []string
	for _, d := range diagrams {
		p := plot.New()
		p.Title.Text = d.title
		p.X.Label.Text = "Length (m)"
		p.Y.Label.Text = d.label
		p.Add(plotter.NewGrid())

		pts := make(plotter.XYs, len(data.X))
		for i := range data.X {
			pts[i] = plotter.XY{X: data.X[i], Y: d.values[i]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return written, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 255, A: 255}
		p.Add(line)

		name := base + d.suffix + ext
		if err := save(p, 16*vg.Inch/2, 9*vg.Inch/2, name); err != nil {
			return written, err
		}
		written = append(written, name)
	}

	return written, nil
}

// save writes the plot; the format follows the extension (png, svg, pdf)
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
