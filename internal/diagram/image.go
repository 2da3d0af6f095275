package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gorcx/internal/stressstrain"
)

var (
	blockFill   = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	blockEdge   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	naColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	steelColor  = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	tensionBar  = color.RGBA{R: 200, G: 120, B: 40, A: 255}
	curveColor  = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	bandColor   = color.Gray{Y: 150}
	voidOutline = color.Gray{Y: 90}
)

// Outline is one polygon of the section in the plot axes.
type Outline struct {
	Vertices []r2.Vec
	Void     bool
}

// BarMark is a reinforcing bar with its strain, compression positive.
type BarMark struct {
	Position r2.Vec
	Strain   float64
}

// PlotData holds the section and stress block to draw in the bending axes.
type PlotData struct {
	Title      string
	Outlines   []Outline
	Bars       []BarMark
	Yna        float64
	Ymax       float64
	Bounds     []float64 // band bounds of the stress block
	Resultant  *r2.Vec   // point of application of the net force, if defined
	LengthUnit string
}

// ExportStressBlock exports the section with its compression zone, band
// bounds, neutral axis and bars to an image file. It returns the path
// written.
func ExportStressBlock(data PlotData, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Stress Block"
	}
	p.X.Label.Text = fmt.Sprintf("x (%s)", data.LengthUnit)
	p.Y.Label.Text = fmt.Sprintf("y (%s)", data.LengthUnit)

	var all []r2.Vec
	for _, o := range data.Outlines {
		all = append(all, o.Vertices...)
	}
	if len(all) == 0 {
		return "", fmt.Errorf("nothing to draw")
	}
	minX, maxX := all[0].X, all[0].X
	for _, v := range all {
		minX = min(minX, v.X)
		maxX = max(maxX, v.X)
	}
	margin := 0.1 * (maxX - minX)

	// Compression zone first, voids punched out in white
	for _, o := range data.Outlines {
		pts := clipAbove(o.Vertices, data.Yna)
		if len(pts) < 3 {
			continue
		}
		block, err := plotter.NewPolygon(pts)
		if err != nil {
			return "", err
		}
		if o.Void {
			block.Color = color.White
			block.LineStyle.Width = 0
		} else {
			block.Color = blockFill
			block.LineStyle.Color = blockEdge
		}
		p.Add(block)
	}

	for _, o := range data.Outlines {
		line, err := plotter.NewLine(closedXYs(o.Vertices))
		if err != nil {
			return "", err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		if o.Void {
			line.LineStyle.Width = vg.Points(1.5)
			line.LineStyle.Color = voidOutline
		}
		p.Add(line)
	}

	// Band bounds inside the compression zone
	for _, y := range data.Bounds {
		if y <= data.Yna || y >= data.Ymax {
			continue
		}
		l, err := plotter.NewLine(plotter.XYs{{X: minX, Y: y}, {X: maxX, Y: y}})
		if err != nil {
			return "", err
		}
		l.LineStyle.Width = vg.Points(0.5)
		l.LineStyle.Color = bandColor
		l.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(l)
	}

	// Neutral axis line
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: minX - margin, Y: data.Yna},
		{X: maxX + margin, Y: data.Yna},
	})
	if err != nil {
		return "", err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = naColor
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	var comp, tens plotter.XYs
	for _, b := range data.Bars {
		xy := plotter.XY{X: b.Position.X, Y: b.Position.Y}
		if b.Strain >= 0 {
			comp = append(comp, xy)
		} else {
			tens = append(tens, xy)
		}
	}
	for _, set := range []struct {
		pts plotter.XYs
		c   color.Color
	}{{comp, steelColor}, {tens, tensionBar}} {
		if len(set.pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(set.pts)
		if err != nil {
			return "", err
		}
		s.GlyphStyle.Color = set.c
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
	}

	labels := plotter.XYLabels{
		XYs:    []plotter.XY{{X: maxX + margin, Y: data.Yna}},
		Labels: []string{"N.A."},
	}
	if data.Resultant != nil {
		r, err := plotter.NewScatter(plotter.XYs{{X: data.Resultant.X, Y: data.Resultant.Y}})
		if err != nil {
			return "", err
		}
		r.GlyphStyle.Color = naColor
		r.GlyphStyle.Radius = vg.Points(4)
		r.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(r)
		labels.XYs = append(labels.XYs, plotter.XY{X: data.Resultant.X, Y: data.Resultant.Y})
		labels.Labels = append(labels.Labels, "  P")
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return "", err
	}
	p.Add(l)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportCurve exports a stress-strain curve.
func ExportCurve(points []stressstrain.Point, title, stressUnit, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = fmt.Sprintf("Stress (%s)", stressUnit)

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.Strain, Y: pt.Stress}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return "", err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = curveColor
	p.Add(line)
	p.Add(plotter.NewGrid())

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportInteraction exports a moment-axial interaction curve. Each point
// has the moment in X and the axial force in Y.
func ExportInteraction(points []r2.Vec, title, forceUnit, momentUnit, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = fmt.Sprintf("M (%s)", momentUnit)
	p.Y.Label.Text = fmt.Sprintf("P (%s)", forceUnit)

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	line, pts, err := plotter.NewLinePoints(xys)
	if err != nil {
		return "", err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = blockEdge
	pts.GlyphStyle.Radius = vg.Points(2)
	pts.GlyphStyle.Color = blockEdge
	p.Add(line, pts, plotter.NewGrid())

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// save writes the plot in the format named by the extension, PNG when there
// is none, creating the directory if needed.
func save(p *plot.Plot, width, height vg.Length, filename string) (string, error) {
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff":
	default:
		filename += ".png"
	}
	return filename, p.Save(width, height, filename)
}

func closedXYs(vs []r2.Vec) plotter.XYs {
	xys := make(plotter.XYs, 0, len(vs)+1)
	for _, v := range vs {
		xys = append(xys, plotter.XY{X: v.X, Y: v.Y})
	}
	if len(vs) > 0 && vs[0] != vs[len(vs)-1] {
		xys = append(xys, plotter.XY{X: vs[0].X, Y: vs[0].Y})
	}
	return xys
}

// clipAbove clips a polygon at the line y = clipY and returns the vertices
// of the part above it.
func clipAbove(vertices []r2.Vec, clipY float64) plotter.XYs {
	if len(vertices) < 3 {
		return nil
	}

	var result plotter.XYs
	n := len(vertices)
	for i := 0; i < n; i++ {
		curr := vertices[i]
		next := vertices[(i+1)%n]

		currAbove := curr.Y >= clipY
		nextAbove := next.Y >= clipY

		if currAbove {
			result = append(result, plotter.XY{X: curr.X, Y: curr.Y})
		}
		if currAbove != nextAbove {
			t := (clipY - curr.Y) / (next.Y - curr.Y)
			result = append(result, plotter.XY{X: curr.X + t*(next.X-curr.X), Y: clipY})
		}
	}
	return result
}
