// Package diagram renders sections, stress blocks and stress-strain curves,
// as terminal text or as image files.
package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gorcx/internal/stressstrain"
)

// Layer is one horizontal slice of the section for the text diagrams.
type Layer struct {
	Y      float64 // elevation of the slice
	Width  float64 // net concrete width at Y
	Strain float64
	Stress float64 // concrete stress at Strain
	Bar    bool    // a bar sits in this slice
}

// SectionDiagramData holds data for drawing the section with its strain and
// stress profiles. Layers run from the top fibre downwards.
type SectionDiagramData struct {
	Layers []Layer

	Depth      float64 // neutral axis depth c
	Eu         float64 // strain at the top fibre
	EpsilonT   float64 // extreme tension bar strain
	EpsilonY   float64 // yield strain
	StressUnit string
	LengthUnit string
}

// DrawASCIISectionDiagram draws the section width profile with the
// compression zone shaded, next to the strain and stress at each layer.
func DrawASCIISectionDiagram(data SectionDiagramData) string {
	var sb strings.Builder
	if len(data.Layers) == 0 {
		return ""
	}

	const widthChars = 30
	const stressChars = 20

	widths := make([]float64, len(data.Layers))
	stresses := make([]float64, len(data.Layers))
	for i, l := range data.Layers {
		widths[i] = l.Width
		stresses[i] = l.Stress
	}
	maxWidth := floats.Max(widths)
	maxStress := floats.Max(stresses)

	naDrawn := false
	sb.WriteString("\n")
	sb.WriteString("  SECTION                           STRAIN        STRESS\n")
	sb.WriteString("  ───────                           ──────        ──────\n")

	for _, l := range data.Layers {
		n := 0
		if maxWidth > 0 {
			n = int(math.Round(l.Width / maxWidth * widthChars))
		}
		pad := (widthChars - n) / 2

		fill := " "
		if l.Strain > 0 {
			fill = "░"
		}
		body := strings.Repeat(fill, n)
		if l.Bar && n >= 4 {
			body = strings.Repeat(fill, n/2-1) + "●●" + strings.Repeat(fill, n-n/2-1)
		}
		sb.WriteString("  " + strings.Repeat(" ", pad) + "│" + body + "│" + strings.Repeat(" ", widthChars-n-pad))

		marker := "   "
		if !naDrawn && l.Strain <= 0 {
			marker = "◄NA"
			naDrawn = true
		}
		sb.WriteString(fmt.Sprintf(" %s  %+.5f", marker, l.Strain))

		bar := 0
		if maxStress > 0 {
			bar = int(math.Round(l.Stress / maxStress * stressChars))
		}
		sb.WriteString("  " + strings.Repeat("█", bar))
		if l.Stress > 0 && l.Stress == maxStress {
			sb.WriteString(fmt.Sprintf(" %.1f %s", l.Stress, data.StressUnit))
		}
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Compression zone\n")
	sb.WriteString("  ●●  = Reinforcement\n")
	sb.WriteString(fmt.Sprintf("  NA  = Neutral axis at c = %.3f %s from the top\n", data.Depth, data.LengthUnit))

	return sb.String()
}

// DrawStrainDiagram creates an ASCII strain distribution diagram
func DrawStrainDiagram(data SectionDiagramData) string {
	var sb strings.Builder
	if len(data.Layers) == 0 {
		return ""
	}

	const width = 40

	maxStrain := math.Max(data.Eu, data.EpsilonT)
	for _, l := range data.Layers {
		maxStrain = math.Max(maxStrain, math.Abs(l.Strain))
	}
	scale := float64(width-10) / maxStrain

	sb.WriteString("\n")
	sb.WriteString("  STRAIN DISTRIBUTION DIAGRAM\n")
	sb.WriteString("  ───────────────────────────\n\n")

	last := len(data.Layers) - 1
	naDrawn := false
	for i, l := range data.Layers {
		barLen := int(math.Abs(l.Strain) * scale)
		glyph := "█"
		if l.Strain < 0 {
			glyph = "▒"
		}

		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  Top    │%s▶ εcu=%.4f\n", strings.Repeat(glyph, barLen), data.Eu))
		case !naDrawn && l.Strain <= 0:
			naDrawn = true
			sb.WriteString(fmt.Sprintf("  N.A.   ├%s (ε=0)\n", strings.Repeat("─", 5)))
		case l.Bar:
			mark := ""
			if math.Abs(l.Strain) >= data.EpsilonY {
				mark = " ✓yields"
			}
			sb.WriteString(fmt.Sprintf("  Steel  │%s▶ ε=%.4f%s\n", strings.Repeat(glyph, barLen), l.Strain, mark))
		case i == last:
			sb.WriteString(fmt.Sprintf("  Bottom │%s\n", strings.Repeat(glyph, barLen)))
		default:
			sb.WriteString(fmt.Sprintf("         │%s\n", strings.Repeat(glyph, barLen)))
		}
	}

	// Yield strain reference
	yieldBar := int(data.EpsilonY * scale)
	sb.WriteString(fmt.Sprintf("\n  εy = %.4f %s (yield strain)\n", data.EpsilonY, strings.Repeat("─", yieldBar)+"┤"))

	return sb.String()
}

// DrawCurve plots a sampled stress-strain law in the terminal.
func DrawCurve(points []stressstrain.Point, caption string) string {
	if len(points) == 0 {
		return ""
	}
	stresses := make([]float64, len(points))
	for i, p := range points {
		stresses[i] = p.Stress
	}
	first, last := points[0].Strain, points[len(points)-1].Strain
	return asciigraph.Plot(stresses,
		asciigraph.Height(15),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("%s  (strain %.4f to %.4f)", caption, first, last)),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
