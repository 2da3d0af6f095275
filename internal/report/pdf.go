package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gorcx/internal/capacity"
	"github.com/alexiusacademia/gorcx/internal/material"
)

// Analysis is the content of an analysis report.
type Analysis struct {
	Title   string
	Project string
	Notes   string
	Units   material.Units
	Result  *capacity.Result

	// Image is an optional PNG or JPEG diagram placed after the tables.
	Image string
}

// WriteAnalysisPDF writes a one-section analysis report: inputs, totals,
// band resultants and bar results.
func WriteAnalysisPDF(w io.Writer, in Analysis) error {
	if in.Result == nil {
		return fmt.Errorf("report: no result")
	}
	if in.Title == "" {
		in.Title = "Section Capacity Report"
	}
	res := in.Result
	u := in.Units

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if in.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
		pdf.Ln(6)
	}
	if res.Section != nil && res.Section.Name != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Section: %s", res.Section.Name))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	heading(pdf, "Strain plane")
	rows(pdf, [][2]string{
		{"Concrete model", res.Model},
		{"Neutral axis depth c", fmt.Sprintf("%.4f %s", res.Depth, u.Length())},
		{"Neutral axis elevation", fmt.Sprintf("%.4f %s", res.Yna, u.Length())},
		{"Extreme compression fibre", fmt.Sprintf("%.4f %s", res.Ymax, u.Length())},
	})

	heading(pdf, "Resultants")
	rows(pdf, [][2]string{
		{"Concrete P", fmt.Sprintf("%.2f %s", res.Concrete.P, u.Force())},
		{"Steel P", fmt.Sprintf("%.2f %s", res.Steel.P, u.Force())},
		{"Total P", fmt.Sprintf("%.2f %s", res.Total.P, u.Force())},
		{"Total Mx", fmt.Sprintf("%.2f %s", res.Total.Mx, u.Moment())},
		{"Total My", fmt.Sprintf("%.2f %s", res.Total.My, u.Moment())},
		{"Point of application", centroidText(res, u)},
		{"Strength reduction", fmt.Sprintf("phi = %.3f (%s)", res.Phi, res.Classification)},
	})

	if len(res.Bands) > 0 {
		heading(pdf, "Stress block bands")
		table(pdf, []string{"Lo", "Hi", "Regime", "P", "Mx", "My"}, func(add func(...string)) {
			for _, b := range res.Bands {
				add(f3(b.Lo), f3(b.Hi), b.Regime, f2(b.Resultant.P), f2(b.Resultant.Mx), f2(b.Resultant.My))
			}
		})
	}

	if len(res.Bars) > 0 {
		heading(pdf, "Reinforcement")
		table(pdf, []string{"x", "y", "Area", "Strain", "Stress", "Force"}, func(add func(...string)) {
			for _, b := range res.Bars {
				add(f3(b.Local.X), f3(b.Local.Y), f3(b.Bar.Area), fmt.Sprintf("%.5f", b.Strain), f2(b.Stress), f2(b.Force))
			}
		})
	}

	if in.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, in.Notes, "", "L", false)
	}

	if in.Image != "" {
		pdf.AddPage()
		pdf.ImageOptions(in.Image, 10, 20, 190, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	return pdf.Output(w)
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func rows(pdf *gofpdf.Fpdf, kv [][2]string) {
	for _, r := range kv {
		pdf.CellFormat(70, 6, r[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, r[1], "", 1, "L", false, 0, "")
	}
}

func table(pdf *gofpdf.Fpdf, header []string, body func(add func(...string))) {
	width := 190.0 / float64(len(header))
	pdf.SetFont("Helvetica", "B", 9)
	for _, h := range header {
		pdf.CellFormat(width, 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	body(func(cells ...string) {
		for _, c := range cells {
			pdf.CellFormat(width, 6, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	})
}

func centroidText(res *capacity.Result, u material.Units) string {
	if res.CentroidErr != nil {
		return res.CentroidErr.Error()
	}
	return fmt.Sprintf("(%.4f, %.4f) %s", res.Centroid.X, res.Centroid.Y, u.Length())
}

func f2(v float64) string { return fmt.Sprintf("%.2f", v) }
func f3(v float64) string { return fmt.Sprintf("%.3f", v) }
