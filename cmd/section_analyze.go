package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcx/internal/capacity"
	"github.com/alexiusacademia/gorcx/internal/diagram"
	"github.com/alexiusacademia/gorcx/internal/logger"
	"github.com/alexiusacademia/gorcx/internal/report"
)

var (
	sectionAnalyzePlane       strainPlane
	sectionAnalyzeDepth       float64
	sectionAnalyzeShowDiagram bool
	sectionAnalyzeExportFile  string
	sectionAnalyzePDFFile     string
)

var sectionAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Resultants of a section for a neutral axis depth",
	Long: `Integrate the concrete stress block and the reinforcement of a
section for one strain plane: the neutral axis at depth c below the
extreme compression fibre, bending about an axis turned by --angle.

Forces are compression positive. Moments are taken about the local
axes, whose origin is the rotation origin (--ox, --oy).

Examples:
  gorcx section analyze --file t-beam.json --depth 4.5
  gorcx section analyze -f column.yaml --model ec2 --depth 200 --angle 30
  gorcx section analyze -f t-beam.json --depth 4.5 --diagram -o block.png --pdf report.pdf`,
	RunE: runSectionAnalyze,
}

func init() {
	sectionCmd.AddCommand(sectionAnalyzeCmd)

	sectionAnalyzePlane.register(sectionAnalyzeCmd.Flags())
	sectionAnalyzeCmd.MarkFlagRequired("file")
	sectionAnalyzeCmd.Flags().Float64VarP(&sectionAnalyzeDepth, "depth", "c", 0, "Neutral axis depth below the extreme compression fibre [required]")
	sectionAnalyzeCmd.MarkFlagRequired("depth")

	// Diagram options
	sectionAnalyzeCmd.Flags().BoolVar(&sectionAnalyzeShowDiagram, "diagram", false, "Show ASCII section and strain diagrams")
	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeExportFile, "output", "o", "", "Export stress block plot to file (png, svg, pdf)")
	sectionAnalyzeCmd.Flags().StringVar(&sectionAnalyzePDFFile, "pdf", "", "Write a PDF analysis report")
}

func runSectionAnalyze(cmd *cobra.Command, args []string) error {
	sec, in, err := sectionAnalyzePlane.load()
	if err != nil {
		return err
	}
	in.Depth = sectionAnalyzeDepth

	res, err := capacity.Analyze(sec, in)
	if err != nil {
		return fmt.Errorf("analyzing section: %w", err)
	}
	printResult(res)

	if sectionAnalyzeShowDiagram {
		data := layers(res, in.Model, 16)
		fmt.Print(diagram.DrawASCIISectionDiagram(data))
		if len(res.Bars) > 0 {
			fmt.Print(diagram.DrawStrainDiagram(data))
		}
		fmt.Println()
	}

	var image string
	if sectionAnalyzeExportFile != "" {
		image, err = diagram.ExportStressBlock(plotData(res), sectionAnalyzeExportFile)
		if err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("  ✓ Diagram exported to: %s\n", image)
	}

	if sectionAnalyzePDFFile != "" {
		f, err := os.Create(sectionAnalyzePDFFile)
		if err != nil {
			return err
		}
		defer f.Close()
		rep := report.Analysis{Project: sec.Name, Units: sec.Units, Result: res}
		if ext := filepath.Ext(image); ext == ".png" || ext == ".jpg" || ext == ".jpeg" {
			rep.Image = image
		}
		if err := report.WriteAnalysisPDF(f, rep); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("  ✓ Report written to: %s\n", sectionAnalyzePDFFile)
	}
	logger.L().Debug("analysis done", "model", res.Model, "c", res.Depth, "P", res.Total.P)
	return nil
}

// printResult prints the resultants of one strain plane.
func printResult(res *capacity.Result) {
	sec := res.Section
	u := sec.Units

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     SECTION ANALYSIS - %s STRESS BLOCK\n", res.Model)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	fmt.Println("MATERIAL PROPERTIES:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  f'c:\t%.2f %s\n", sec.Fc, u.Stress())
	if len(sec.Reinforcement) > 0 {
		fmt.Fprintf(w, "  fy:\t%.2f %s\n", sec.Fy, u.Stress())
		fmt.Fprintf(w, "  Es:\t%.0f %s\n", sec.SteelModulus(), u.Stress())
	}
	w.Flush()
	fmt.Println()

	fmt.Println("NEUTRAL AXIS:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Depth (c):\t%.4f %s\n", res.Depth, u.Length())
	fmt.Fprintf(w, "  Elevation (y_na):\t%.4f %s\n", res.Yna, u.Length())
	fmt.Fprintf(w, "  Top fibre (y_max):\t%.4f %s\n", res.Ymax, u.Length())
	w.Flush()
	fmt.Println()

	fmt.Println("STRESS BLOCK BANDS:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Band\tFrom\tTo\tRegime\tP (%s)\tMx (%s)\n", u.Force(), u.Moment())
	fmt.Fprintf(w, "  ────\t────\t──\t──────\t─────\t──────\n")
	for i, b := range res.Bands {
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%s\t%.2f\t%.2f\n", i+1, b.Lo, b.Hi, b.Regime, b.Resultant.P, b.Resultant.Mx)
	}
	w.Flush()
	fmt.Println()

	if len(res.Bars) > 0 {
		fmt.Println("REINFORCEMENT:")
		fmt.Println(rule)
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Bar\tx\ty\tArea\tStrain\tStress\tForce (%s)\tStatus\n", u.Force())
		fmt.Fprintf(w, "  ───\t─\t─\t────\t──────\t──────\t─────\t──────\n")
		for i, b := range res.Bars {
			status := "Tension"
			if b.Strain >= 0 {
				status = "Compression"
			}
			if b.Yielded {
				status += " (yields)"
			}
			fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.3f\t%.6f\t%.1f\t%.2f\t%s\n",
				i+1, b.Local.X, b.Local.Y, b.Bar.Area, b.Strain, b.Stress, b.Force, status)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("INTERNAL FORCES:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tP (%s)\tMx (%s)\tMy (%s)\n", u.Force(), u.Moment(), u.Moment())
	fmt.Fprintf(w, "  Concrete:\t%.2f\t%.2f\t%.2f\n", res.Concrete.P, res.Concrete.Mx, res.Concrete.My)
	fmt.Fprintf(w, "  Steel:\t%.2f\t%.2f\t%.2f\n", res.Steel.P, res.Steel.Mx, res.Steel.My)
	fmt.Fprintf(w, "  Total:\t%.2f\t%.2f\t%.2f\n", res.Total.P, res.Total.Mx, res.Total.My)
	w.Flush()
	fmt.Println()

	lines := []string{
		fmt.Sprintf("P  = %.2f %s", res.Total.P, u.Force()),
		fmt.Sprintf("Mx = %.2f %s", res.Total.Mx, u.Moment()),
		fmt.Sprintf("My = %.2f %s", res.Total.My, u.Moment()),
	}
	if res.CentroidErr != nil {
		lines = append(lines, "Point of application undefined (P = 0)")
	} else {
		lines = append(lines, fmt.Sprintf("Acting at (%.4f, %.4f) %s", res.Centroid.X, res.Centroid.Y, u.Length()))
	}
	if len(res.Bars) > 0 {
		lines = append(lines,
			fmt.Sprintf("εt = %.6f, %s", res.EpsilonT, res.Classification),
			fmt.Sprintf("φ  = %.3f   φP = %.2f   φMx = %.2f", res.Phi, res.Phi*res.Total.P, res.Phi*res.Total.Mx),
		)
	}
	fmt.Print(diagram.DrawSummaryBox("RESULTANT", lines))
	fmt.Println()
}
