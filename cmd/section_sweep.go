package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/alexiusacademia/gorcx/internal/capacity"
	"github.com/alexiusacademia/gorcx/internal/diagram"
	"github.com/alexiusacademia/gorcx/internal/geometry"
	"github.com/alexiusacademia/gorcx/internal/logger"
	"github.com/alexiusacademia/gorcx/internal/report"
)

var (
	sweepPlane     strainPlane
	sweepSteps     int
	sweepMaxFactor float64
	sweepWorkers   int
	sweepDepths    string
	sweepXLSX      string
	sweepPlot      string
	sweepPlastic   bool
)

var sectionSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Interaction points over a range of neutral axis depths",
	Long: `Analyze the section for many neutral axis depths in parallel and
list the axial force and moments of each, nominal and reduced by φ.

Depths are spread evenly from 2% of the section height to
--max-factor heights, or read from the first column of a spreadsheet
with --depths.

Examples:
  gorcx section sweep -f column.yaml --steps 40
  gorcx section sweep -f column.yaml --model ec2 --xlsx sweep.xlsx --plot pm.png
  gorcx section sweep -f column.yaml --depths depths.xlsx --plastic`,
	RunE: runSectionSweep,
}

func init() {
	sectionCmd.AddCommand(sectionSweepCmd)

	sweepPlane.register(sectionSweepCmd.Flags())
	sectionSweepCmd.MarkFlagRequired("file")

	sectionSweepCmd.Flags().IntVarP(&sweepSteps, "steps", "n", 25, "Number of depths")
	sectionSweepCmd.Flags().Float64Var(&sweepMaxFactor, "max-factor", 1.5, "Largest depth as a multiple of the section height")
	sectionSweepCmd.Flags().IntVar(&sweepWorkers, "workers", 0, "Parallel workers (default from GORCX_WORKERS)")
	sectionSweepCmd.Flags().StringVar(&sweepDepths, "depths", "", "Read depths from an XLSX file instead")
	sectionSweepCmd.Flags().StringVar(&sweepXLSX, "xlsx", "", "Write the points to an XLSX file")
	sectionSweepCmd.Flags().StringVar(&sweepPlot, "plot", "", "Export the interaction curve (png, svg, pdf)")
	sectionSweepCmd.Flags().BoolVar(&sweepPlastic, "plastic", false, "Take moments about the plastic centroid")
}

func runSectionSweep(cmd *cobra.Command, args []string) error {
	sec, in, err := sweepPlane.load()
	if err != nil {
		return err
	}
	u := sec.Units

	depths := capacity.DepthRange(sec, sweepSteps, sweepMaxFactor)
	if sweepDepths != "" {
		f, err := os.Open(sweepDepths)
		if err != nil {
			return err
		}
		depths, err = report.ReadDepths(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("reading depths: %w", err)
		}
	}

	workers := sweepWorkers
	if workers <= 0 {
		workers = cfg.Workers
	}
	logger.L().Info("sweeping", "depths", len(depths), "workers", workers, "model", in.Model.Name())

	results, err := capacity.Sweep(sec, in, depths, workers)
	if err != nil {
		return err
	}

	// Moments about the local origin unless the plastic centroid is asked for.
	var pivot r2.Vec
	if sweepPlastic {
		pc, _, err := capacity.SectionPlasticCentroid(sec)
		if err != nil {
			return fmt.Errorf("plastic centroid: %w", err)
		}
		pivot = geometry.Transform([]r2.Vec{pc}, in.Origin, in.Angle)[0]
		fmt.Printf("\n  Moments about the plastic centroid (%.4f, %.4f) %s\n", pc.X, pc.Y, u.Length())
	}
	points := capacity.Interaction(results, pivot.X, pivot.Y)

	fmt.Println()
	fmt.Println("INTERACTION POINTS:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  c (%s)\tP (%s)\tMx (%s)\tMy (%s)\tφ\tφP\tφMx\n", u.Length(), u.Force(), u.Moment(), u.Moment())
	fmt.Fprintf(w, "  ─\t─\t──\t──\t─\t──\t───\n")
	for _, p := range points {
		fmt.Fprintf(w, "  %.4f\t%.1f\t%.1f\t%.1f\t%.3f\t%.1f\t%.1f\n", p.Depth, p.P, p.Mx, p.My, p.Phi, p.Phi*p.P, p.Phi*p.Mx)
	}
	w.Flush()
	fmt.Println()

	if sweepXLSX != "" {
		f, err := os.Create(sweepXLSX)
		if err != nil {
			return err
		}
		defer f.Close()
		title := fmt.Sprintf("%s sweep, %s model", sec.Name, in.Model.Name())
		if err := report.WriteSweepXLSX(f, title, u, points); err != nil {
			return fmt.Errorf("writing spreadsheet: %w", err)
		}
		fmt.Printf("  ✓ Points written to: %s\n", sweepXLSX)
	}

	if sweepPlot != "" {
		curve := make([]r2.Vec, len(points))
		for i, p := range points {
			curve[i] = r2.Vec{X: p.Mx, Y: p.P}
		}
		title := fmt.Sprintf("%s interaction (%s)", sec.Name, in.Model.Name())
		path, err := diagram.ExportInteraction(curve, title, u.Force(), u.Moment(), sweepPlot)
		if err != nil {
			return fmt.Errorf("exporting plot: %w", err)
		}
		fmt.Printf("  ✓ Plot exported to: %s\n", path)
	}
	return nil
}
