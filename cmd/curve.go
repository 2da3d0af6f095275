package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcx/internal/capacity"
	"github.com/alexiusacademia/gorcx/internal/diagram"
	"github.com/alexiusacademia/gorcx/internal/material"
	"github.com/alexiusacademia/gorcx/internal/section"
	"github.com/alexiusacademia/gorcx/internal/stressstrain"
)

var (
	curveModel  string
	curveFc     float64
	curveFy     float64
	curvePoints int
	curveOutput string
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Plot a stress-strain law",
	Long: `Plot the stress-strain law used by a concrete model, or the
bilinear steel law, in the terminal and optionally to an image.

Concrete is sampled from zero to its ultimate strain; steel from
twice the yield strain in tension to twice in compression.

Examples:
  gorcx curve --model ec2 --fc 4000
  gorcx curve --model collins --units Metric --fc 35 -o collins.png
  gorcx curve --model steel --fy 60000`,
	RunE: runCurve,
}

func init() {
	rootCmd.AddCommand(curveCmd)

	curveCmd.Flags().StringVar(&curveModel, "model", "ec2", "Law: ec2, pca, whitney, desayi, collins, steel")
	curveCmd.Flags().Float64Var(&curveFc, "fc", 0, "Concrete strength f'c (default 4000 psi or 28 MPa)")
	curveCmd.Flags().Float64Var(&curveFy, "fy", 0, "Steel yield strength fy (default 60000 psi or 420 MPa)")
	curveCmd.Flags().IntVar(&curvePoints, "points", 60, "Number of samples")
	curveCmd.Flags().StringVarP(&curveOutput, "output", "o", "", "Export the curve to file (png, svg, pdf)")
}

func runCurve(cmd *cobra.Command, args []string) error {
	u := cfg.Units
	fc, fy := curveFc, curveFy
	if fc <= 0 {
		fc = 4000
		if u == material.Metric {
			fc = 28
		}
	}
	if fy <= 0 {
		fy = 60000
		if u == material.Metric {
			fy = 420
		}
	}

	var law stressstrain.Law
	var lo, hi float64
	if curveModel == "steel" {
		es := u.SteelModulus()
		law = stressstrain.SteelLaw{Fy: fy, Ey: fy / es, Es: es}
		hi = law.UltimateStrain()
		lo = -hi
	} else {
		// A unit square carries the material values into the model parameters.
		sec := &section.Section{Units: u, Fc: fc, Fy: fy, Shapes: []section.Shape{section.Rectangle(1, 1)}}
		if err := sec.Recompute(); err != nil {
			return err
		}
		params, err := capacity.ParamsFromSection(sec, cfg.Bands)
		if err != nil {
			return err
		}
		m, err := capacity.NewModel(curveModel, params)
		if err != nil {
			return err
		}
		law = m
		hi = m.UltimateStrain()
	}

	pts := stressstrain.Sample(law, lo, hi, curvePoints)
	caption := fmt.Sprintf("%s, stress in %s", law.Name(), u.Stress())
	fmt.Println()
	fmt.Println(diagram.DrawCurve(pts, caption))
	fmt.Println()

	if curveOutput != "" {
		path, err := diagram.ExportCurve(pts, law.Name()+" stress-strain", u.Stress(), curveOutput)
		if err != nil {
			return fmt.Errorf("exporting curve: %w", err)
		}
		fmt.Printf("  ✓ Curve exported to: %s\n", path)
	}
	return nil
}
