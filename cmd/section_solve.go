package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcx/internal/capacity"
	"github.com/alexiusacademia/gorcx/internal/material"
)

var (
	solvePlane strainPlane
	solveLoad  float64
	solveLoads material.Loads
	solveAll   bool
)

var sectionSolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Neutral axis depth for a target axial load",
	Long: `Find the neutral axis depth at which the section carries a target
axial force (compression positive) and report the moments that go
with it.

The target is either given directly with --load, or built from
unfactored axial loads with the ACI 318 / NSCP strength combinations,
in which case the governing (largest) factored load is used.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  gorcx section solve -f column.yaml --load 250000
  gorcx section solve -f column.yaml --model pca --dead 120000 --live 80000
  gorcx section solve -f column.yaml --dead 120000 --live 80000 --wind 30000 --all`,
	RunE: runSectionSolve,
}

func init() {
	sectionCmd.AddCommand(sectionSolveCmd)

	solvePlane.register(sectionSolveCmd.Flags())
	sectionSolveCmd.MarkFlagRequired("file")

	sectionSolveCmd.Flags().Float64VarP(&solveLoad, "load", "P", 0, "Target axial force, compression positive")
	sectionSolveCmd.Flags().Float64VarP(&solveLoads.Dead, "dead", "d", 0, "Axial force due to dead load")
	sectionSolveCmd.Flags().Float64VarP(&solveLoads.Live, "live", "l", 0, "Axial force due to live load")
	sectionSolveCmd.Flags().Float64VarP(&solveLoads.Roof, "roof", "r", 0, "Axial force due to roof live load")
	sectionSolveCmd.Flags().Float64VarP(&solveLoads.Wind, "wind", "w", 0, "Axial force due to wind load")
	sectionSolveCmd.Flags().Float64VarP(&solveLoads.Earthquake, "earthquake", "e", 0, "Axial force due to earthquake load")
	sectionSolveCmd.Flags().Float64VarP(&solveLoads.Rain, "rain", "R", 0, "Axial force due to rain load")
	sectionSolveCmd.Flags().BoolVarP(&solveAll, "all", "a", false, "Solve every load combination")
}

func runSectionSolve(cmd *cobra.Command, args []string) error {
	sec, in, err := solvePlane.load()
	if err != nil {
		return err
	}
	u := sec.Units

	combos := cmd.Flags().Changed("dead") || cmd.Flags().Changed("live") || cmd.Flags().Changed("roof") ||
		cmd.Flags().Changed("wind") || cmd.Flags().Changed("earthquake") || cmd.Flags().Changed("rain")

	if combos && solveAll {
		fmt.Println()
		fmt.Println("LOAD COMBINATIONS:")
		fmt.Println(rule)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Combo\tDescription\tPu (%s)\tc (%s)\tMx (%s)\tφ\n", u.Force(), u.Length(), u.Moment())
		fmt.Fprintf(w, "  ─────\t───────────\t──\t─\t──\t─\n")
		for _, lc := range material.LoadCombinations {
			pu := lc.Factored(solveLoads)
			res, err := capacity.SolveDepth(sec, in, pu)
			if errors.Is(err, capacity.ErrNoSolution) {
				fmt.Fprintf(w, "  %s\t%s\t%.1f\t-\t-\t-\n", lc.ID, lc.Description, pu)
				continue
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %s\t%s\t%.1f\t%.4f\t%.1f\t%.3f\n", lc.ID, lc.Description, pu, res.Depth, res.Total.Mx, res.Phi)
		}
		w.Flush()
		fmt.Println()
		return nil
	}

	target := solveLoad
	if combos {
		var lc material.LoadCombination
		target, lc = material.Governing(solveLoads, material.LoadCombinations)
		fmt.Printf("\n  Governing combination %s: %s, Pu = %.2f %s\n", lc.ID, lc.Description, target, u.Force())
	}

	res, err := capacity.SolveDepth(sec, in, target)
	if err != nil {
		return err
	}
	fmt.Printf("\n  Target P = %.2f %s reached at c = %.4f %s\n", target, u.Force(), res.Depth, u.Length())
	printResult(res)
	return nil
}
