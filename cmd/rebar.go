package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcx/internal/material"
)

var (
	rebarSize    int
	rebarConvert bool
)

var rebarCmd = &cobra.Command{
	Use:   "rebar",
	Short: "ASTM reinforcing bar table",
	Long: `List the ASTM A615 bar sizes of a unit system, or look up one size
and optionally its equivalent in the other unit system.

Examples:
  gorcx rebar
  gorcx rebar --units Metric --size 25
  gorcx rebar --size 8 --convert`,
	RunE: runRebar,
}

func init() {
	rootCmd.AddCommand(rebarCmd)

	rebarCmd.Flags().IntVarP(&rebarSize, "size", "s", 0, "Bar size to look up")
	rebarCmd.Flags().BoolVar(&rebarConvert, "convert", false, "Also show the equivalent bar in the other unit system")
}

func runRebar(cmd *cobra.Command, args []string) error {
	u := cfg.Units

	var bars []material.Bar
	if rebarSize > 0 {
		b, err := material.LookupBar(u, rebarSize)
		if err != nil {
			return err
		}
		bars = append(bars, b)
		if rebarConvert {
			other, err := b.Convert(otherUnits(u))
			if err != nil {
				return err
			}
			bars = append(bars, other)
		}
	} else {
		sizes, err := material.Sizes(u)
		if err != nil {
			return err
		}
		for _, s := range sizes {
			b, err := material.LookupBar(u, s)
			if err != nil {
				return err
			}
			bars = append(bars, b)
		}
	}

	fmt.Println()
	fmt.Println("ASTM REINFORCING BARS:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Size\tDiameter\tArea\tWeight\tUnits\n")
	fmt.Fprintf(w, "  ────\t────────\t────\t──────\t─────\n")
	for _, b := range bars {
		weight := "lb/ft"
		if b.Units == material.Metric {
			weight = "kg/m"
		}
		L := b.Units.Length()
		fmt.Fprintf(w, "  #%d\t%.3f %s\t%.2f %s²\t%.3f %s\t%s\n", b.Size, b.Diameter, L, b.Area, L, b.Weight, weight, b.Units)
	}
	w.Flush()
	fmt.Println()
	return nil
}

func otherUnits(u material.Units) material.Units {
	if u == material.Metric {
		return material.Imperial
	}
	return material.Metric
}
