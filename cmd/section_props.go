package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcx/internal/capacity"
	"github.com/alexiusacademia/gorcx/internal/diagram"
)

var sectionPropsFile string

var sectionPropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Section properties of a polygonal section",
	Long: `Print the geometric properties of a section: area, centroid,
moments of inertia about the global and centroidal axes, section
moduli, radii of gyration, principal axes and the plastic centroid.

Examples:
  gorcx section props --file t-beam.json
  gorcx section props -f column.yaml --units Metric`,
	RunE: runSectionProps,
}

func init() {
	sectionCmd.AddCommand(sectionPropsCmd)

	sectionPropsCmd.Flags().StringVarP(&sectionPropsFile, "file", "f", "", "Path to section JSON or YAML file [required]")
	sectionPropsCmd.MarkFlagRequired("file")
}

func runSectionProps(cmd *cobra.Command, args []string) error {
	sec, err := loadSection(sectionPropsFile)
	if err != nil {
		return err
	}
	p, err := sec.Properties()
	if err != nil {
		return fmt.Errorf("section properties: %w", err)
	}
	L := sec.Units.Length()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Printf("  Units: %s\n", sec.Units)
	fmt.Println()

	fmt.Println("SHAPES:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tRole\tVertices\n")
	for _, poly := range sec.Polygons() {
		fmt.Fprintf(w, "  %s\t%s\t%d\n", poly.Name, poly.Role, len(poly.Vertices))
	}
	w.Flush()
	fmt.Println()

	fmt.Println("GLOBAL AXES:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area:\t%.4f %s²\n", p.Area, L)
	fmt.Fprintf(w, "  Centroid (Cx, Cy):\t(%.4f, %.4f) %s\n", p.Cx, p.Cy, L)
	fmt.Fprintf(w, "  Ix / Iy / Ixy:\t%.4g / %.4g / %.4g %s⁴\n", p.Ix, p.Iy, p.Ixy, L)
	fmt.Fprintf(w, "  Jz:\t%.4g %s⁴\n", p.Jz, L)
	w.Flush()
	fmt.Println()

	fmt.Println("CENTROIDAL AXES:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ixx / Iyy / Ixxyy:\t%.4g / %.4g / %.4g %s⁴\n", p.Ixx, p.Iyy, p.Ixxyy, L)
	fmt.Fprintf(w, "  Jzz:\t%.4g %s⁴\n", p.Jzz, L)
	fmt.Fprintf(w, "  Sxx top / bottom:\t%.4g / %.4g %s³\n", p.SxxTop, p.SxxBottom, L)
	fmt.Fprintf(w, "  Syy right / left:\t%.4g / %.4g %s³\n", p.SyyRight, p.SyyLeft, L)
	fmt.Fprintf(w, "  rxx / ryy / rzz:\t%.4f / %.4f / %.4f %s\n", p.Rxx, p.Ryy, p.Rzz, L)
	fmt.Fprintf(w, "  Iuu / Ivv:\t%.4g / %.4g %s⁴\n", p.Iuu, p.Ivv, L)
	fmt.Fprintf(w, "  Principal angles:\t%.3f° / %.3f°\n", p.Theta1, p.Theta2)
	w.Flush()
	fmt.Println()

	lines := []string{
		fmt.Sprintf("Height x Width  = %.3f x %.3f %s", sec.Height(), sec.Width(), L),
		fmt.Sprintf("Steel area      = %.4f %s²", sec.SteelArea(), L),
	}
	if len(sec.Reinforcement) > 0 && sec.Fy > 0 {
		pc, squash, err := capacity.SectionPlasticCentroid(sec)
		if err != nil {
			lines = append(lines, fmt.Sprintf("Plastic centroid: %v", err))
		} else {
			lines = append(lines,
				fmt.Sprintf("Plastic centroid = (%.4f, %.4f) %s", pc.X, pc.Y, L),
				fmt.Sprintf("Squash load Po   = %.1f %s", squash.P, sec.Units.Force()),
			)
		}
	}
	fmt.Print(diagram.DrawSummaryBox("SUMMARY", lines))
	fmt.Println()
	return nil
}
