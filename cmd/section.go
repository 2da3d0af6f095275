package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Polygonal reinforced concrete section analysis",
	Long: `Analyze reinforced concrete sections defined in JSON or YAML files.

A section is any number of solid and void polygons, circles and
individually placed bars. Voids subtract automatically from the
stress block and the section properties.

Subcommands:
  props    - Section properties and plastic centroid
  analyze  - Concrete and steel resultants for a neutral axis depth
  solve    - Neutral axis depth for a target axial load
  sweep    - Interaction points over a range of depths

Example JSON file structure (Imperial/US: in, psi):
{
  "name": "T-Beam Section",
  "units": "Imperial/US",
  "fc": 4000,
  "fy": 60000,
  "shapes": [
    {"name": "web", "vertices": [
      {"x": 0, "y": 0}, {"x": 12, "y": 0}, {"x": 12, "y": 20},
      {"x": 30, "y": 20}, {"x": 30, "y": 24}, {"x": -18, "y": 24},
      {"x": -18, "y": 20}, {"x": 0, "y": 20}, {"x": 0, "y": 0}]},
    {"name": "duct", "role": "void", "vertices": [
      {"x": 5, "y": 8}, {"x": 7, "y": 8}, {"x": 7, "y": 10},
      {"x": 5, "y": 10}, {"x": 5, "y": 8}]}
  ],
  "reinforcement": [
    {"x": 3, "y": 2.5, "size": 9},
    {"x": 9, "y": 2.5, "size": 9}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
