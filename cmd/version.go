package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcx/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcx",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Reinforced Concrete Section Capacity Tool")
		fmt.Println("Stress block integration over arbitrary polygonal sections")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
