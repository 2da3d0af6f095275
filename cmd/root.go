package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcx/internal/config"
	"github.com/alexiusacademia/gorcx/internal/logger"
	"github.com/alexiusacademia/gorcx/internal/material"
	"github.com/alexiusacademia/gorcx/internal/version"
)

var (
	cfg config.Config

	unitsFlag    string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "gorcx",
	Short: "Reinforced Concrete Section Capacity Tool",
	Long: `gorcx - Go Reinforced Concrete Cross-section analyser

A CLI tool for the capacity of reinforced concrete sections of any
polygonal shape, with voids, circles and arbitrary bar layouts.

This tool integrates concrete stress blocks exactly over the section
boundary and adds the reinforcement by strain compatibility:
  - EC2 parabola-rectangle and PCA parabolic blocks in closed form
  - ACI (Whitney) equivalent rectangular block
  - Desayi-Krishnan and Collins curves by banded integration
  - Biaxial bending about any axis angle
  - Neutral axis solve for a target axial load
  - Interaction sweeps with spreadsheet and plot output`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if logLevelFlag != "" {
			cfg.LogLevel = logLevelFlag
		}
		logger.Setup(cfg.LogLevel, cfg.LogFormat)
		if unitsFlag != "" {
			u, err := material.ParseUnits(unitsFlag)
			if err != nil {
				return err
			}
			cfg.Units = u
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcx v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Cross-section analyser           ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Stress block integration over arbitrary polygonal sections.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Section properties of solids, voids and circles")
		fmt.Println("    • Concrete and steel resultants for any neutral axis")
		fmt.Println("    • Neutral axis depth for a factored axial load")
		fmt.Println("    • Interaction sweeps exported to XLSX and plots")
		fmt.Println()
		fmt.Println("  Use 'gorcx --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&unitsFlag, "units", "", "Unit system for sections without one: Metric or Imperial/US (default from GORCX_UNITS)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error (default from LOG_LEVEL)")
}
