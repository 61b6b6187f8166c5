package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tailship/internal/doctor"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the theme's Tailwind setup without changing it",
	Long: `Inspect the theme and report what is missing or duplicated: the
package.json tailwind script, the CSS entry point, the stylesheet tag in
layout/theme.liquid, and the ignore-file coverage. Nothing is written.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := buildDoctorConfig()

		result, err := doctor.Run(cfg)
		if err != nil {
			return fmt.Errorf("doctor failed: %w", err)
		}

		quiet := getBoolWithFallback("quiet", "quiet", false)
		if !quiet {
			asJSON, _ := cmd.Flags().GetBool("json")
			if err := doctor.WriteOutput(os.Stdout, result, cfg, asJSON); err != nil {
				return err
			}
		}

		// Warnings alone do not fail the check.
		if result.ErrorCount > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	f := doctorCmd.Flags()
	f.StringSlice("paths", doctor.DefaultScanPaths, "Glob patterns for Liquid files to inventory")
	f.Bool("json", false, "Emit machine-readable JSON")
}
