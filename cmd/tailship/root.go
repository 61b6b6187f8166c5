package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailship",
	Short: "Tailwind CSS installer for Shopify themes",
	Long: `Set up Tailwind CSS tooling inside a Shopify theme directory.
Writes the Tailwind config and CSS entry point, adds a tailwind build
script to package.json, inserts the compiled stylesheet tag into
layout/theme.liquid, and reconciles .gitignore and .shopifyignore.`,
	// Default behavior: run install when no subcommand is given.
	// loadConfig must be called here because PreRunE of installCmd is
	// not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runInstall(installCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().String("dir", ".", "Theme directory to operate on")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".tailship.yaml", "Config file path")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
