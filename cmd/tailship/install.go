package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tailship"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install Tailwind CSS tooling into the theme",
	Long: `Validate the theme, ensure package.json and its tailwind build script,
write the Tailwind config and CSS entry point, insert the stylesheet tag
into layout/theme.liquid, reconcile the ignore files, and run npm install.
Safe to re-run; every step is idempotent.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runInstall,
}

func init() {
	f := installCmd.Flags()
	f.String("version", "", "Tailwind release to install: v3|v4 (prompted when empty)")
	f.Bool("skip-install", false, "Write all files but skip npm install")
}

func runInstall(_ *cobra.Command, _ []string) error {
	cfg := buildInstallConfig()

	if cfg.CSSVersion == "" {
		v, err := tailship.PromptVersion(os.Stdin, os.Stderr)
		if err != nil {
			return err
		}
		cfg.CSSVersion = v
	}

	result, err := tailship.Install(cfg)
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		fmt.Printf("Tailwind CSS %s set up in %s\n", result.Version, cfg.Dir)
		for _, step := range result.Steps {
			fmt.Printf("  %-16s %s\n", step.Name, step.Status)
		}
		for _, w := range result.Warnings {
			fmt.Printf("  Warning: %s\n", w)
		}
		fmt.Printf("\nRun `npm run %s` to start the watcher.\n", tailship.ScriptName)
	}
	return nil
}
