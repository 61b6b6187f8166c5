package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .tailship.yaml config file",
	Long:  `Create a .tailship.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".tailship.yaml"); err == nil && !force {
			return fmt.Errorf(".tailship.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".tailship.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .tailship.yaml")
		return nil
	},
}

const defaultConfig = `# tailship configuration
# Docs: https://github.com/yacobolo/tailship

# Shared settings
dir: .
quiet: false

# Install settings
install:
  version: ""          # v3 | v4 (prompted when empty)
  skip-install: false

# Doctor settings
doctor:
  paths:
    - "layout/*.liquid"
    - "templates/**/*.liquid"
    - "sections/**/*.liquid"
    - "snippets/**/*.liquid"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
