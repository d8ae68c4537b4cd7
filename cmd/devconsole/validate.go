package main

import (
	"fmt"

	"github.com/aretw0/devconsole/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [manifest]",
	Short: "Check a manifest for consistency",
	Long:  `Loads the manifest and reports duplicate paths, invalid names, and properties rejecting their own defaults.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Manifest
		if len(args) > 0 {
			path = args[0]
		}

		if err := cli.Validate(cmd.Context(), path, cfg.Tools); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Manifest is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
