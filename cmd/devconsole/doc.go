package main

import (
	"github.com/aretw0/devconsole/internal/cli"
	"github.com/spf13/cobra"
)

var docCmd = &cobra.Command{
	Use:   "doc [manifest]",
	Short: "Print the command reference of a manifest",
	Long:  `Renders every property and command of the manifest, built-ins included, as a Markdown reference.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Manifest
		if len(args) > 0 {
			path = args[0]
		}

		raw, _ := cmd.Flags().GetBool("raw")
		style, _ := cmd.Flags().GetString("style")
		width, _ := cmd.Flags().GetInt("width")

		return cli.Doc(cmd.Context(), path, cfg.Tools, cmd.OutOrStdout(), cli.DocOptions{
			Raw:   raw,
			Style: style,
			Width: width,
		})
	},
}

func init() {
	rootCmd.AddCommand(docCmd)

	docCmd.Flags().Bool("raw", false, "Print markdown without terminal rendering")
	docCmd.Flags().String("style", "", "glamour style (dark, light, notty; default: auto)")
	docCmd.Flags().Int("width", 0, "wrap width (default: 80)")
}
