package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/devconsole"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of devconsole",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "devconsole version %s\n", strings.TrimSpace(devconsole.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
