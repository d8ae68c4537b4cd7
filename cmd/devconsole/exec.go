package main

import (
	"github.com/aretw0/devconsole/internal/cli"
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec <manifest> <command> [args...]",
	Short: "Run one command and print its output",
	Long:  `Loads the manifest, dispatches a single command with its arguments and prints the result. The exit status is 1 if the command wrote an error.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Manifest = args[0]
		return cli.Exec(cmd.Context(), cfg, args[1], args[2:], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().String("redis", "", "redis address for property values (default: in memory)")
	// Everything after the manifest belongs to the console command, including dashes.
	execCmd.Flags().SetInterspersed(false)
}
