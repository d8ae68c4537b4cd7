package main

import (
	"github.com/aretw0/devconsole/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive console",
	Long:  `Loads the manifest and starts an interactive prompt. Type 'help' to list everything, 'exit' to leave.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		quiet, _ := cmd.Flags().GetBool("quiet")

		return cli.RunSession(cfg, cli.RunOptions{
			JSON:  jsonMode,
			Quiet: quiet,
			In:    cmd.InOrStdin(),
			Out:   cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
	runCmd.Flags().String("redis", "", "redis address for property values (default: in memory)")
	runCmd.Flags().String("metrics-addr", "", "serve /metrics and /healthz on this address")

	// 'run' is the default if no command is provided.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
