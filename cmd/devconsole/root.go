package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/devconsole/internal/cli"
	"github.com/aretw0/devconsole/internal/config"
	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagConfig string

	// cfg is resolved by PersistentPreRunE for every subcommand.
	cfg *config.Config
)

// boundFlags maps flag names to the configuration keys they override.
var boundFlags = map[string]string{
	"manifest":     config.KeyManifest,
	"tools":        config.KeyTools,
	"debug":        config.KeyDebug,
	"log-level":    config.KeyLogLevel,
	"redis":        config.KeyRedisAddr,
	"metrics-addr": config.KeyMetricsAddr,
}

var rootCmd = &cobra.Command{
	Use:           "devconsole",
	Short:         "devconsole is an interactive developer console",
	Long:          `devconsole loads properties and commands from a manifest and lets you inspect, change and invoke them from a prompt.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := config.New()
		for name, key := range boundFlags {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return err
				}
			}
		}

		loaded, err := config.Load(v, flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrCommandFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .devconsole.yaml in the working or home directory)")
	rootCmd.PersistentFlags().StringP("manifest", "m", "devconsole.yaml", "manifest describing properties and commands")
	rootCmd.PersistentFlags().String("tools", "", "tools config (YAML or JSON) for process-backed commands")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}
