package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sysglance/sysglance/internal/config"
	"github.com/sysglance/sysglance/internal/version"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:     "sysglance",
		Version: version.Version,
		Short:   "Single-host telemetry server with a live dashboard",
		Long: `sysglance reads kernel pseudo-files and df output on the local host and
serves the readings over HTTP: JSON endpoints for one-shot polling, an SSE
stream and a WebSocket for live push, and a small embedded dashboard.

Probes that cannot run on this host simply report null values, so the
server works on any machine even when no probe has data.`,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sysglance %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file (default: auto-discover)")
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration for a command, honoring the
// --config flag when set and auto-discovery otherwise.
func loadConfig(cli config.CLIOverrides) (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadLayered(cli, cfgFile)
	}
	return config.LoadLayered(cli)
}
