package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sysglance/sysglance/internal/collector"
	"github.com/sysglance/sysglance/internal/models"
	"github.com/sysglance/sysglance/internal/source"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Collect one snapshot and print it as JSON",
	Long: `dump runs every probe once and prints the host specs and the metrics
snapshot as indented JSON. Probes without data report null, so the output
shape is the same on every host.`,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	col := collector.New(source.OS(), nil)

	out := struct {
		Specs   models.HostSpecs       `json:"specs"`
		Metrics models.MetricsSnapshot `json:"metrics"`
	}{
		Specs:   col.CollectSpecs(ctx),
		Metrics: col.CollectMetrics(ctx),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
