// Package collector assembles host telemetry from kernel pseudo-files and
// external tool output. Each probe converts one raw source into one typed,
// unit-normalized value; a source that is missing or malformed yields an
// absent value instead of an error, so snapshots stay complete on hardware
// that lacks a sensor and on platforms that lack the source entirely.
package collector

import (
	"context"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/sysglance/sysglance/internal/models"
	"github.com/sysglance/sysglance/internal/source"
)

// kibPerGib converts the kernel's kibibyte counters to gibibytes.
const kibPerGib = 1024 * 1024

// Collector runs the telemetry probes against an injected Source.
// It holds no mutable state and is safe for concurrent use.
type Collector struct {
	src    source.Source
	logger *zap.Logger
}

// New creates a Collector reading from src. Pass nil for no logging.
func New(src source.Source, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		src:    src,
		logger: logger,
	}
}

// CollectMetrics gathers a fresh snapshot of all host metrics. Probes run
// sequentially and independently: a failing probe leaves its field nil and
// never affects the rest of the snapshot. CollectMetrics cannot fail.
func (c *Collector) CollectMetrics(ctx context.Context) models.MetricsSnapshot {
	snapshot := models.MetricsSnapshot{
		Time:       time.Now().UTC(),
		CPUTempC:   c.cpuTemperature(),
		CPUFreqMHz: c.cpuFrequency(),
		LoadAvg:    c.loadAverage(),
		Mem:        c.memoryInfo(),
		DiskRoot:   c.rootDisk(ctx),
		UptimeSec:  c.uptime(),
	}
	c.logger.Debug("Collected metrics snapshot", zap.Time("time", snapshot.Time))
	return snapshot
}

// parseFinite parses s as a float and rejects non-finite results. The
// reject matters: strconv accepts "Inf" and "NaN" spellings, and derived
// values can overflow into infinities.
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(v) {
		return 0, false
	}
	return v, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
