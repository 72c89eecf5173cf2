// Host specs probe — identity fields from OS APIs rather than pseudo-files:
// hostname, platform, architecture, logical core count, runtime version,
// plus the hardware model shared with the device-tree probe.
package collector

import (
	"context"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/sysglance/sysglance/internal/models"
)

// CollectSpecs gathers the host's static identity. Fields are independent:
// the core count is nil when the OS enumeration API is unavailable, the
// model is nil off device-tree hardware. Specs are recomputed on every
// call. CollectSpecs cannot fail.
func (c *Collector) CollectSpecs(ctx context.Context) models.HostSpecs {
	specs := models.HostSpecs{
		Platform: runtime.GOOS,
		Arch:     runtime.GOARCH,
		Model:    c.hardwareModel(),
		Runtime:  runtime.Version(),
	}
	if name, err := os.Hostname(); err == nil {
		specs.Hostname = name
	}
	if count, err := cpu.CountsWithContext(ctx, true); err == nil && count > 0 {
		specs.CPUCount = &count
	}
	return specs
}
