// Load average probe — reads the loadavg pseudo-file. Only the three
// leading run-queue averages are consumed; the scheduler entity counts and
// last PID that follow are ignored.
package collector

import (
	"strings"

	"github.com/sysglance/sysglance/internal/models"
)

const loadAvgPath = "/proc/loadavg"

// loadAverage returns the 1/5/15-minute load averages, or nil unless all
// three leading fields parse as finite numbers.
func (c *Collector) loadAverage() *models.LoadAverage {
	raw, ok := c.src.ReadText(loadAvgPath)
	if !ok {
		return nil
	}
	return parseLoadAverage(raw)
}

func parseLoadAverage(raw string) *models.LoadAverage {
	fields := strings.Fields(raw)
	if len(fields) < 3 {
		return nil
	}
	var loads [3]float64
	for i := range loads {
		v, ok := parseFinite(fields[i])
		if !ok {
			return nil
		}
		loads[i] = v
	}
	return &models.LoadAverage{
		Load1:  loads[0],
		Load5:  loads[1],
		Load15: loads[2],
	}
}
