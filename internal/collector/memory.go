// Memory probe — reads the meminfo pseudo-file's line-oriented
// "Key: value kB" pairs. Used capacity is derived, not read: the kernel
// exposes MemTotal and MemAvailable, and used = total - available.
package collector

import (
	"strings"

	"github.com/sysglance/sysglance/internal/models"
)

const memInfoPath = "/proc/meminfo"

// memoryInfo returns memory capacity in gibibytes plus the used
// percentage, or nil when either counter is missing or any derived value
// comes out non-finite. The record is all-or-nothing.
func (c *Collector) memoryInfo() *models.MemoryInfo {
	raw, ok := c.src.ReadText(memInfoPath)
	if !ok {
		return nil
	}
	return parseMemInfo(raw)
}

func parseMemInfo(raw string) *models.MemoryInfo {
	var totalKB, availKB float64
	var haveTotal, haveAvail bool

	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			totalKB, haveTotal = parseFinite(fields[1])
		case "MemAvailable:":
			availKB, haveAvail = parseFinite(fields[1])
		}
	}
	if !haveTotal || !haveAvail {
		return nil
	}

	info := models.MemoryInfo{
		TotalGB: totalKB / kibPerGib,
		AvailGB: availKB / kibPerGib,
	}
	info.UsedGB = info.TotalGB - info.AvailGB
	info.UsedPct = info.UsedGB / info.TotalGB * 100

	if !finite(info.TotalGB) || !finite(info.UsedGB) || !finite(info.AvailGB) || !finite(info.UsedPct) {
		return nil
	}
	return &info
}
