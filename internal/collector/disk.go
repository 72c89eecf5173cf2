// Root filesystem probe — invokes the disk-usage tool with a 1 KiB block
// size and parses its tabular output. The use% column is kept as the
// tool's own string to preserve its rounding and formatting.
package collector

import (
	"context"
	"strings"

	"github.com/sysglance/sysglance/internal/models"
)

// rootDisk returns usage of the filesystem mounted at /, or nil when the
// tool is unavailable, exits non-zero, or emits no data row.
func (c *Collector) rootDisk(ctx context.Context) *models.DiskInfo {
	out, ok := c.src.Run(ctx, "df", "-k", "/")
	if !ok {
		return nil
	}
	return parseDiskUsage(out)
}

// parseDiskUsage reads the second output line: device, 1K-blocks, used,
// available, use%, mountpoint. The three counters must all be finite; the
// device and mountpoint columns are not consumed.
func parseDiskUsage(out string) *models.DiskInfo {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return nil
	}
	fields := strings.Fields(lines[1])
	if len(fields) < 5 {
		return nil
	}

	sizeKB, okSize := parseFinite(fields[1])
	usedKB, okUsed := parseFinite(fields[2])
	availKB, okAvail := parseFinite(fields[3])
	if !okSize || !okUsed || !okAvail {
		return nil
	}

	return &models.DiskInfo{
		SizeGB:  sizeKB / kibPerGib,
		UsedGB:  usedKB / kibPerGib,
		AvailGB: availKB / kibPerGib,
		UsePct:  fields[4],
	}
}
