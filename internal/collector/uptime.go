// Uptime probe — reads seconds since boot from the first field of the
// uptime pseudo-file; the idle-time field after it is ignored.
package collector

import "strings"

const uptimePath = "/proc/uptime"

// uptime returns seconds since boot, or nil when the pseudo-file is
// missing or its first field does not parse.
func (c *Collector) uptime() *float64 {
	raw, ok := c.src.ReadText(uptimePath)
	if !ok {
		return nil
	}
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	secs, ok := parseFinite(fields[0])
	if !ok {
		return nil
	}
	return &secs
}
