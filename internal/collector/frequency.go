// CPU frequency probe — reads the cpufreq scaling pseudo-file for the
// first core. The kernel reports the current frequency in kilohertz.
package collector

import "strings"

const cpuFreqPath = "/sys/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq"

// cpuFrequency returns the current CPU frequency in megahertz, or nil when
// the cpufreq interface is missing or its content does not parse.
func (c *Collector) cpuFrequency() *float64 {
	raw, ok := c.src.ReadText(cpuFreqPath)
	if !ok {
		return nil
	}
	khz, ok := parseFinite(strings.TrimSpace(raw))
	if !ok {
		return nil
	}
	mhz := khz / 1000
	return &mhz
}
