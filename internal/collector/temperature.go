// CPU temperature probe — reads the first thermal zone pseudo-file.
// The kernel reports the reading as an integer in milli-degrees Celsius.
package collector

import "strings"

const thermalZonePath = "/sys/class/thermal/thermal_zone0/temp"

// cpuTemperature returns the CPU temperature in degrees Celsius, or nil
// when the thermal zone is missing or its content does not parse.
func (c *Collector) cpuTemperature() *float64 {
	raw, ok := c.src.ReadText(thermalZonePath)
	if !ok {
		return nil
	}
	milli, ok := parseFinite(strings.TrimSpace(raw))
	if !ok {
		return nil
	}
	temp := milli / 1000
	return &temp
}
