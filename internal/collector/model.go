// Hardware model probe — reads the device-tree model pseudo-file found on
// single-board computers. The file content ends with a NUL terminator that
// must be stripped, not merely trimmed.
package collector

import "strings"

const deviceTreeModelPath = "/proc/device-tree/model"

// hardwareModel returns the board model string, or nil on hardware without
// a device tree or when the file is empty once NULs and whitespace go.
func (c *Collector) hardwareModel() *string {
	raw, ok := c.src.ReadText(deviceTreeModelPath)
	if !ok {
		return nil
	}
	model := strings.TrimSpace(strings.ReplaceAll(raw, "\x00", ""))
	if model == "" {
		return nil
	}
	return &model
}
