// Package models defines the telemetry value records served over the API.
// Every record is an immutable point-in-time value constructed fresh per
// collection call. Optional fields are pointers: nil marshals to JSON null,
// and keys are never omitted so the wire schema stays stable.
package models

import "time"

// HostSpecs describes the static-ish identity of the host. Runtime is the
// version string of the runtime executing the server; it is serialized
// under the key "node".
type HostSpecs struct {
	Hostname string  `json:"hostname"`
	Platform string  `json:"platform"`
	Arch     string  `json:"arch"`
	Model    *string `json:"model"`
	CPUCount *int    `json:"cpu_count"`
	Runtime  string  `json:"node"`
}

// MetricsSnapshot is a single point-in-time collection of all host metrics.
// Each optional field is independently nil when its source could not be
// read or parsed.
type MetricsSnapshot struct {
	Time       time.Time    `json:"time"`
	CPUTempC   *float64     `json:"cpu_temp_c"`
	CPUFreqMHz *float64     `json:"cpu_freq_mhz"`
	LoadAvg    *LoadAverage `json:"loadavg"`
	Mem        *MemoryInfo  `json:"mem"`
	DiskRoot   *DiskInfo    `json:"disk_root"`
	UptimeSec  *float64     `json:"uptime_sec"`
}

// LoadAverage holds the run-queue length averaged over the three standard
// windows. Either all three values are present and finite, or the whole
// record is absent.
type LoadAverage struct {
	Load1  float64 `json:"1m"`
	Load5  float64 `json:"5m"`
	Load15 float64 `json:"15m"`
}

// MemoryInfo holds memory capacity in gibibytes, derived from the kernel's
// raw kibibyte counters: used = total - available.
type MemoryInfo struct {
	TotalGB float64 `json:"total_gb"`
	UsedGB  float64 `json:"used_gb"`
	AvailGB float64 `json:"avail_gb"`
	UsedPct float64 `json:"used_pct"`
}

// DiskInfo holds root filesystem usage in gibibytes. UsePct keeps the disk
// tool's own percentage string verbatim to preserve its rounding.
type DiskInfo struct {
	SizeGB  float64 `json:"size_gb"`
	UsedGB  float64 `json:"used_gb"`
	AvailGB float64 `json:"avail_gb"`
	UsePct  string  `json:"use_pct"`
}
