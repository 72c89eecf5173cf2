package collector

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

// fakeSource serves probe inputs from memory. Missing entries report
// absence, mirroring how the real source behaves on missing files.
type fakeSource struct {
	files map[string]string
	cmds  map[string]string
}

func (f fakeSource) ReadText(path string) (string, bool) {
	text, ok := f.files[path]
	return text, ok
}

func (f fakeSource) Run(_ context.Context, name string, args ...string) (string, bool) {
	out, ok := f.cmds[strings.Join(append([]string{name}, args...), " ")]
	return out, ok
}

func TestCollectMetricsEmptyHostKeepsSchema(t *testing.T) {
	snap := New(fakeSource{}, nil).CollectMetrics(context.Background())

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"time", "cpu_temp_c", "cpu_freq_mhz", "loadavg", "mem", "disk_root", "uptime_sec"} {
		raw, ok := decoded[key]
		if !ok {
			t.Errorf("key %q missing from snapshot JSON", key)
			continue
		}
		if key != "time" && string(raw) != "null" {
			t.Errorf("key %q = %s, want null on a host with no sources", key, raw)
		}
	}
	if snap.Time.IsZero() {
		t.Error("snapshot timestamp is zero")
	}
}

func TestCollectMetricsFullyPopulated(t *testing.T) {
	src := fakeSource{
		files: map[string]string{
			thermalZonePath:     "45678\n",
			cpuFreqPath:         "1500000\n",
			deviceTreeModelPath: "Raspberry Pi 4 Model B\x00",
			loadAvgPath:         "0.10 0.25 0.30 1/200 1234\n",
			memInfoPath:         "MemTotal:       2097152 kB\nMemFree:         524288 kB\nMemAvailable:   1048576 kB\n",
			uptimePath:          "12345.67 98765.43\n",
		},
		cmds: map[string]string{
			"df -k /": "Filesystem     1K-blocks    Used Available Use% Mounted on\n/dev/root        1048576  524288    524288  50% /\n",
		},
	}

	snap := New(src, nil).CollectMetrics(context.Background())

	if snap.CPUTempC == nil || *snap.CPUTempC != 45.678 {
		t.Errorf("CPUTempC = %v, want 45.678", snap.CPUTempC)
	}
	if snap.CPUFreqMHz == nil || *snap.CPUFreqMHz != 1500 {
		t.Errorf("CPUFreqMHz = %v, want 1500", snap.CPUFreqMHz)
	}
	if snap.LoadAvg == nil || snap.LoadAvg.Load5 != 0.25 {
		t.Errorf("LoadAvg = %+v, want 5m average 0.25", snap.LoadAvg)
	}
	if snap.Mem == nil || snap.Mem.TotalGB != 2.0 || snap.Mem.UsedGB != 1.0 {
		t.Errorf("Mem = %+v, want 2 GiB total, 1 GiB used", snap.Mem)
	}
	if snap.DiskRoot == nil || snap.DiskRoot.UsePct != "50%" {
		t.Errorf("DiskRoot = %+v, want use_pct \"50%%\"", snap.DiskRoot)
	}
	if snap.UptimeSec == nil || *snap.UptimeSec != 12345.67 {
		t.Errorf("UptimeSec = %v, want 12345.67", snap.UptimeSec)
	}
}

func TestCollectMetricsOneFailingProbeLeavesRestIntact(t *testing.T) {
	src := fakeSource{
		files: map[string]string{
			loadAvgPath: "garbage here\n",
			uptimePath:  "777.5 123.4\n",
		},
	}

	snap := New(src, nil).CollectMetrics(context.Background())

	if snap.LoadAvg != nil {
		t.Errorf("LoadAvg = %+v, want nil for malformed content", snap.LoadAvg)
	}
	if snap.UptimeSec == nil || *snap.UptimeSec != 777.5 {
		t.Errorf("UptimeSec = %v, want 777.5 despite the loadavg failure", snap.UptimeSec)
	}
}
