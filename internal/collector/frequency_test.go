package collector

import "testing"

func TestCPUFrequency(t *testing.T) {
	tests := []struct {
		name    string
		content string
		have    bool
		want    float64
	}{
		{"1.5 GHz", "1500000\n", true, 1500},
		{"600 MHz", "600000\n", true, 600},
		{"fractional result", "1234567\n", true, 1234.567},
		{"non-numeric", "unknown\n", false, 0},
		{"empty", "", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(fakeSource{files: map[string]string{cpuFreqPath: tt.content}}, nil)
			got := c.cpuFrequency()
			if tt.have {
				if got == nil || *got != tt.want {
					t.Errorf("cpuFrequency() = %v, want %v", got, tt.want)
				}
			} else if got != nil {
				t.Errorf("cpuFrequency() = %v, want nil", *got)
			}
		})
	}
}

func TestCPUFrequencyMissingSysfs(t *testing.T) {
	if got := New(fakeSource{}, nil).cpuFrequency(); got != nil {
		t.Errorf("cpuFrequency() = %v, want nil without cpufreq", *got)
	}
}
