package collector

import "testing"

func TestParseLoadAverage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		have bool
		l1   float64
		l5   float64
		l15  float64
	}{
		{"full proc line", "0.10 0.25 0.30 1/200 1234\n", true, 0.10, 0.25, 0.30},
		{"exactly three fields", "1.5 2.5 3.5", true, 1.5, 2.5, 3.5},
		{"two fields", "0.10 0.25\n", false, 0, 0, 0},
		{"second field non-numeric", "0.10 abc 0.30 1/200 1234\n", false, 0, 0, 0},
		{"nan field", "0.10 NaN 0.30 1/200 1234\n", false, 0, 0, 0},
		{"empty", "", false, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLoadAverage(tt.raw)
			if !tt.have {
				if got != nil {
					t.Errorf("parseLoadAverage(%q) = %+v, want nil", tt.raw, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("parseLoadAverage(%q) = nil, want averages", tt.raw)
			}
			if got.Load1 != tt.l1 || got.Load5 != tt.l5 || got.Load15 != tt.l15 {
				t.Errorf("parseLoadAverage(%q) = %+v, want {%v %v %v}", tt.raw, got, tt.l1, tt.l5, tt.l15)
			}
		})
	}
}

func TestLoadAverageMissingProc(t *testing.T) {
	if got := New(fakeSource{}, nil).loadAverage(); got != nil {
		t.Errorf("loadAverage() = %+v, want nil without /proc", got)
	}
}
