package moonphase

import "testing"

func TestJulianDateFromSeconds(t *testing.T) {
	tests := []struct {
		name string
		secs float64
		want float64
	}{
		{"unix epoch", 0, 2440587.5},
		{"one day after epoch", 86400, 2440588.5},
		{"one day before epoch", -86400, 2440586.5},
		{"half day", 43200, 2440588.0},
		{"reference new moon", 947182380, 2451550.2590277777},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDateFromSeconds(tt.secs)
			if got != tt.want {
				t.Errorf("JulianDateFromSeconds(%v) = %v, want %v", tt.secs, got, tt.want)
			}
		})
	}
}
