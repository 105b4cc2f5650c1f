package moonphase

import "testing"

func TestZodiacFromLongitude(t *testing.T) {
	tests := []struct {
		name string
		long float64
		want Zodiac
	}{
		{"start of circle", 0, Pisces},
		{"just below pisces bound", 33.17, Pisces},
		{"pisces bound belongs to aries", 33.18, Aries},
		{"aries bound belongs to taurus", 51.16, Taurus},
		{"mid taurus", 70, Taurus},
		{"taurus bound belongs to gemini", 93.44, Gemini},
		{"gemini bound belongs to cancer", 119.48, Cancer},
		{"cancer bound belongs to leo", 135.30, Leo},
		{"leo bound belongs to virgo", 173.34, Virgo},
		{"virgo bound belongs to libra", 224.17, Libra},
		{"libra bound belongs to scorpio", 242.57, Scorpio},
		{"scorpio bound belongs to sagittarius", 271.26, Sagittarius},
		{"sagittarius bound belongs to capricorn", 302.49, Capricorn},
		{"capricorn bound belongs to aquarius", 311.72, Aquarius},
		{"just below aquarius bound", 348.57, Aquarius},
		{"aquarius bound wraps to pisces", 348.58, Pisces},
		{"near 360 wraps to pisces", 359.99, Pisces},
		{"out-of-range longitude wraps to pisces", 400, Pisces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ZodiacFromLongitude(tt.long); got != tt.want {
				t.Errorf("ZodiacFromLongitude(%v) = %v, want %v", tt.long, got, tt.want)
			}
		})
	}
}

func TestZodiacString(t *testing.T) {
	want := []string{
		"Pisces", "Aries", "Taurus", "Gemini", "Cancer", "Leo",
		"Virgo", "Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius",
	}
	for i, name := range want {
		if got := Zodiac(i).String(); got != name {
			t.Errorf("Zodiac(%d).String() = %q, want %q", i, got, name)
		}
	}
	if got := Zodiac(12).String(); got != "Unknown" {
		t.Errorf("Zodiac(12).String() = %q, want %q", got, "Unknown")
	}
}
