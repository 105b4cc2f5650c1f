package moonphase

// Zodiac identifies the constellation band the Moon's ecliptic
// longitude falls in.
type Zodiac int

const (
	Pisces Zodiac = iota
	Aries
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
)

var zodiacNames = [...]string{
	"Pisces",
	"Aries",
	"Taurus",
	"Gemini",
	"Cancer",
	"Leo",
	"Virgo",
	"Libra",
	"Scorpio",
	"Sagittarius",
	"Capricorn",
	"Aquarius",
}

func (z Zodiac) String() string {
	if z < 0 || int(z) >= len(zodiacNames) {
		return "Unknown"
	}
	return zodiacNames[z]
}

// zodiacAngles holds the upper-bound ecliptic longitude of each
// constellation band, in degrees, ascending. The bands follow the
// uneven constellation boundaries, not 30-degree astrological sectors,
// so classification is a table scan rather than a division.
var zodiacAngles = [...]float64{
	33.18,  // Pisces
	51.16,  // Aries
	93.44,  // Taurus
	119.48, // Gemini
	135.30, // Cancer
	173.34, // Leo
	224.17, // Virgo
	242.57, // Libra
	271.26, // Scorpio
	302.49, // Sagittarius
	311.72, // Capricorn
	348.58, // Aquarius
}

// ZodiacFromLongitude returns the constellation whose band contains
// the given ecliptic longitude in degrees. The first band whose upper
// bound exceeds the longitude wins; longitudes at or beyond the last
// boundary wrap around to Pisces.
func ZodiacFromLongitude(long float64) Zodiac {
	for i, angle := range zodiacAngles {
		if long < angle {
			return Zodiac(i)
		}
	}
	return Pisces
}
