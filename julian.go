package moonphase

// EpochJulianDate is the Julian date of the Unix epoch,
// 1970-01-01T00:00:00Z.
const EpochJulianDate = 2440587.5

const secondsPerDay = 86400 // not counting leap seconds

// JulianDateFromSeconds converts Unix epoch seconds to a Julian date,
// the continuous day count the phase engine works in. Defined for all
// finite input, including negative seconds for pre-1970 instants;
// non-finite input propagates to a non-finite result.
func JulianDateFromSeconds(secs float64) float64 {
	return secs/secondsPerDay + EpochJulianDate
}
