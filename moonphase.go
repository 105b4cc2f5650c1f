// Package moonphase computes lunar-cycle parameters for a point in
// time: illumination phase and age, Moon-Earth distance, ecliptic
// latitude and longitude, the named phase, and the zodiac
// constellation. It uses closed-form trigonometric approximations over
// four fixed reference cycles, so every entry point is a pure function
// of its timestamp.
package moonphase

import (
	"math"
	"time"
)

// Reference periods and offsets of the lunar cycles, in days. Each
// offset is the Julian date of a reference epoch for its cycle; the
// synodic offset corresponds to the new moon of 18:13 UTC
// January 6, 2000.
const (
	SynodicPeriod   = 29.530588853 // Moon phase cycle (new moon to new moon)
	synodicOffset   = 2451550.26
	distancePeriod  = 27.55454988 // Anomalistic cycle (distance oscillation)
	distanceOffset  = 2451562.2
	latitudePeriod  = 27.212220817 // Nodal cycle (ecliptic latitude)
	latitudeOffset  = 2451565.2
	longitudePeriod = 27.321582241 // Sidereal cycle (ecliptic longitude)
	longitudeOffset = 2451555.8
)

const tau = 2 * math.Pi

// MoonPhase is a snapshot of the derived lunar quantities for a single
// Julian date. All fields are computed together from one timestamp;
// the value is immutable and freely copyable.
type MoonPhase struct {
	JulianDate float64 // Julian date the snapshot was computed for
	Phase      float64 // Fraction of the synodic cycle elapsed: 0 = new, 0.5 = full
	Age        float64 // Days elapsed in the current synodic cycle
	Fraction   float64 // Illuminated fraction of the disk (0-1)
	Distance   float64 // Moon-Earth distance in earth radii
	Latitude   float64 // Ecliptic latitude in degrees
	Longitude  float64 // Ecliptic longitude in degrees (0-360)
	PhaseName  Phase   // Named phase (New, Full, ...)
	ZodiacName Zodiac  // Constellation band of the ecliptic longitude
}

// FromJulianDate computes the lunar parameters for a Julian date.
func FromJulianDate(jd float64) MoonPhase {
	return compute(jd)
}

// FromEpochSeconds computes the lunar parameters for a Unix timestamp.
// Negative values address instants before 1970.
func FromEpochSeconds(secs int64) MoonPhase {
	return FromEpochSecondsFloat(float64(secs))
}

// FromEpochSecondsFloat is FromEpochSeconds with sub-second resolution.
func FromEpochSecondsFloat(secs float64) MoonPhase {
	return compute(JulianDateFromSeconds(secs))
}

// FromTime computes the lunar parameters for a time.Time at
// microsecond resolution. The location is irrelevant: the result
// depends only on the instant.
func FromTime(t time.Time) MoonPhase {
	return FromEpochSecondsFloat(float64(t.UnixMicro()) / 1e6)
}

// Now computes the lunar parameters for the current wall-clock time.
func Now() MoonPhase {
	return FromTime(time.Now())
}

// compute derives every output quantity from one Julian date. It is
// total over finite input; NaN and ±Inf propagate unchecked.
func compute(jd float64) MoonPhase {
	// Synodic phase: fraction of the cycle elapsed since the
	// reference new moon. frac keeps the sign of its argument, so
	// dates before the reference epoch yield a phase in (-1, 0]; the
	// bucket fold in phaseFromFraction is the only place that sign is
	// normalized.
	phase := frac((jd - synodicOffset) / SynodicPeriod)
	age := phase * SynodicPeriod
	fraction := (1 - math.Cos(tau*phase)) / 2

	// Distance from the anomalistic cycle. The synodic term enters at
	// its second harmonic, hence the doubled angle.
	distancePhase := frac((jd - distanceOffset) / distancePeriod)
	distanceTau := tau * distancePhase
	phaseTau := 2 * tau * phase
	deltaTau := phaseTau - distanceTau
	distance := 60.4 -
		3.3*math.Cos(distanceTau) -
		0.6*math.Cos(deltaTau) -
		0.5*math.Cos(phaseTau)

	// Ecliptic latitude from the nodal (draconic) cycle.
	latPhase := frac((jd - latitudeOffset) / latitudePeriod)
	latitude := 5.1 * math.Sin(tau*latPhase)

	// Ecliptic longitude from sidereal motion, perturbed by the
	// anomalistic and synodic terms, reduced into [0, 360).
	longPhase := frac((jd - longitudeOffset) / longitudePeriod)
	longitude := normalizeAngle360(360*longPhase +
		6.3*math.Sin(distanceTau) +
		1.3*math.Sin(deltaTau) +
		0.7*math.Sin(phaseTau))

	return MoonPhase{
		JulianDate: jd,
		Phase:      phase,
		Age:        age,
		Fraction:   fraction,
		Distance:   distance,
		Latitude:   latitude,
		Longitude:  longitude,
		PhaseName:  phaseFromFraction(phase),
		ZodiacName: ZodiacFromLongitude(longitude),
	}
}

// frac returns the fractional part of x with the sign of x
// (truncating semantics: frac(-0.3) is -0.3, not 0.7). The cycle
// phases depend on this convention; only the final longitude is
// reduced Euclidean-style.
func frac(x float64) float64 {
	return math.Mod(x, 1)
}

// normalizeAngle360 normalizes an angle to 0-360 degrees.
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
