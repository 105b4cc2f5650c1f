package moonphase

import "math"

// Phase is an 8-way bucketing of the continuous synodic phase.
type Phase int

const (
	New Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	Full
	WaningGibbous
	LastQuarter
	WaningCrescent
)

var phaseNames = [...]string{
	"New",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}

// phaseFromFraction buckets a synodic phase fraction into the nearest
// named phase. math.Round is half away from zero, which is what the
// bucket boundaries assume. The fold by 8 maps the negative buckets
// produced by pre-reference-epoch dates back into range; without it
// any slightly negative phase would read as New.
func phaseFromFraction(phase float64) Phase {
	bucket := int(math.Round(phase*8)) % 8
	if bucket < 0 {
		bucket += 8
	}
	return Phase(bucket)
}
