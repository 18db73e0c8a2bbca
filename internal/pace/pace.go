// Package pace provides the running pace value type, relative-effort zone
// derivation, and pace analysis against a runner's own rolling baseline.
package pace

import "fmt"

const metersPerMile = 1609.34

// Plausible human running paces in seconds per kilometer. Values outside
// this window render as unknown rather than being rejected.
const (
	minValidSecPerKm = 120
	maxValidSecPerKm = 1500
)

// Pace is a running speed expressed as seconds per kilometer. Lower is
// faster. The zero value is the invalid sentinel produced by constructing
// from a non-positive distance.
type Pace struct {
	SecPerKm float64
}

// FromSecPerKm builds a pace directly, clamping negatives to zero.
func FromSecPerKm(s float64) Pace {
	if s < 0 {
		s = 0
	}
	return Pace{SecPerKm: s}
}

// FromKm derives a pace from a kilometer distance and a duration in seconds.
// A non-positive distance yields the zero (invalid) pace, never a fault.
func FromKm(distanceKm, durationSec float64) Pace {
	if distanceKm <= 0 {
		return Pace{}
	}
	return Pace{SecPerKm: durationSec / distanceKm}
}

// FromMeters derives a pace from a meter distance and a duration in seconds.
func FromMeters(distanceMeters, durationSec float64) Pace {
	return FromKm(distanceMeters/1000.0, durationSec)
}

// SecPerMile converts the pace to seconds per mile.
func (p Pace) SecPerMile() float64 {
	return p.SecPerKm * metersPerMile / 1000.0
}

// Valid reports whether the pace falls in the plausible running window.
func (p Pace) Valid() bool {
	return p.SecPerKm >= minValidSecPerKm && p.SecPerKm <= maxValidSecPerKm
}

// FasterThan reports whether p is faster (fewer seconds per km) than other.
func (p Pace) FasterThan(other Pace) bool {
	return p.SecPerKm < other.SecPerKm
}

// PercentDiff returns the percent difference of p relative to a baseline.
// Negative means faster than the baseline. A zero baseline yields 0.
func (p Pace) PercentDiff(baseline Pace) float64 {
	if baseline.SecPerKm <= 0 {
		return 0
	}
	return (p.SecPerKm - baseline.SecPerKm) / baseline.SecPerKm * 100
}

// ProjectedTime returns the seconds needed to cover a distance at this pace.
func (p Pace) ProjectedTime(distanceKm float64) float64 {
	return p.SecPerKm * distanceKm
}

// ProjectedDistance returns the kilometers covered in a duration at this pace.
func (p Pace) ProjectedDistance(durationSec float64) float64 {
	if p.SecPerKm <= 0 {
		return 0
	}
	return durationSec / p.SecPerKm
}

// Format renders the pace as m:ss with a unit suffix, using miles when
// requested. Invalid paces render as "--:--".
func (p Pace) Format(useMiles bool) string {
	label := "/km"
	seconds := p.SecPerKm
	if useMiles {
		label = "/mi"
		seconds = p.SecPerMile()
	}
	if !p.Valid() {
		return "--:--" + label
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d%s", total/60, total%60, label)
}

// FormatBare renders the pace as m:ss without a unit suffix.
func (p Pace) FormatBare(useMiles bool) string {
	seconds := p.SecPerKm
	if useMiles {
		seconds = p.SecPerMile()
	}
	if !p.Valid() {
		return "--:--"
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
