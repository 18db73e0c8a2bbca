package tui

import (
	"fmt"

	"runright/internal/config"
	"runright/internal/engine"
)

// Units provides distance conversion and formatting based on user
// preferences. Everything internal is kilometers; conversion happens only at
// the rendering and input edges.
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatKm formats a kilometer distance in the user's preferred unit
func (u Units) FormatKm(km float64) string {
	if u.IsMiles() {
		return fmt.Sprintf("%.1f mi", km*engine.KmToMiles)
	}
	return fmt.Sprintf("%.1f km", km)
}

// FormatKmValue returns just the numeric distance value (no unit label)
func (u Units) FormatKmValue(km float64) string {
	if u.IsMiles() {
		return fmt.Sprintf("%.1f", km*engine.KmToMiles)
	}
	return fmt.Sprintf("%.1f", km)
}

// ToKm converts a user-entered distance in the preferred unit to kilometers
func (u Units) ToKm(v float64) float64 {
	if u.IsMiles() {
		return v / engine.KmToMiles
	}
	return v
}

// DisplayKm converts a kilometer distance into the preferred display value
func (u Units) DisplayKm(km float64) float64 {
	if u.IsMiles() {
		return km * engine.KmToMiles
	}
	return km
}

// DistanceLabel returns the short unit label ("mi" or "km")
func (u Units) DistanceLabel() string {
	if u.IsMiles() {
		return "mi"
	}
	return "km"
}

// PaceLabel returns the pace unit label ("min/mi" or "min/km")
func (u Units) PaceLabel() string {
	if u.PaceMiles() {
		return "min/mi"
	}
	return "min/km"
}

// IsMiles returns true if the distance unit is miles
func (u Units) IsMiles() bool {
	return u.cfg.DistanceUnit == "mi"
}

// PaceMiles returns true if paces render per mile
func (u Units) PaceMiles() bool {
	return u.cfg.PaceUnit == "min/mi"
}
