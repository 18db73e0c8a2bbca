package service

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDistanceKm parses a user-entered distance and bounds-checks it.
func ParseDistanceKm(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("distance must be a number, got %q", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("distance must be positive, got %v", v)
	}
	if v > MaxRunDistanceKm {
		return 0, fmt.Errorf("distance %.1f km is beyond the %.0f km limit", v, MaxRunDistanceKm)
	}
	return v, nil
}

// ParseWeeklyKm parses a typical weekly volume and bounds-checks it.
func ParseWeeklyKm(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("weekly distance must be a number, got %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("weekly distance must not be negative, got %v", v)
	}
	if v > MaxWeeklyDistanceKm {
		return 0, fmt.Errorf("weekly distance %.1f km is beyond the %.0f km limit", v, MaxWeeklyDistanceKm)
	}
	return v, nil
}

// ParseDurationMinutes parses a duration entered as "mm:ss", "h:mm:ss", or a
// plain number of minutes.
func ParseDurationMinutes(s string) (float64, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")

	var minutes float64
	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, fmt.Errorf("duration must be minutes or mm:ss, got %q", s)
		}
		minutes = v
	case 2:
		m, err1 := strconv.Atoi(parts[0])
		sec, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("duration must be mm:ss, got %q", s)
		}
		minutes = float64(m) + float64(sec)/60.0
	case 3:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		sec, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil || m < 0 || m > 59 || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("duration must be h:mm:ss, got %q", s)
		}
		minutes = float64(h)*60 + float64(m) + float64(sec)/60.0
	default:
		return 0, fmt.Errorf("duration must be minutes, mm:ss, or h:mm:ss, got %q", s)
	}

	if minutes <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %q", s)
	}
	if minutes > MaxRunDurationMinutes {
		return 0, fmt.Errorf("duration %q is beyond a single day", s)
	}
	return minutes, nil
}

// ValidateRating checks an integer rating against its inclusive bounds.
func ValidateRating(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s must be between %d and %d, got %d", name, lo, hi, v)
	}
	return nil
}

// ParsePainAreas splits a comma-separated pain area list, trimming blanks.
func ParsePainAreas(s string) []string {
	var areas []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			areas = append(areas, part)
		}
	}
	return areas
}
