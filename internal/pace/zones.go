package pace

// Zone is a pace band bounded by a fast and a slow pace.
type Zone struct {
	Fast Pace // lower seconds per km
	Slow Pace // higher seconds per km
}

// Contains reports whether a pace falls inside the band, inclusive.
func (z Zone) Contains(p Pace) bool {
	return p.SecPerKm >= z.Fast.SecPerKm && p.SecPerKm <= z.Slow.SecPerKm
}

// Format renders the band as "fast - slow" in m:ss.
func (z Zone) Format(useMiles bool) string {
	return z.Fast.FormatBare(useMiles) + " - " + z.Slow.FormatBare(useMiles)
}

// Zones are the four relative-effort bands derived from a baseline pace by
// percentage offsets. Bands share boundaries by construction.
type Zones struct {
	Easy      Zone // baseline x1.05 .. x1.15 (slower than baseline)
	Tempo     Zone // baseline x0.95 .. x1.05
	Threshold Zone // baseline x0.90 .. x0.95
	Interval  Zone // baseline x0.85 .. x0.90
}

// ZonesFor derives the four training bands from a baseline average pace.
func ZonesFor(baseline Pace) Zones {
	at := func(factor float64) Pace {
		return FromSecPerKm(baseline.SecPerKm * factor)
	}
	return Zones{
		Easy:      Zone{Fast: at(1.05), Slow: at(1.15)},
		Tempo:     Zone{Fast: at(0.95), Slow: at(1.05)},
		Threshold: Zone{Fast: at(0.90), Slow: at(0.95)},
		Interval:  Zone{Fast: at(0.85), Slow: at(0.90)},
	}
}
