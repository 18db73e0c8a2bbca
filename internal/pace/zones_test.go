package pace

import "testing"

func TestZonesFor(t *testing.T) {
	zones := ZonesFor(FromSecPerKm(300))

	tests := []struct {
		name string
		zone Zone
		fast float64
		slow float64
	}{
		{"easy", zones.Easy, 315, 345},
		{"tempo", zones.Tempo, 285, 315},
		{"threshold", zones.Threshold, 270, 285},
		{"interval", zones.Interval, 255, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.zone.Fast.SecPerKm != tt.fast {
				t.Errorf("fast bound = %v, want %v", tt.zone.Fast.SecPerKm, tt.fast)
			}
			if tt.zone.Slow.SecPerKm != tt.slow {
				t.Errorf("slow bound = %v, want %v", tt.zone.Slow.SecPerKm, tt.slow)
			}
		})
	}
}

func TestZoneContains(t *testing.T) {
	zones := ZonesFor(FromSecPerKm(300))

	if !zones.Tempo.Contains(FromSecPerKm(300)) {
		t.Error("baseline pace should sit in the tempo band")
	}
	// Adjacent bands share their boundary pace.
	if !zones.Tempo.Contains(FromSecPerKm(315)) || !zones.Easy.Contains(FromSecPerKm(315)) {
		t.Error("boundary pace should belong to both adjacent bands")
	}
	if zones.Interval.Contains(FromSecPerKm(300)) {
		t.Error("baseline pace should not sit in the interval band")
	}
}

func TestZoneFormat(t *testing.T) {
	zones := ZonesFor(FromSecPerKm(300))

	if got := zones.Easy.Format(false); got != "5:15 - 5:45" {
		t.Errorf("easy zone = %q, want %q", got, "5:15 - 5:45")
	}
}
