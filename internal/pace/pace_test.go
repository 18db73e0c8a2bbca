package pace

import (
	"math"
	"testing"
)

func TestFromKm(t *testing.T) {
	tests := []struct {
		name        string
		distanceKm  float64
		durationSec float64
		want        float64
	}{
		{"five km in twenty five minutes", 5.0, 1500, 300},
		{"ten km in an hour", 10.0, 3600, 360},
		{"zero distance yields the sentinel", 0, 1500, 0},
		{"negative distance yields the sentinel", -2.0, 1500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromKm(tt.distanceKm, tt.durationSec)
			if got.SecPerKm != tt.want {
				t.Errorf("FromKm() = %v sec/km, want %v", got.SecPerKm, tt.want)
			}
		})
	}
}

func TestFromMeters(t *testing.T) {
	got := FromMeters(5000, 1500)
	if got.SecPerKm != 300 {
		t.Errorf("FromMeters() = %v sec/km, want 300", got.SecPerKm)
	}
}

func TestFromSecPerKm_ClampsNegative(t *testing.T) {
	if got := FromSecPerKm(-50); got.SecPerKm != 0 {
		t.Errorf("FromSecPerKm(-50) = %v, want 0", got.SecPerKm)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		secPerKm float64
		want     bool
	}{
		{0, false},
		{119.9, false},
		{120, true},
		{300, true},
		{1500, true},
		{1500.1, false},
	}

	for _, tt := range tests {
		if got := FromSecPerKm(tt.secPerKm).Valid(); got != tt.want {
			t.Errorf("Valid(%v sec/km) = %v, want %v", tt.secPerKm, got, tt.want)
		}
	}
}

func TestPercentDiff(t *testing.T) {
	baseline := FromSecPerKm(300)

	if got := FromSecPerKm(330).PercentDiff(baseline); math.Abs(got-10) > 1e-9 {
		t.Errorf("PercentDiff(slower) = %v, want 10", got)
	}
	if got := FromSecPerKm(270).PercentDiff(baseline); math.Abs(got+10) > 1e-9 {
		t.Errorf("PercentDiff(faster) = %v, want -10", got)
	}
	if got := FromSecPerKm(300).PercentDiff(Pace{}); got != 0 {
		t.Errorf("PercentDiff(zero baseline) = %v, want 0", got)
	}
}

func TestFasterThan(t *testing.T) {
	if !FromSecPerKm(280).FasterThan(FromSecPerKm(300)) {
		t.Error("280 sec/km should be faster than 300")
	}
	if FromSecPerKm(300).FasterThan(FromSecPerKm(300)) {
		t.Error("equal paces are not faster than each other")
	}
}

func TestProjections(t *testing.T) {
	p := FromSecPerKm(300)

	if got := p.ProjectedTime(10); got != 3000 {
		t.Errorf("ProjectedTime(10) = %v, want 3000", got)
	}
	if got := p.ProjectedDistance(3000); got != 10 {
		t.Errorf("ProjectedDistance(3000) = %v, want 10", got)
	}
	if got := (Pace{}).ProjectedDistance(3000); got != 0 {
		t.Errorf("ProjectedDistance on zero pace = %v, want 0", got)
	}
}

func TestFormat(t *testing.T) {
	p := FromSecPerKm(300)

	if got := p.Format(false); got != "5:00/km" {
		t.Errorf("Format(km) = %q, want %q", got, "5:00/km")
	}
	// 300 sec/km x 1.60934 = 482.8 sec/mi.
	if got := p.Format(true); got != "8:02/mi" {
		t.Errorf("Format(mi) = %q, want %q", got, "8:02/mi")
	}
	if got := (Pace{}).Format(false); got != "--:--/km" {
		t.Errorf("Format(invalid) = %q, want %q", got, "--:--/km")
	}
	if got := p.FormatBare(false); got != "5:00" {
		t.Errorf("FormatBare() = %q, want %q", got, "5:00")
	}
}
