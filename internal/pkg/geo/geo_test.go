package geo

import (
	"math"
	"testing"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	points := [][2]float64{
		{13.119129, 80.15127},
		{13.1068797, 79.9229042},
		{0, 0},
		{-33.8688, 151.2093},
	}
	for _, p := range points {
		if d := Distance(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("Distance between identical points (%v, %v) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	cases := []struct {
		lat1, lon1, lat2, lon2 float64
	}{
		{13.119129, 80.15127, 13.1068797, 79.9229042},
		{51.5074, -0.1278, 48.8566, 2.3522},
		{-90, 0, 90, 0},
	}
	for _, c := range cases {
		ab := Distance(c.lat1, c.lon1, c.lat2, c.lon2)
		ba := Distance(c.lat2, c.lon2, c.lat1, c.lon1)
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Distance not symmetric: d(a,b)=%v d(b,a)=%v", ab, ba)
		}
	}
}

func TestDistanceKnownValues(t *testing.T) {
	// The two office sites are roughly 24.7 km apart.
	d := Distance(13.119129, 80.15127, 13.1068797, 79.9229042)
	if d < 24000 || d > 26000 {
		t.Errorf("office-to-office distance = %v m, want ~24700 m", d)
	}

	// One degree of latitude is about 111.2 km.
	d = Distance(0, 0, 1, 0)
	if math.Abs(d-111195) > 200 {
		t.Errorf("one degree latitude = %v m, want ~111195 m", d)
	}
}

func TestDistanceShortRange(t *testing.T) {
	// ~50 m north of the main office, well inside a 100 m radius.
	d := Distance(13.119129, 80.15127, 13.119129+0.00045, 80.15127)
	if d < 40 || d > 60 {
		t.Errorf("short-range distance = %v m, want ~50 m", d)
	}
}
