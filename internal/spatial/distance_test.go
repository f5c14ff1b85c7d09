package spatial

import (
	"math"
	"testing"
)

func TestHaversineIdenticalPoints(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{26.4499, 80.3319},   // Kanpur
		{-33.8688, 151.2093}, // Sydney
		{89.9, 179.9},
	}
	for _, p := range points {
		if d := Haversine(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("Haversine(%v, %v, same point): got %v, want 0", p[0], p[1], d)
		}
	}
}

func TestHaversineSymmetry(t *testing.T) {
	d1 := Haversine(26.4499, 80.3319, 28.6139, 77.2090)
	d2 := Haversine(28.6139, 77.2090, 26.4499, 80.3319)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("Haversine not symmetric: %v vs %v", d1, d2)
	}
}

func TestHaversineKnownDistances(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		tol                    float64
	}{
		// One degree of longitude on the equator: 2*pi*R/360.
		{"equator degree", 0, 0, 0, 1, 111.195, 0.01},
		// Quarter of the great circle: pi*R/2.
		{"quarter circle", 0, 0, 0, 90, 10007.543, 0.01},
		{"pole to equator", 0, 0, 90, 0, 10007.543, 0.01},
	}
	for _, tt := range tests {
		got := Haversine(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("%s: got %.3f km, want %.3f km", tt.name, got, tt.want)
		}
	}
}
