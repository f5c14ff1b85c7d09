package spatial

import (
	"github.com/golang/geo/s2"
)

// Earth's mean radius
const (
	EarthRadiusKm     = 6371.0
	EarthRadiusMeters = 6371000.0
)

// Haversine returns the great-circle distance in kilometers between two
// WGS84 coordinates on a sphere of mean radius 6371 km. All geo filtering
// and ranking in the directory is based on this function; callers must
// guard against missing coordinates before calling.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}
