// Package distance computes great-circle distances on a spherical Earth.
package distance

import (
	"math"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// EarthRadiusKm is the mean Earth radius used for the spherical approximation.
const EarthRadiusKm = 6371.0

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Haversine returns the great-circle distance between two points in kilometres.
// Identical coordinates yield exactly 0 and antipodal points yield π·R.
func Haversine(a, b models.Point) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// rounding can push h just outside [0, 1]
	h = math.Min(math.Max(h, 0), 1)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}
