package distance

import "github.com/UnknownOlympus/meridian/internal/models"

// PairCount returns the number of distinct unordered pairs of n points.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Pairs computes the distance for every distinct unordered pair of points.
// Pairs are enumerated with the outer index ascending and the inner index
// strictly greater, so the result order is deterministic for a given input.
func Pairs(points []models.Point) []models.PairDistance {
	pairs := make([]models.PairDistance, 0, PairCount(len(points)))

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			pairs = append(pairs, models.PairDistance{
				A:          points[i],
				B:          points[j],
				DistanceKm: Haversine(points[i], points[j]),
			})
		}
	}

	return pairs
}
