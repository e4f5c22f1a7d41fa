package distance_test

import (
	"fmt"
	"testing"

	"github.com/UnknownOlympus/meridian/internal/distance"
	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedPoints(n int) []models.Point {
	points := make([]models.Point, n)
	for i := range points {
		points[i] = models.Point{
			Name:      fmt.Sprintf("P%d", i),
			Latitude:  float64(i%90) - 45,
			Longitude: float64(i*7%360) - 180,
		}
	}
	return points
}

func TestPairCount(t *testing.T) {
	assert.Equal(t, 0, distance.PairCount(0))
	assert.Equal(t, 0, distance.PairCount(1))
	assert.Equal(t, 1, distance.PairCount(2))
	assert.Equal(t, 10, distance.PairCount(5))
	assert.Equal(t, 4950, distance.PairCount(100))
}

func TestPairs(t *testing.T) {
	t.Run("exactly n choose 2 distinct pairs", func(t *testing.T) {
		for n := 2; n <= 30; n++ {
			pairs := distance.Pairs(namedPoints(n))
			require.Len(t, pairs, n*(n-1)/2)

			seen := make(map[[2]string]bool, len(pairs))
			for _, pair := range pairs {
				assert.NotEqual(t, pair.A.Name, pair.B.Name, "self pair")

				key := [2]string{pair.A.Name, pair.B.Name}
				if key[0] > key[1] {
					key[0], key[1] = key[1], key[0]
				}
				assert.False(t, seen[key], "duplicate pair %v", key)
				seen[key] = true
			}
		}
	})

	t.Run("generation order", func(t *testing.T) {
		points := namedPoints(4)

		pairs := distance.Pairs(points)

		var got []string
		for _, pair := range pairs {
			got = append(got, pair.A.Name+"-"+pair.B.Name)
		}
		assert.Equal(t, []string{"P0-P1", "P0-P2", "P0-P3", "P1-P2", "P1-P3", "P2-P3"}, got)
	})

	t.Run("distances match haversine", func(t *testing.T) {
		for _, pair := range distance.Pairs(namedPoints(10)) {
			assert.Equal(t, distance.Haversine(pair.A, pair.B), pair.DistanceKm)
		}
	})

	t.Run("fewer than two points", func(t *testing.T) {
		assert.Empty(t, distance.Pairs(nil))
		assert.Empty(t, distance.Pairs(namedPoints(1)))
	})
}
