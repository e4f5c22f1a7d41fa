package source

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// LocationPrefix is the name prefix of generated locations.
const LocationPrefix = "Location"

// RandomSource generates points uniformly distributed over the sphere's surface.
type RandomSource struct {
	count int
	rng   *rand.Rand
}

// NewRandomSource creates a generator of count points driven by rng.
func NewRandomSource(count int, rng *rand.Rand) (*RandomSource, error) {
	if count < MinPoints {
		return nil, fmt.Errorf("%w: the number of locations has to be at least %d, got %d",
			ErrInvalidArgument, MinPoints, count)
	}

	return &RandomSource{count: count, rng: rng}, nil
}

// NewSeededRandomSource creates a generator with a deterministic PCG seed.
func NewSeededRandomSource(count int, seed uint64) (*RandomSource, error) {
	return NewRandomSource(count, rand.New(rand.NewPCG(seed, seed)))
}

// Points generates Location1..LocationN.
//
// Longitude is uniform on [-180, 180). Latitude is asin(2u-1) for u uniform on
// [0, 1), which makes sin(latitude) uniform and therefore the points uniform in
// surface area. Drawing latitude uniformly in degrees would crowd the poles.
func (rs *RandomSource) Points(_ context.Context) ([]models.Point, error) {
	points := make([]models.Point, rs.count)

	for i := range points {
		z := 2*rs.rng.Float64() - 1
		points[i] = models.Point{
			Name:      fmt.Sprintf("%s%d", LocationPrefix, i+1),
			Latitude:  math.Asin(z) * 180 / math.Pi,
			Longitude: rs.rng.Float64()*360 - 180,
		}
	}

	return points, nil
}
