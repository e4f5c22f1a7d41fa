// Package aggregate ranks pair distances and selects the pair nearest the mean.
package aggregate

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// ErrEmptyInput is returned when there are no pairs to aggregate.
var ErrEmptyInput = errors.New("no pair distances to aggregate")

// Summarize sorts the pairs ascending by distance, computes the mean distance
// and selects the pair whose distance is closest to it.
//
// The sort is stable, so equal distances keep the order in which they were
// generated. An exact tie in deviation from the mean resolves to the pair that
// appears first in the sorted order. The input slice is left untouched.
func Summarize(pairs []models.PairDistance) (*models.Summary, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyInput
	}

	sorted := slices.Clone(pairs)
	slices.SortStableFunc(sorted, func(a, b models.PairDistance) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	mean := Mean(sorted)

	closest := sorted[0]
	best := math.Abs(closest.DistanceKm - mean)
	for _, pair := range sorted[1:] {
		if dev := math.Abs(pair.DistanceKm - mean); dev < best {
			closest, best = pair, dev
		}
	}

	return &models.Summary{
		Pairs:         sorted,
		MeanKm:        mean,
		ClosestToMean: closest,
	}, nil
}

// Mean returns the arithmetic mean of the pair distances, or 0 for no pairs.
func Mean(pairs []models.PairDistance) float64 {
	if len(pairs) == 0 {
		return 0
	}

	var sum float64
	for _, pair := range pairs {
		sum += pair.DistanceKm
	}

	return sum / float64(len(pairs))
}
