package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// Source is an interface that defines a method for producing a point set.
// Implementations return at least two valid points or an error.
type Source interface {
	Points(ctx context.Context) ([]models.Point, error)
}

// Common errors for point sources.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDataLoad        = errors.New("failed to load dataset")
)

// MinPoints is the smallest point set that yields at least one pair.
const MinPoints = 2

// validate checks the invariants every loaded dataset must hold.
func validate(points []models.Point) error {
	if len(points) < MinPoints {
		return fmt.Errorf("%w: dataset has %d location(s), at least %d are required",
			ErrDataLoad, len(points), MinPoints)
	}

	for i, p := range points {
		if !p.Valid() {
			return fmt.Errorf("%w: location %d (%q) has out of range coordinates: latitude %v, longitude %v",
				ErrDataLoad, i+1, p.Name, p.Latitude, p.Longitude)
		}
	}

	return nil
}
