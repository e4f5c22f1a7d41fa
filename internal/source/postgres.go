package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/UnknownOlympus/meridian/internal/repository"
)

// PostgresSource loads already geocoded locations from the tasks table.
type PostgresSource struct {
	repo  repository.Interface
	limit int
	log   *slog.Logger
}

// NewPostgresSource creates a source reading at most limit locations from repo.
func NewPostgresSource(repo repository.Interface, limit int, log *slog.Logger) *PostgresSource {
	return &PostgresSource{repo: repo, limit: limit, log: log}
}

// Points fetches and validates the stored locations.
func (ps *PostgresSource) Points(ctx context.Context) ([]models.Point, error) {
	points, err := ps.repo.FetchLocations(ctx, ps.limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}

	if err = validate(points); err != nil {
		return nil, err
	}

	ps.log.DebugContext(ctx, "Locations loaded from database", "locations", len(points))

	return points, nil
}
