package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/meridian/internal/models"
)

// FetchLocations retrieves geocoded locations to be used as a fixed point set.
// It returns tasks that already have both coordinates and a non-empty address,
// using the address as the location name. The results are ordered by creation
// date and limited to the specified count.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - limit: The maximum number of locations to retrieve.
//
// Returns:
// - A slice of models.Point in creation order.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchLocations(ctx context.Context, limit int) ([]models.Point, error) {
	var points []models.Point
	query := `
		SELECT address, latitude, longitude
		FROM public.tasks
		WHERE
			latitude IS NOT NULL
			AND longitude IS NOT NULL
			AND address IS NOT NULL AND address <> ''
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query geocoded locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var point models.Point
		if errScan := rows.Scan(&point.Name, &point.Latitude, &point.Longitude); errScan != nil {
			return nil, fmt.Errorf("failed to scan geocoded location: %w", errScan)
		}
		r.log.DebugContext(ctx, "Loaded geocoded location.",
			"name", point.Name, "latitude", point.Latitude, "longitude", point.Longitude)
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return points, nil
}
