package repository

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/jackc/pgx/v5"
)

// Database is the subset of a pgx pool the repository needs.
// It is satisfied by *pgxpool.Pool and by pgxmock pools.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Repository struct {
	db  Database
	log *slog.Logger
}

type Interface interface {
	FetchLocations(ctx context.Context, limit int) ([]models.Point, error)
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
