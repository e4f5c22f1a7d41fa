package source

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/UnknownOlympus/meridian/internal/repository"
)

// Mode selects how the point set is produced.
type Mode int

const (
	// ModeFixed loads a predetermined set of real-world locations.
	ModeFixed Mode = iota
	// ModeRandom synthesizes Count points uniformly over the sphere.
	ModeRandom
)

// Dataset represents the backend of the fixed mode.
type Dataset string

const (
	// DatasetCSV reads locations from a CSV file.
	DatasetCSV Dataset = "csv"
	// DatasetPostgres reads geocoded locations from PostgreSQL.
	DatasetPostgres Dataset = "postgres"
)

// Config holds configuration for creating a point source.
type Config struct {
	Mode    Mode                 // Mode is fixed (no count argument) or random
	Count   int                  // Count of points to generate in random mode
	Seed    uint64               // Seed for random mode, 0 picks a fresh one
	Dataset Dataset              // Dataset backend for fixed mode
	Path    string               // Path to the CSV dataset
	Repo    repository.Interface // Repo backs the PostgreSQL dataset
	Limit   int                  // Limit of rows read from PostgreSQL
	Logger  *slog.Logger         // Logger for the source
}

// Fixed returns a configuration for the fixed dataset mode.
func Fixed(dataset Dataset) Config {
	return Config{Mode: ModeFixed, Dataset: dataset}
}

// Random returns a configuration generating count points.
func Random(count int) Config {
	return Config{Mode: ModeRandom, Count: count}
}

// Name returns a short label of the configured source, used for metrics and logs.
func (c Config) Name() string {
	if c.Mode == ModeRandom {
		return "random"
	}
	return string(c.Dataset)
}

// NewSource creates a point source based on the provided configuration.
//
// Returns an error if the mode or dataset is unsupported or if the
// configuration is incomplete.
func NewSource(config Config) (Source, error) {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	switch config.Mode {
	case ModeRandom:
		return newRandomSource(config)
	case ModeFixed:
		return newFixedSource(config)
	default:
		return nil, fmt.Errorf("unsupported source mode: %d", config.Mode)
	}
}

func newRandomSource(config Config) (Source, error) {
	seed := config.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	config.Logger.Info("Generating random locations", "count", config.Count, "seed", seed)

	src, err := NewSeededRandomSource(config.Count, seed)
	if err != nil {
		return nil, err
	}

	return src, nil
}

func newFixedSource(config Config) (Source, error) {
	switch config.Dataset {
	case DatasetCSV:
		if config.Path == "" {
			return nil, errors.New("dataset path is required for csv source")
		}
		return NewCSVSource(config.Path, config.Logger), nil
	case DatasetPostgres:
		if config.Repo == nil {
			return nil, errors.New("repository is required for postgres source")
		}
		if config.Limit <= 0 {
			config.Limit = 1000
			config.Logger.Warn("Row limit for postgres source not set, set a default value", "value", config.Limit)
		}
		return NewPostgresSource(config.Repo, config.Limit, config.Logger), nil
	default:
		return nil, fmt.Errorf("unsupported dataset type: %s", config.Dataset)
	}
}
