package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/jszwec/csvutil"
)

// placeRecord is one row of the places dataset. Extra columns are ignored.
type placeRecord struct {
	Name      string  `csv:"Name"`
	Latitude  float64 `csv:"Latitude"`
	Longitude float64 `csv:"Longitude"`
}

var requiredColumns = []string{"Name", "Latitude", "Longitude"}

// CSVSource loads a fixed set of named locations from a CSV file.
type CSVSource struct {
	path string
	log  *slog.Logger
}

// NewCSVSource creates a source reading the dataset at path.
func NewCSVSource(path string, log *slog.Logger) *CSVSource {
	return &CSVSource{path: path, log: log}
}

// Points reads and validates the whole dataset.
func (cs *CSVSource) Points(ctx context.Context) ([]models.Point, error) {
	cs.log.DebugContext(ctx, "Loading dataset", "path", cs.path)

	file, err := os.Open(cs.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}
	defer file.Close()

	points, err := decodePlaces(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDataLoad, cs.path, err)
	}

	if err = validate(points); err != nil {
		return nil, err
	}

	cs.log.DebugContext(ctx, "Dataset loaded", "path", cs.path, "locations", len(points))

	return points, nil
}

func decodePlaces(r io.Reader) ([]models.Point, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("dataset is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	header := dec.Header()
	for _, column := range requiredColumns {
		if !slices.Contains(header, column) {
			return nil, fmt.Errorf("missing required column %q", column)
		}
	}

	var points []models.Point
	for {
		var rec placeRecord
		if err = dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode record: %w", err)
		}

		points = append(points, models.Point{
			Name:      rec.Name,
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
		})
	}

	return points, nil
}
