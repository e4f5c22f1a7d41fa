package source_test

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/UnknownOlympus/meridian/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVSource_Points(t *testing.T) {
	defer filet.CleanUp(t)
	ctx := t.Context()
	logger := slog.Default()

	load := func(t *testing.T, content string) ([]models.Point, error) {
		t.Helper()
		file := filet.TmpFile(t, "", content)
		return source.NewCSVSource(file.Name(), logger).Points(ctx)
	}

	t.Run("valid dataset", func(t *testing.T) {
		points, err := load(t, "Name,Latitude,Longitude\n"+
			"London,51.5074,-0.1278\n"+
			"Oslo,59.9139,10.7522\n"+
			"Vardø,70.3705,31.1107\n")

		require.NoError(t, err)
		assert.Equal(t, []models.Point{
			{Name: "London", Latitude: 51.5074, Longitude: -0.1278},
			{Name: "Oslo", Latitude: 59.9139, Longitude: 10.7522},
			{Name: "Vardø", Latitude: 70.3705, Longitude: 31.1107},
		}, points)
	})

	t.Run("extra columns and reordered header", func(t *testing.T) {
		points, err := load(t, "Country,Longitude,Name,Latitude\n"+
			"NO,23.2716,Alta,69.9689\n"+
			"NO, 10.7522, Oslo, 59.9139\n")

		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, "Alta", points[0].Name)
		assert.Equal(t, "Oslo", points[1].Name)
		assert.InDelta(t, 10.7522, points[1].Longitude, 1e-9)
	})

	t.Run("missing file", func(t *testing.T) {
		dir := filet.TmpDir(t, "")
		src := source.NewCSVSource(filepath.Join(dir, "places.csv"), logger)

		points, err := src.Points(ctx)

		require.ErrorIs(t, err, source.ErrDataLoad)
		assert.Nil(t, points)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := load(t, "")

		require.ErrorIs(t, err, source.ErrDataLoad)
		assert.ErrorContains(t, err, "dataset is empty")
	})

	t.Run("missing column", func(t *testing.T) {
		_, err := load(t, "Name,Latitude\nLondon,51.5\nOslo,59.9\n")

		require.ErrorIs(t, err, source.ErrDataLoad)
		assert.ErrorContains(t, err, `missing required column "Longitude"`)
	})

	t.Run("malformed value", func(t *testing.T) {
		_, err := load(t, "Name,Latitude,Longitude\nLondon,north,-0.1\nOslo,59.9,10.7\n")

		require.ErrorIs(t, err, source.ErrDataLoad)
		assert.ErrorContains(t, err, "failed to decode record")
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		_, err := load(t, "Name,Latitude,Longitude\nLondon,51.5,-0.1\nNowhere,95,10\n")

		require.ErrorIs(t, err, source.ErrDataLoad)
		assert.ErrorContains(t, err, `"Nowhere"`)
	})

	t.Run("single location", func(t *testing.T) {
		_, err := load(t, "Name,Latitude,Longitude\nLondon,51.5,-0.1\n")

		require.ErrorIs(t, err, source.ErrDataLoad)
		assert.ErrorContains(t, err, "at least 2 are required")
	})
}
