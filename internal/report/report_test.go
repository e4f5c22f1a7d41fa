package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/UnknownOlympus/meridian/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() *models.Summary {
	london := models.Point{Name: "London"}
	oslo := models.Point{Name: "Oslo"}
	alta := models.Point{Name: "Alta"}

	return &models.Summary{
		Pairs: []models.PairDistance{
			{A: london, B: oslo, DistanceKm: 1153.21},
			{A: oslo, B: alta, DistanceKm: 1159.9},
			{A: london, B: alta, DistanceKm: 2148.04},
		},
		MeanKm:        1487.04,
		ClosestToMean: models.PairDistance{A: oslo, B: alta, DistanceKm: 1159.9},
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestParseFormat(t *testing.T) {
	f, err := report.ParseFormat("table")
	require.NoError(t, err)
	assert.Equal(t, report.FormatTable, f)

	f, err = report.ParseFormat("plain")
	require.NoError(t, err)
	assert.Equal(t, report.FormatPlain, f)

	_, err = report.ParseFormat("xml")
	require.ErrorContains(t, err, `unsupported report format: "xml"`)
}

func TestReporter_Render(t *testing.T) {
	t.Run("plain layout", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, report.New(&buf, report.FormatPlain).Render(sampleSummary()))

		lines := strings.Split(buf.String(), "\n")
		require.GreaterOrEqual(t, len(lines), 6)
		assert.Empty(t, lines[0])
		assert.Equal(t, "London                   Oslo                         1153.2 km", lines[1])
		assert.Equal(t, "Oslo                     Alta                         1159.9 km", lines[2])
		assert.Equal(t, "London                   Alta                         2148.0 km", lines[3])
		assert.Equal(t, "Average distance: 1487.0 km. Closest pair: Oslo – Alta 1159.9 km.", lines[5])
	})

	t.Run("table layout", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, report.New(&buf, report.FormatTable).Render(sampleSummary()))

		out := buf.String()
		assert.Contains(t, out, "PLACE A")
		assert.Contains(t, out, "DISTANCE (KM)")
		assert.Contains(t, out, "1153.2")
		assert.Contains(t, out, "2148.0")
		assert.Less(t, strings.Index(out, "1153.2"), strings.Index(out, "2148.0"))
		assert.Contains(t, out, "Average distance: 1487.0 km. Closest pair: Oslo – Alta 1159.9 km.")
	})

	t.Run("write failure", func(t *testing.T) {
		for _, format := range []report.Format{report.FormatPlain, report.FormatTable} {
			err := report.New(failingWriter{}, format).Render(sampleSummary())
			require.ErrorContains(t, err, "failed to write report")
		}
	})

	t.Run("nil writer panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "report: out is nil", func() {
			report.New(nil, report.FormatTable)
		})
	})
}
