// Package report prints a distance summary.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Format selects the layout of the pair list.
type Format string

const (
	// FormatTable renders the pairs as a box-drawn table.
	FormatTable Format = "table"
	// FormatPlain renders one fixed-width line per pair.
	FormatPlain Format = "plain"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatTable, FormatPlain:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported report format: %q (available: table, plain)", name)
	}
}

// Reporter writes summaries to an output stream.
type Reporter struct {
	out    io.Writer
	format Format
}

// New creates a reporter writing to out. It panics if out is nil.
func New(out io.Writer, format Format) *Reporter {
	if out == nil {
		panic("report: out is nil")
	}
	return &Reporter{out: out, format: format}
}

// Render prints the sorted pairs followed by the mean and the pair closest to it.
func (r *Reporter) Render(summary *models.Summary) error {
	var err error
	switch r.format {
	case FormatPlain:
		err = r.renderPlain(summary)
	default:
		err = r.renderTable(summary)
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	closest := summary.ClosestToMean
	_, err = fmt.Fprintf(r.out, "\nAverage distance: %.1f km. Closest pair: %s – %s %.1f km.\n",
		summary.MeanKm, closest.A.Name, closest.B.Name, closest.DistanceKm)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func (r *Reporter) renderPlain(summary *models.Summary) error {
	if _, err := fmt.Fprintln(r.out); err != nil {
		return err
	}
	for _, pair := range summary.Pairs {
		if _, err := fmt.Fprintf(r.out, "%-25s%-25s%10.1f km\n", pair.A.Name, pair.B.Name, pair.DistanceKm); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) renderTable(summary *models.Summary) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Place A", "Place B", "Distance (km)"})

	for _, pair := range summary.Pairs {
		t.AppendRow(table.Row{pair.A.Name, pair.B.Name, strconv.FormatFloat(pair.DistanceKm, 'f', 1, 64)})
	}

	t.AppendFooter(table.Row{"", "Pairs", strconv.Itoa(len(summary.Pairs))})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	_, err := fmt.Fprintln(r.out, t.Render())
	return err
}
