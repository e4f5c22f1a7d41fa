package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/meridian/internal/aggregate"
	"github.com/UnknownOlympus/meridian/internal/distance"
	"github.com/UnknownOlympus/meridian/internal/metrics"
	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/UnknownOlympus/meridian/internal/source"
)

// Pipeline runs one distance computation: load points, compute every pair,
// then rank and aggregate them. Each stage consumes the previous stage's
// output and nothing is shared between runs.
type Pipeline struct {
	log        *slog.Logger     // Logger for logging pipeline activities
	source     source.Source    // Source of the point set
	sourceName string           // Name of the source for metrics labeling
	metrics    *metrics.Metrics // Metrics for tracking pipeline performance
}

// NewPipeline creates a new instance of Pipeline.
func NewPipeline(
	log *slog.Logger,
	src source.Source,
	sourceName string,
	metrics *metrics.Metrics,
) *Pipeline {
	return &Pipeline{
		log:        log,
		source:     src,
		sourceName: sourceName,
		metrics:    metrics,
	}
}

// Run executes the pipeline to completion and returns the summary.
// Any stage error aborts the run.
func (p *Pipeline) Run(ctx context.Context) (*models.Summary, error) {
	summary, err := p.run(ctx)
	if err != nil {
		p.metrics.Runs.WithLabelValues("failure").Inc()
		p.log.ErrorContext(ctx, "Pipeline run failed", "source", p.sourceName, "error", err)
		return nil, err
	}

	p.metrics.Runs.WithLabelValues("success").Inc()
	return summary, nil
}

func (p *Pipeline) run(ctx context.Context) (*models.Summary, error) {
	startTime := time.Now()
	points, err := p.source.Points(ctx)
	p.observe("load", startTime)
	if err != nil {
		return nil, fmt.Errorf("failed to load points: %w", err)
	}

	p.metrics.PointsLoaded.WithLabelValues(p.sourceName).Set(float64(len(points)))
	p.log.InfoContext(ctx, "Points loaded", "source", p.sourceName, "points", len(points))

	startTime = time.Now()
	pairs := distance.Pairs(points)
	p.observe("distance", startTime)

	p.metrics.PairsComputed.Add(float64(len(pairs)))
	for _, pair := range pairs {
		p.metrics.PairDistanceKm.Observe(pair.DistanceKm)
	}
	p.log.DebugContext(ctx, "Pair distances computed", "pairs", len(pairs))

	startTime = time.Now()
	summary, err := aggregate.Summarize(pairs)
	p.observe("aggregate", startTime)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate distances: %w", err)
	}

	p.log.InfoContext(ctx, "Distances aggregated",
		"pairs", len(summary.Pairs),
		"mean_km", summary.MeanKm,
		"closest_a", summary.ClosestToMean.A.Name,
		"closest_b", summary.ClosestToMean.B.Name,
	)

	return summary, nil
}

func (p *Pipeline) observe(stage string, startTime time.Time) {
	p.metrics.StageSeconds.WithLabelValues(stage).Observe(time.Since(startTime).Seconds())
}
