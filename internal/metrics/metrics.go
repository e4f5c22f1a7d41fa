package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PointsLoaded   *prometheus.GaugeVec
	PairsComputed  prometheus.Counter
	PairDistanceKm prometheus.Histogram
	StageSeconds   *prometheus.HistogramVec
	Runs           *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		PointsLoaded: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "meridian_points_loaded",
			Help: "Number of locations in the last loaded point set.",
		}, []string{"source"}),
		PairsComputed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "meridian_pairs_computed_total",
			Help: "Total number of pairwise great-circle distances computed.",
		}),
		PairDistanceKm: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "meridian_pair_distance_kilometers",
			Help:    "Distribution of pairwise great-circle distances.",
			Buckets: prometheus.LinearBuckets(0, 2500, 9),
		}),
		StageSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "meridian_stage_duration_seconds",
			Help:    "Duration of each pipeline stage.",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}),
		Runs: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "meridian_runs_total",
			Help: "Total number of pipeline runs by outcome.",
		}, []string{"status"}),
	}
}

// WriteTextfile writes all metrics gathered from reg to path in the text
// exposition format read by the node exporter textfile collector.
func WriteTextfile(path string, reg prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
