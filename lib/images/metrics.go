package images

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments for image analysis.
type Metrics struct {
	analyzeDuration metric.Float64Histogram
	analyzeTotal    metric.Int64Counter
}

func newMetrics(meter metric.Meter, store *Store) (*Metrics, error) {
	analyzeDuration, err := meter.Float64Histogram(
		"diskprobe_images_analyze_duration_seconds",
		metric.WithDescription("Time to stat, digest and classify an image"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	analyzeTotal, err := meter.Int64Counter(
		"diskprobe_images_analyze_total",
		metric.WithDescription("Total number of image analyses"),
	)
	if err != nil {
		return nil, err
	}

	entriesTotal, err := meter.Int64ObservableGauge(
		"diskprobe_store_entries",
		metric.WithDescription("Number of entries per storage root"),
	)
	if err != nil {
		return nil, err
	}

	_, err = meter.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			stats, err := store.Stats()
			if err != nil {
				return nil
			}
			o.ObserveInt64(entriesTotal, int64(stats.Images), metric.WithAttributes(attribute.String("root", "images")))
			o.ObserveInt64(entriesTotal, int64(stats.Processed), metric.WithAttributes(attribute.String("root", "processed")))
			return nil
		},
		entriesTotal,
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		analyzeDuration: analyzeDuration,
		analyzeTotal:    analyzeTotal,
	}, nil
}

// recordAnalyze is a no-op on a nil receiver.
func (m *Metrics) recordAnalyze(ctx context.Context, status string, start time.Time) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("status", status))
	m.analyzeDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	m.analyzeTotal.Add(ctx, 1, attrs)
}
