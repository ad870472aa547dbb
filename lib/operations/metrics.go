package operations

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments for dispatched operations.
type Metrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	duration, err := meter.Float64Histogram(
		"diskprobe_operations_duration_seconds",
		metric.WithDescription("Time to run an image operation"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	total, err := meter.Int64Counter(
		"diskprobe_operations_total",
		metric.WithDescription("Total number of image operations by outcome"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{duration: duration, total: total}, nil
}

func (m *Metrics) recordOperation(ctx context.Context, op string, state State, start time.Time) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("status", string(state)),
	)
	m.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	m.total.Add(ctx, 1, attrs)
}
