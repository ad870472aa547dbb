package convert

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments for conversion jobs.
type Metrics struct {
	jobDuration metric.Float64Histogram
	jobsTotal   metric.Int64Counter
}

func newMetrics(meter metric.Meter, q *Queue) (*Metrics, error) {
	jobDuration, err := meter.Float64Histogram(
		"diskprobe_convert_job_duration_seconds",
		metric.WithDescription("Time spent running a conversion job"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	jobsTotal, err := meter.Int64Counter(
		"diskprobe_convert_jobs_total",
		metric.WithDescription("Total number of conversion jobs by final status"),
	)
	if err != nil {
		return nil, err
	}

	queueLength, err := meter.Int64ObservableGauge(
		"diskprobe_convert_queue_length",
		metric.WithDescription("Current number of conversion jobs by state"),
	)
	if err != nil {
		return nil, err
	}

	_, err = meter.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(queueLength, int64(q.PendingCount()), metric.WithAttributes(attribute.String("state", StatusPending)))
			o.ObserveInt64(queueLength, int64(q.ActiveCount()), metric.WithAttributes(attribute.String("state", StatusRunning)))
			return nil
		},
		queueLength,
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		jobDuration: jobDuration,
		jobsTotal:   jobsTotal,
	}, nil
}

func (m *Metrics) recordJob(ctx context.Context, status string, duration time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("status", status))
	m.jobDuration.Record(ctx, duration.Seconds(), attrs)
	m.jobsTotal.Add(ctx, 1, attrs)
}
