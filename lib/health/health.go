// Package health reports service liveness and storage counts.
package health

import (
	"context"
	"fmt"
	"time"

	"github.com/onkernel/diskprobe/lib/images"
)

// DefaultServiceName is reported when no service name is configured.
const DefaultServiceName = "python-image-processor"

// StatsSource supplies storage entry counts.
type StatsSource interface {
	Stats(ctx context.Context) (*images.StoreStats, error)
}

// Report is the health payload.
type Report struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Uptime  float64           `json:"uptime"`
	Storage images.StoreStats `json:"storage"`
}

// Reporter builds health reports. It performs no writes.
type Reporter struct {
	service string
	started time.Time
	stats   StatsSource
	now     func() time.Time
}

// NewReporter creates a reporter whose uptime counts from started.
func NewReporter(service string, started time.Time, stats StatsSource) *Reporter {
	if service == "" {
		service = DefaultServiceName
	}
	return &Reporter{
		service: service,
		started: started,
		stats:   stats,
		now:     time.Now,
	}
}

// Report returns the current health. It fails only when the storage roots
// cannot be read.
func (r *Reporter) Report(ctx context.Context) (*Report, error) {
	stats, err := r.stats.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage stats: %w", err)
	}
	return &Report{
		Status:  "ok",
		Service: r.service,
		Uptime:  r.now().Sub(r.started).Seconds(),
		Storage: *stats,
	}, nil
}
