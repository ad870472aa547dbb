// Package operations dispatches named operations against stored images.
package operations

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/onkernel/diskprobe/lib/convert"
	"github.com/onkernel/diskprobe/lib/images"
	"github.com/onkernel/diskprobe/lib/logger"
	"go.opentelemetry.io/otel/metric"
)

// CompressedLabel prefixes the base name of compression artifacts.
const CompressedLabel = "compressed-"

// opUnknown labels metrics for requests rejected before the operation is parsed.
const opUnknown = "unknown"

// Manager runs operations on images in the store.
type Manager interface {
	// Dispatch validates req and runs the named operation
	Dispatch(ctx context.Context, req Request) (*Result, error)

	// Compress reports the compression target for a stored image and, when a
	// converter is configured, submits a conversion job for it
	Compress(ctx context.Context, name string) (*Result, error)
}

type manager struct {
	store   *images.Store
	queue   *convert.Queue
	metrics *Metrics
}

// NewManager creates an operations manager. queue may be nil, in which case
// compression only reports its target. meter may be nil to disable metrics.
func NewManager(store *images.Store, queue *convert.Queue, meter metric.Meter) (Manager, error) {
	m := &manager{
		store: store,
		queue: queue,
	}

	if meter != nil {
		metrics, err := newMetrics(meter)
		if err != nil {
			return nil, fmt.Errorf("create metrics: %w", err)
		}
		m.metrics = metrics
	}

	return m, nil
}

func (m *manager) Dispatch(ctx context.Context, req Request) (*Result, error) {
	log := logger.FromContext(ctx).With("operation", req.Operation, "filename", req.Filename)
	start := time.Now()
	transition(ctx, log, StateReceived)

	if strings.TrimSpace(req.Operation) == "" || strings.TrimSpace(req.Filename) == "" {
		m.fail(ctx, log, opUnknown, start, ErrMissingField)
		return nil, ErrMissingField
	}

	path, err := m.store.ResolveInput(req.Filename)
	if err != nil {
		m.fail(ctx, log, opUnknown, start, err)
		return nil, err
	}

	op, err := ParseOperation(req.Operation)
	if err != nil {
		m.fail(ctx, log, opUnknown, start, err)
		return nil, err
	}
	transition(ctx, log, StateValidated)

	transition(ctx, log, StateExecuting)
	var result *Result
	switch op {
	case OpValidate:
		result, err = validate(path, req.Filename)
	case OpOptimize:
		result = &Result{Success: true, Message: "Optimization queued"}
	}
	if err != nil {
		m.fail(ctx, log, string(op), start, err)
		return nil, err
	}

	transition(ctx, log, StateSucceeded)
	m.metrics.recordOperation(ctx, string(op), StateSucceeded, start)
	return result, nil
}

func (m *manager) Compress(ctx context.Context, name string) (*Result, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	path, err := m.store.ResolveInput(name)
	if err != nil {
		m.metrics.recordOperation(ctx, "compress", StateFailed, start)
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		m.metrics.recordOperation(ctx, "compress", StateFailed, start)
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", images.ErrNotFound, name)
		}
		return nil, fmt.Errorf("stat image: %w", err)
	}

	output, err := m.store.ResolveOutput(name, CompressedLabel)
	if err != nil {
		m.metrics.recordOperation(ctx, "compress", StateFailed, start)
		return nil, err
	}

	size := info.Size()
	result := &Result{
		Success:      true,
		Message:      "Compression queued",
		OriginalSize: &size,
		Output:       output,
	}

	if m.queue != nil {
		job, existing, err := m.queue.Submit(path, output, m.queue.DefaultFormat())
		if err != nil {
			m.metrics.recordOperation(ctx, "compress", StateFailed, start)
			return nil, fmt.Errorf("submit conversion: %w", err)
		}
		result.JobID = job.ID
		log.InfoContext(ctx, "compression submitted", "filename", name, "job_id", job.ID, "existing", existing)
	}

	m.metrics.recordOperation(ctx, "compress", StateSucceeded, start)
	return result, nil
}

func (m *manager) fail(ctx context.Context, log *slog.Logger, op string, start time.Time, err error) {
	log.DebugContext(ctx, "operation state", "state", StateFailed, "error", err)
	m.metrics.recordOperation(ctx, op, StateFailed, start)
}

func transition(ctx context.Context, log *slog.Logger, state State) {
	log.DebugContext(ctx, "operation state", "state", state)
}

// validate checks the file header against the type implied by name.
func validate(path, name string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	check, err := images.CheckHeader(f, images.Classify(name))
	if err != nil {
		return nil, fmt.Errorf("check header: %w", err)
	}

	valid := check.Valid
	if !valid {
		return &Result{
			Success: true,
			Valid:   &valid,
			Message: "Image failed validation",
			Reason:  check.Reason,
		}, nil
	}
	return &Result{
		Success: true,
		Valid:   &valid,
		Message: "Image appears valid",
	}, nil
}
