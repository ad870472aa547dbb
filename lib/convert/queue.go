package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nrednav/cuid2"
	"go.opentelemetry.io/otel/metric"
)

// Job status constants
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// DefaultTimeout bounds a single conversion when none is configured.
const DefaultTimeout = 30 * time.Minute

// Finished jobs are forgotten after DefaultRetention, or sooner once more
// than DefaultMaxRetained of them are held.
const (
	DefaultRetention   = 1 * time.Hour
	DefaultMaxRetained = 1000
)

// Job is a snapshot of a conversion job.
type Job struct {
	ID            string     `json:"id"`
	Source        string     `json:"source"`
	Output        string     `json:"output"`
	Format        Format     `json:"format"`
	Status        string     `json:"status"`
	QueuePosition *int       `json:"queue_position,omitempty"`
	Error         *string    `json:"error,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}

// ArtifactWriter publishes an artifact at outPath only after fn has fully
// written it to tmpPath.
type ArtifactWriter interface {
	WriteArtifact(ctx context.Context, outPath string, fn func(ctx context.Context, tmpPath string) error) error
}

// QueueConfig holds Queue settings.
type QueueConfig struct {
	// MaxConcurrent is the number of conversions run at once (min 1)
	MaxConcurrent int

	// Timeout bounds each conversion (DefaultTimeout if zero)
	Timeout time.Duration

	// Retention is how long a finished job stays queryable (DefaultRetention if zero)
	Retention time.Duration

	// MaxRetained caps the number of finished jobs kept (DefaultMaxRetained if zero)
	MaxRetained int
}

type job struct {
	Job
	cancel          context.CancelFunc
	cancelRequested bool
}

// Queue runs conversions in the background with a concurrency limit. At
// most one pending or running job exists per output path; submitting again
// for the same output returns the existing job.
type Queue struct {
	converter Converter
	writer    ArtifactWriter
	cfg       QueueConfig
	log       *slog.Logger
	metrics   *Metrics

	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup

	mu       sync.Mutex
	closed   bool
	jobs     map[string]*job
	active   map[string]*job   // jobID -> running job
	byOutput map[string]string // output path -> unfinished jobID
	pending  []*job
	finished []*job // terminal jobs, oldest first

	now func() time.Time
}

// NewQueue creates a conversion queue. meter may be nil.
func NewQueue(converter Converter, writer ArtifactWriter, cfg QueueConfig, log *slog.Logger, meter metric.Meter) (*Queue, error) {
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retention <= 0 {
		cfg.Retention = DefaultRetention
	}
	if cfg.MaxRetained <= 0 {
		cfg.MaxRetained = DefaultMaxRetained
	}
	if log == nil {
		log = slog.Default()
	}

	ctx, stop := context.WithCancel(context.Background())
	q := &Queue{
		converter: converter,
		writer:    writer,
		cfg:       cfg,
		log:       log,
		ctx:       ctx,
		stop:      stop,
		jobs:      make(map[string]*job),
		active:    make(map[string]*job),
		byOutput:  make(map[string]string),
		now:       time.Now,
	}

	if meter != nil {
		metrics, err := newMetrics(meter, q)
		if err != nil {
			stop()
			return nil, fmt.Errorf("create metrics: %w", err)
		}
		q.metrics = metrics
	}

	return q, nil
}

// DefaultFormat returns the converter's format for compression requests.
func (q *Queue) DefaultFormat() Format {
	return q.converter.DefaultFormat()
}

// Submit enqueues a conversion of source into output. The returned bool is
// true when an unfinished job for output already existed and was returned
// instead of a new one.
func (q *Queue) Submit(source, output string, format Format) (*Job, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, false, ErrQueueClosed
	}
	q.pruneLocked()

	if id, ok := q.byOutput[output]; ok {
		return q.snapshotLocked(q.jobs[id]), true, nil
	}

	j := &job{Job: Job{
		ID:        cuid2.Generate(),
		Source:    source,
		Output:    output,
		Format:    format,
		Status:    StatusPending,
		CreatedAt: q.now(),
	}}
	q.jobs[j.ID] = j
	q.byOutput[output] = j.ID

	if len(q.active) < q.cfg.MaxConcurrent {
		q.startLocked(j)
	} else {
		q.pending = append(q.pending, j)
	}

	q.log.Info("conversion job submitted", "id", j.ID, "source", source, "output", output, "format", format)
	return q.snapshotLocked(j), false, nil
}

// Get returns a snapshot of the job with id.
func (q *Queue) Get(id string) (*Job, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pruneLocked()

	j, ok := q.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	return q.snapshotLocked(j), nil
}

// Cancel stops a pending or running job. A running job reaches the
// cancelled state once its converter returns.
func (q *Queue) Cancel(id string) (*Job, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pruneLocked()

	j, ok := q.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}

	switch j.Status {
	case StatusPending:
		for i, p := range q.pending {
			if p == j {
				q.pending = append(q.pending[:i], q.pending[i+1:]...)
				break
			}
		}
		q.finishLocked(j, StatusCancelled, nil)
	case StatusRunning:
		j.cancelRequested = true
		j.cancel()
	default:
		return nil, fmt.Errorf("%w: %s is %s", ErrJobFinished, id, j.Status)
	}

	return q.snapshotLocked(j), nil
}

// ActiveCount returns the number of running jobs.
func (q *Queue) ActiveCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.active)
}

// PendingCount returns the number of queued jobs.
func (q *Queue) PendingCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Shutdown rejects new jobs, cancels pending and running ones, and waits
// for running conversions to return or ctx to expire.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	q.closed = true
	for _, j := range q.pending {
		q.finishLocked(j, StatusCancelled, nil)
	}
	q.pending = nil
	for _, j := range q.active {
		j.cancelRequested = true
	}
	q.mu.Unlock()

	q.stop()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// startLocked marks j running and launches it. q.mu must be held.
func (q *Queue) startLocked(j *job) {
	ctx, cancel := context.WithTimeout(q.ctx, q.cfg.Timeout)
	now := q.now()
	j.cancel = cancel
	j.Status = StatusRunning
	j.StartedAt = &now
	q.active[j.ID] = j

	q.wg.Add(1)
	go q.run(ctx, j)
}

func (q *Queue) run(ctx context.Context, j *job) {
	defer q.wg.Done()
	defer j.cancel()

	err := q.writer.WriteArtifact(ctx, j.Output, func(ctx context.Context, tmpPath string) error {
		return q.converter.Convert(ctx, j.Source, tmpPath, j.Format)
	})

	q.mu.Lock()
	defer q.mu.Unlock()

	delete(q.active, j.ID)

	switch {
	case err == nil:
		q.finishLocked(j, StatusSucceeded, nil)
		q.log.Info("conversion job succeeded", "id", j.ID, "output", j.Output)
	case j.cancelRequested && errors.Is(err, context.Canceled):
		q.finishLocked(j, StatusCancelled, nil)
		q.log.Info("conversion job cancelled", "id", j.ID)
	default:
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("conversion timed out after %s: %w", q.cfg.Timeout, err)
		}
		q.finishLocked(j, StatusFailed, err)
		q.log.Error("conversion job failed", "id", j.ID, "error", err)
	}

	// Start next job
	if !q.closed && len(q.pending) > 0 && len(q.active) < q.cfg.MaxConcurrent {
		next := q.pending[0]
		q.pending = q.pending[1:]
		q.startLocked(next)
	}
}

// finishLocked moves j to a terminal state. q.mu must be held.
func (q *Queue) finishLocked(j *job, status string, err error) {
	now := q.now()
	j.Status = status
	j.FinishedAt = &now
	if err != nil {
		msg := err.Error()
		j.Error = &msg
	}
	if q.byOutput[j.Output] == j.ID {
		delete(q.byOutput, j.Output)
	}
	q.finished = append(q.finished, j)
	q.pruneLocked()

	var duration time.Duration
	if j.StartedAt != nil {
		duration = now.Sub(*j.StartedAt)
	}
	q.metrics.recordJob(context.Background(), status, duration)
}

// pruneLocked forgets finished jobs past the retention window or beyond the
// retained cap. q.mu must be held.
func (q *Queue) pruneLocked() {
	cutoff := q.now().Add(-q.cfg.Retention)
	n := 0
	for n < len(q.finished) {
		j := q.finished[n]
		if len(q.finished)-n <= q.cfg.MaxRetained && j.FinishedAt.After(cutoff) {
			break
		}
		delete(q.jobs, j.ID)
		n++
	}
	if n > 0 {
		q.finished = append(q.finished[:0:0], q.finished[n:]...)
	}
}

// snapshotLocked copies j and fills in its queue position. q.mu must be held.
func (q *Queue) snapshotLocked(j *job) *Job {
	snap := j.Job
	if j.Status == StatusPending {
		for i, p := range q.pending {
			if p == j {
				pos := i + 1
				snap.QueuePosition = &pos
				break
			}
		}
	}
	return &snap
}
