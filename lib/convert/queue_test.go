package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

// blockingConverter writes dst once released, or returns ctx.Err().
type blockingConverter struct {
	release chan struct{}
	err     error

	mu    sync.Mutex
	calls int
}

func newBlockingConverter() *blockingConverter {
	return &blockingConverter{release: make(chan struct{})}
}

func (c *blockingConverter) DefaultFormat() Format { return FormatZstd }

func (c *blockingConverter) Convert(ctx context.Context, src, dst string, format Format) error {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	select {
	case <-c.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	if c.err != nil {
		return c.err
	}
	return os.WriteFile(dst, []byte("converted:"+src), 0644)
}

// renameWriter mimics the store's temp-then-rename publication.
type renameWriter struct{}

func (renameWriter) WriteArtifact(ctx context.Context, outPath string, fn func(context.Context, string) error) error {
	tmp := outPath + ".tmp"
	if err := fn(ctx, tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, outPath)
}

func newTestQueue(t *testing.T, conv Converter, cfg QueueConfig) *Queue {
	t.Helper()
	q, err := NewQueue(conv, renameWriter{}, cfg, nil, noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = q.Shutdown(ctx)
	})
	return q
}

func waitForStatus(t *testing.T, q *Queue, id, status string) *Job {
	t.Helper()
	var job *Job
	require.Eventually(t, func() bool {
		got, err := q.Get(id)
		if err != nil {
			return false
		}
		job = got
		return got.Status == status
	}, 5*time.Second, 10*time.Millisecond, "job %s never reached %s", id, status)
	return job
}

func TestQueue_RunsToCompletion(t *testing.T) {
	conv := newBlockingConverter()
	q := newTestQueue(t, conv, QueueConfig{MaxConcurrent: 1})
	out := filepath.Join(t.TempDir(), "compressed-a.img")

	job, existing, err := q.Submit("/src/a.img", out, FormatZstd)
	require.NoError(t, err)
	assert.False(t, existing)
	assert.Equal(t, StatusRunning, job.Status)
	assert.NotEmpty(t, job.ID)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "artifact must not be visible before completion")

	close(conv.release)
	done := waitForStatus(t, q, job.ID, StatusSucceeded)
	assert.NotNil(t, done.FinishedAt)
	assert.Nil(t, done.Error)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "converted:/src/a.img", string(data))
}

func TestQueue_ConcurrencyLimitAndPositions(t *testing.T) {
	conv := newBlockingConverter()
	q := newTestQueue(t, conv, QueueConfig{MaxConcurrent: 1})
	dir := t.TempDir()

	first, _, err := q.Submit("a", filepath.Join(dir, "a"), FormatZstd)
	require.NoError(t, err)
	second, _, err := q.Submit("b", filepath.Join(dir, "b"), FormatZstd)
	require.NoError(t, err)
	third, _, err := q.Submit("c", filepath.Join(dir, "c"), FormatZstd)
	require.NoError(t, err)

	assert.Equal(t, StatusRunning, first.Status)
	assert.Nil(t, first.QueuePosition)
	require.NotNil(t, second.QueuePosition)
	assert.Equal(t, 1, *second.QueuePosition)
	require.NotNil(t, third.QueuePosition)
	assert.Equal(t, 2, *third.QueuePosition)
	assert.Equal(t, 1, q.ActiveCount())
	assert.Equal(t, 2, q.PendingCount())

	close(conv.release)
	waitForStatus(t, q, third.ID, StatusSucceeded)
	waitForStatus(t, q, second.ID, StatusSucceeded)
	assert.Equal(t, 0, q.PendingCount())
}

func TestQueue_DeduplicatesOutput(t *testing.T) {
	conv := newBlockingConverter()
	q := newTestQueue(t, conv, QueueConfig{MaxConcurrent: 2})
	out := filepath.Join(t.TempDir(), "compressed-a.img")

	first, existing, err := q.Submit("a", out, FormatZstd)
	require.NoError(t, err)
	require.False(t, existing)

	again, existing, err := q.Submit("a", out, FormatZstd)
	require.NoError(t, err)
	assert.True(t, existing)
	assert.Equal(t, first.ID, again.ID)

	close(conv.release)
	waitForStatus(t, q, first.ID, StatusSucceeded)

	// Once finished, the same output can be produced again.
	next, existing, err := q.Submit("a", out, FormatZstd)
	require.NoError(t, err)
	assert.False(t, existing)
	assert.NotEqual(t, first.ID, next.ID)
	waitForStatus(t, q, next.ID, StatusSucceeded)
}

func TestQueue_CancelRunning(t *testing.T) {
	conv := newBlockingConverter()
	q := newTestQueue(t, conv, QueueConfig{})
	out := filepath.Join(t.TempDir(), "o")

	job, _, err := q.Submit("a", out, FormatZstd)
	require.NoError(t, err)

	_, err = q.Cancel(job.ID)
	require.NoError(t, err)
	waitForStatus(t, q, job.ID, StatusCancelled)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))

	_, err = q.Cancel(job.ID)
	require.ErrorIs(t, err, ErrJobFinished)
}

func TestQueue_CancelPending(t *testing.T) {
	conv := newBlockingConverter()
	q := newTestQueue(t, conv, QueueConfig{MaxConcurrent: 1})
	dir := t.TempDir()

	_, _, err := q.Submit("a", filepath.Join(dir, "a"), FormatZstd)
	require.NoError(t, err)
	pending, _, err := q.Submit("b", filepath.Join(dir, "b"), FormatZstd)
	require.NoError(t, err)

	cancelled, err := q.Cancel(pending.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Equal(t, 0, q.PendingCount())
}

func TestQueue_Timeout(t *testing.T) {
	conv := newBlockingConverter()
	q := newTestQueue(t, conv, QueueConfig{Timeout: 50 * time.Millisecond})

	job, _, err := q.Submit("a", filepath.Join(t.TempDir(), "o"), FormatZstd)
	require.NoError(t, err)

	failed := waitForStatus(t, q, job.ID, StatusFailed)
	require.NotNil(t, failed.Error)
	assert.Contains(t, *failed.Error, "timed out")
}

func TestQueue_ConverterError(t *testing.T) {
	conv := newBlockingConverter()
	conv.err = errors.New("disk full")
	close(conv.release)
	q := newTestQueue(t, conv, QueueConfig{})
	out := filepath.Join(t.TempDir(), "o")

	job, _, err := q.Submit("a", out, FormatZstd)
	require.NoError(t, err)

	failed := waitForStatus(t, q, job.ID, StatusFailed)
	require.NotNil(t, failed.Error)
	assert.Equal(t, "disk full", *failed.Error)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestQueue_GetUnknown(t *testing.T) {
	q := newTestQueue(t, newBlockingConverter(), QueueConfig{})

	_, err := q.Get("nope")
	require.ErrorIs(t, err, ErrJobNotFound)
	_, err = q.Cancel("nope")
	require.ErrorIs(t, err, ErrJobNotFound)
}

func TestQueue_ForgetsFinishedJobsAfterRetention(t *testing.T) {
	conv := newBlockingConverter()
	close(conv.release)
	q := newTestQueue(t, conv, QueueConfig{Retention: time.Minute})

	var skew atomic.Int64
	q.mu.Lock()
	q.now = func() time.Time { return time.Now().Add(time.Duration(skew.Load())) }
	q.mu.Unlock()

	job, _, err := q.Submit("a", filepath.Join(t.TempDir(), "o"), FormatZstd)
	require.NoError(t, err)
	waitForStatus(t, q, job.ID, StatusSucceeded)

	skew.Store(int64(30 * time.Second))
	_, err = q.Get(job.ID)
	require.NoError(t, err)

	skew.Store(int64(2 * time.Minute))
	_, err = q.Get(job.ID)
	require.ErrorIs(t, err, ErrJobNotFound)
	_, err = q.Cancel(job.ID)
	require.ErrorIs(t, err, ErrJobNotFound)
}

func TestQueue_CapsRetainedJobs(t *testing.T) {
	conv := newBlockingConverter()
	close(conv.release)
	q := newTestQueue(t, conv, QueueConfig{MaxRetained: 2})
	dir := t.TempDir()

	var ids []string
	for _, name := range []string{"a", "b", "c"} {
		job, _, err := q.Submit(name, filepath.Join(dir, name), FormatZstd)
		require.NoError(t, err)
		waitForStatus(t, q, job.ID, StatusSucceeded)
		ids = append(ids, job.ID)
	}

	_, err := q.Get(ids[0])
	require.ErrorIs(t, err, ErrJobNotFound)
	for _, id := range ids[1:] {
		_, err := q.Get(id)
		require.NoError(t, err)
	}
}

func TestQueue_Shutdown(t *testing.T) {
	conv := newBlockingConverter()
	q, err := NewQueue(conv, renameWriter{}, QueueConfig{MaxConcurrent: 1}, nil, nil)
	require.NoError(t, err)
	dir := t.TempDir()

	running, _, err := q.Submit("a", filepath.Join(dir, "a"), FormatZstd)
	require.NoError(t, err)
	pending, _, err := q.Submit("b", filepath.Join(dir, "b"), FormatZstd)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, q.Shutdown(ctx))

	for _, id := range []string{running.ID, pending.ID} {
		job, err := q.Get(id)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, job.Status)
	}

	_, _, err = q.Submit("c", filepath.Join(dir, "c"), FormatZstd)
	require.ErrorIs(t, err, ErrQueueClosed)
}
