package images

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/onkernel/diskprobe/lib/digest"
	"github.com/onkernel/diskprobe/lib/logger"
	"go.opentelemetry.io/otel/metric"
)

// Manager answers "what is this image" queries against the store.
type Manager interface {
	// Analyze stats, digests and classifies a stored image
	Analyze(ctx context.Context, name string) (*ImageMetadata, error)

	// Stats counts entries in the input and output roots
	Stats(ctx context.Context) (*StoreStats, error)
}

type manager struct {
	store   *Store
	digests *digest.Engine
	metrics *Metrics
}

// NewManager creates an image manager. meter may be nil to disable metrics.
func NewManager(store *Store, digests *digest.Engine, meter metric.Meter) (Manager, error) {
	m := &manager{
		store:   store,
		digests: digests,
	}

	if meter != nil {
		metrics, err := newMetrics(meter, store)
		if err != nil {
			return nil, fmt.Errorf("create metrics: %w", err)
		}
		m.metrics = metrics
	}

	return m, nil
}

func (m *manager) Analyze(ctx context.Context, name string) (*ImageMetadata, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	path, err := m.store.ResolveInput(name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("stat image: %w", err)
	}

	sums, err := m.digests.Sum(ctx, path)
	if err != nil {
		m.metrics.recordAnalyze(ctx, "failed", start)
		return nil, fmt.Errorf("digest image: %w", err)
	}

	created, modified := fileTimes(path, info)
	meta := &ImageMetadata{
		Filename: name,
		Size:     info.Size(),
		SizeMB:   math.Round(datasize.ByteSize(info.Size()).MBytes()*100) / 100,
		Created:  unixSeconds(created),
		Modified: unixSeconds(modified),
		SHA256:   sums.SHA256,
		BLAKE3:   sums.BLAKE3,
		Type:     Classify(name),
	}

	m.metrics.recordAnalyze(ctx, "success", start)
	log.DebugContext(ctx, "analyzed image",
		"filename", name,
		"size", meta.Size,
		"type", meta.Type,
		"duration_ms", time.Since(start).Milliseconds())

	return meta, nil
}

func (m *manager) Stats(ctx context.Context) (*StoreStats, error) {
	return m.store.Stats()
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
