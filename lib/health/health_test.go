package health

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/onkernel/diskprobe/lib/images"
	"github.com/onkernel/diskprobe/lib/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeStats struct {
	store *images.Store
}

func (s storeStats) Stats(ctx context.Context) (*images.StoreStats, error) {
	return s.store.Stats()
}

type failingStats struct{}

func (failingStats) Stats(ctx context.Context) (*images.StoreStats, error) {
	return nil, errors.New("permission denied")
}

func TestReport(t *testing.T) {
	store := images.NewStore(paths.New(t.TempDir()))
	require.NoError(t, store.EnsureRoots())
	for _, name := range []string{"a.img", "b.iso"} {
		require.NoError(t, os.WriteFile(filepath.Join(store.InputRoot(), name), nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(store.OutputRoot(), "compressed-a.img"), nil, 0644))

	started := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewReporter("", started, storeStats{store})
	r.now = func() time.Time { return started.Add(90 * time.Second) }

	report, err := r.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", report.Status)
	assert.Equal(t, DefaultServiceName, report.Service)
	assert.Equal(t, 90.0, report.Uptime)
	assert.Equal(t, 2, report.Storage.Images)
	assert.Equal(t, 1, report.Storage.Processed)
}

func TestReport_CustomServiceName(t *testing.T) {
	store := images.NewStore(paths.New(t.TempDir()))
	r := NewReporter("diskprobe", time.Now(), storeStats{store})

	report, err := r.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "diskprobe", report.Service)
	assert.GreaterOrEqual(t, report.Uptime, 0.0)
	assert.Zero(t, report.Storage.Images)
}

func TestReport_StatsError(t *testing.T) {
	r := NewReporter("", time.Now(), failingStats{})

	_, err := r.Report(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}
