package images

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"testing"
	"time"

	"github.com/onkernel/diskprobe/lib/digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func newTestManager(t *testing.T) (Manager, *Store) {
	t.Helper()
	s := newTestStore(t)
	mgr, err := NewManager(s, digest.NewEngine(0, nil, nil), nil)
	require.NoError(t, err)
	return mgr, s
}

func TestAnalyze_QCOW2RoundTrip(t *testing.T) {
	mgr, s := newTestManager(t)
	data := append(qcow2Header(), []byte("payload")...)
	path := putImage(t, s, "disk.qcow2", data)

	meta, err := mgr.Analyze(context.Background(), "disk.qcow2")
	require.NoError(t, err)

	want := sha256.Sum256(data)
	assert.Equal(t, "disk.qcow2", meta.Filename)
	assert.Equal(t, TypeQCOW2, meta.Type)
	assert.Equal(t, hex.EncodeToString(want[:]), meta.SHA256)
	assert.Len(t, meta.BLAKE3, 64)
	assert.Equal(t, int64(len(data)), meta.Size)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.InDelta(t, float64(info.ModTime().UnixNano())/float64(time.Second), meta.Modified, 0.001)
	assert.Greater(t, meta.Created, float64(0))
}

func TestAnalyze_SizeMB(t *testing.T) {
	mgr, s := newTestManager(t)
	putImage(t, s, "a.img", make([]byte, 1572864)) // 1.5 MiB

	meta, err := mgr.Analyze(context.Background(), "a.img")
	require.NoError(t, err)
	assert.Equal(t, 1.5, meta.SizeMB)
	assert.Equal(t, TypeRaw, meta.Type)
}

func TestAnalyze_UnknownType(t *testing.T) {
	mgr, s := newTestManager(t)
	putImage(t, s, "notes.txt", []byte("hello"))

	meta, err := mgr.Analyze(context.Background(), "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, TypeUnknown, meta.Type)
}

func TestAnalyze_NotFound(t *testing.T) {
	mgr, _ := newTestManager(t)

	_, err := mgr.Analyze(context.Background(), "missing.iso")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAnalyze_InvalidReference(t *testing.T) {
	mgr, _ := newTestManager(t)

	_, err := mgr.Analyze(context.Background(), "../etc/passwd")
	require.ErrorIs(t, err, ErrInvalidReference)
}

func TestManager_Stats(t *testing.T) {
	mgr, s := newTestManager(t)
	putImage(t, s, "a.img", nil)
	putImage(t, s, "b.iso", nil)
	require.NoError(t, os.WriteFile(s.OutputRoot()+"/compressed-a.img", nil, 0644))

	stats, err := mgr.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Images)
	assert.Equal(t, 1, stats.Processed)
}

func TestNewManager_WithMeter(t *testing.T) {
	s := newTestStore(t)
	mgr, err := NewManager(s, digest.NewEngine(0, nil, nil), noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	putImage(t, s, "a.img", []byte("x"))
	_, err = mgr.Analyze(context.Background(), "a.img")
	require.NoError(t, err)
}
