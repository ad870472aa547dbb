package operations

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/onkernel/diskprobe/lib/convert"
	"github.com/onkernel/diskprobe/lib/images"
	"github.com/onkernel/diskprobe/lib/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func newTestStore(t *testing.T) *images.Store {
	t.Helper()
	s := images.NewStore(paths.New(t.TempDir()))
	require.NoError(t, s.EnsureRoots())
	return s
}

func putImage(t *testing.T, s *images.Store, name string, data []byte) {
	t.Helper()
	path := filepath.Join(s.InputRoot(), name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func newTestManager(t *testing.T, s *images.Store, q *convert.Queue) Manager {
	t.Helper()
	m, err := NewManager(s, q, noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	return m
}

func qcow2Header() []byte {
	data := make([]byte, 512)
	copy(data, []byte{'Q', 'F', 'I', 0xfb})
	return data
}

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation("validate")
	require.NoError(t, err)
	assert.Equal(t, OpValidate, op)

	op, err = ParseOperation("optimize")
	require.NoError(t, err)
	assert.Equal(t, OpOptimize, op)

	for _, name := range []string{"defrag", "VALIDATE", "", "validate ", " optimize"} {
		_, err := ParseOperation(name)
		require.ErrorIs(t, err, ErrUnsupportedOperation, name)
	}
}

func TestDispatch_ValidateMatchingHeader(t *testing.T) {
	s := newTestStore(t)
	putImage(t, s, "disk.qcow2", qcow2Header())
	m := newTestManager(t, s, nil)

	res, err := m.Dispatch(context.Background(), Request{Operation: "validate", Filename: "disk.qcow2"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.NotNil(t, res.Valid)
	assert.True(t, *res.Valid)
	assert.Equal(t, "Image appears valid", res.Message)
	assert.Empty(t, res.Reason)
}

func TestDispatch_ValidateMismatchedHeader(t *testing.T) {
	s := newTestStore(t)
	putImage(t, s, "disk.qcow2", make([]byte, 512))
	m := newTestManager(t, s, nil)

	res, err := m.Dispatch(context.Background(), Request{Operation: "validate", Filename: "disk.qcow2"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.NotNil(t, res.Valid)
	assert.False(t, *res.Valid)
	assert.Equal(t, "qcow2 signature not found", res.Reason)
}

func TestDispatch_ValidateRawAlwaysValid(t *testing.T) {
	s := newTestStore(t)
	putImage(t, s, "a.img", []byte("anything"))
	m := newTestManager(t, s, nil)

	res, err := m.Dispatch(context.Background(), Request{Operation: "validate", Filename: "a.img"})
	require.NoError(t, err)
	require.NotNil(t, res.Valid)
	assert.True(t, *res.Valid)
}

func TestDispatch_OptimizeLeavesSourceUntouched(t *testing.T) {
	s := newTestStore(t)
	putImage(t, s, "a.img", []byte("payload"))
	before, err := os.Stat(filepath.Join(s.InputRoot(), "a.img"))
	require.NoError(t, err)
	m := newTestManager(t, s, nil)

	res, err := m.Dispatch(context.Background(), Request{Operation: "optimize", Filename: "a.img"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Optimization queued", res.Message)
	assert.Nil(t, res.Valid)

	after, err := os.Stat(filepath.Join(s.InputRoot(), "a.img"))
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
	assert.Equal(t, before.Size(), after.Size())

	entries, err := os.ReadDir(s.OutputRoot())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDispatch_MissingFields(t *testing.T) {
	m := newTestManager(t, newTestStore(t), nil)

	for _, req := range []Request{
		{Filename: "a.img"},
		{Operation: "validate"},
		{Operation: " ", Filename: " "},
	} {
		_, err := m.Dispatch(context.Background(), req)
		require.ErrorIs(t, err, ErrMissingField)
		require.ErrorIs(t, err, images.ErrInvalidReference)
	}
}

func TestDispatch_NotFoundBeforeUnknownOperation(t *testing.T) {
	m := newTestManager(t, newTestStore(t), nil)

	_, err := m.Dispatch(context.Background(), Request{Operation: "defrag", Filename: "missing.img"})
	require.ErrorIs(t, err, images.ErrNotFound)
}

func TestDispatch_UnknownOperation(t *testing.T) {
	s := newTestStore(t)
	putImage(t, s, "a.img", []byte("x"))
	m := newTestManager(t, s, nil)

	_, err := m.Dispatch(context.Background(), Request{Operation: "defrag", Filename: "a.img"})
	require.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestDispatch_TraversalRejected(t *testing.T) {
	m := newTestManager(t, newTestStore(t), nil)

	_, err := m.Dispatch(context.Background(), Request{Operation: "validate", Filename: "../etc/passwd"})
	require.ErrorIs(t, err, images.ErrInvalidReference)
}

func TestCompress_ReportsIntent(t *testing.T) {
	s := newTestStore(t)
	putImage(t, s, "a.img", make([]byte, 1048576))
	m := newTestManager(t, s, nil)

	res, err := m.Compress(context.Background(), "a.img")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Compression queued", res.Message)
	require.NotNil(t, res.OriginalSize)
	assert.Equal(t, int64(1048576), *res.OriginalSize)
	assert.Equal(t, filepath.Join(s.OutputRoot(), "compressed-a.img"), res.Output)
	assert.Empty(t, res.JobID)

	_, err = os.Stat(res.Output)
	assert.True(t, os.IsNotExist(err), "no artifact is written without a converter")
}

func TestCompress_NotFound(t *testing.T) {
	m := newTestManager(t, newTestStore(t), nil)

	_, err := m.Compress(context.Background(), "missing.img")
	require.ErrorIs(t, err, images.ErrNotFound)
}

func TestCompress_SubmitsConversionJob(t *testing.T) {
	s := newTestStore(t)
	payload := []byte("a disk image that compresses well well well well well")
	putImage(t, s, "a.img", payload)

	q, err := convert.NewQueue(convert.NewStream(convert.FormatZstd), s, convert.QueueConfig{}, nil, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = q.Shutdown(ctx)
	})
	m := newTestManager(t, s, q)

	res, err := m.Compress(context.Background(), "a.img")
	require.NoError(t, err)
	require.NotEmpty(t, res.JobID)

	require.Eventually(t, func() bool {
		job, err := q.Get(res.JobID)
		return err == nil && job.Status == convert.StatusSucceeded
	}, 5*time.Second, 10*time.Millisecond)

	f, err := os.Open(res.Output)
	require.NoError(t, err)
	defer f.Close()
	dec, err := zstd.NewReader(f)
	require.NoError(t, err)
	defer dec.Close()

	got, err := io.ReadAll(dec)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
