package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/onkernel/diskprobe/lib/images"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDataDir(t *testing.T, files map[string][]byte) string {
	t.Helper()
	dir := t.TempDir()
	imagesDir := filepath.Join(dir, "images")
	require.NoError(t, os.MkdirAll(imagesDir, 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "processed"), 0755))
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(imagesDir, name), data, 0644))
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDigestCmd(t *testing.T) {
	data := []byte("imagectl digest")
	dir := setupDataDir(t, map[string][]byte{"a.img": data})

	out, err := execute(t, "digest", "--data-dir", dir, "a.img")
	require.NoError(t, err)

	sum := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(sum[:])+"  a.img\n", out)
}

func TestDigestCmd_NotFound(t *testing.T) {
	dir := setupDataDir(t, nil)

	_, err := execute(t, "digest", "--data-dir", dir, "missing.img")
	require.ErrorIs(t, err, images.ErrNotFound)
}

func TestClassifyCmd(t *testing.T) {
	out, err := execute(t, "classify", "WIN.ISO", "disk.qcow2", "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "iso9660\tWIN.ISO\nqcow2\tdisk.qcow2\nunknown\tnotes.txt\n", out)
}

func TestAnalyzeCmd(t *testing.T) {
	dir := setupDataDir(t, map[string][]byte{"a.vmdk": []byte("KDMV")})

	out, err := execute(t, "analyze", "--data-dir", dir, "a.vmdk")
	require.NoError(t, err)

	var meta images.ImageMetadata
	require.NoError(t, json.Unmarshal([]byte(out), &meta))
	assert.Equal(t, "a.vmdk", meta.Filename)
	assert.Equal(t, images.TypeVMDK, meta.Type)
	assert.Equal(t, int64(4), meta.Size)
}

func TestValidateCmd(t *testing.T) {
	qcow := make([]byte, 64)
	copy(qcow, []byte{'Q', 'F', 'I', 0xfb})
	dir := setupDataDir(t, map[string][]byte{
		"good.qcow2": qcow,
		"bad.qcow2":  make([]byte, 64),
		"raw.img":    []byte("raw"),
	})

	out, err := execute(t, "validate", "--data-dir", dir, "good.qcow2", "raw.img")
	require.NoError(t, err)
	assert.Equal(t, "ok\tgood.qcow2\nok\traw.img\n", out)

	out, err = execute(t, "validate", "--data-dir", dir, "good.qcow2", "bad.qcow2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.True(t, strings.Contains(out, "INVALID\tbad.qcow2\tqcow2 signature not found"))
}

func TestStatsCmd(t *testing.T) {
	dir := setupDataDir(t, map[string][]byte{"a.img": nil, "b.iso": nil})

	out, err := execute(t, "stats", "--data-dir", dir)
	require.NoError(t, err)

	var stats images.StoreStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 2, stats.Images)
	assert.Equal(t, 0, stats.Processed)
}

func TestInvalidBufferSize(t *testing.T) {
	dir := setupDataDir(t, map[string][]byte{"a.img": nil})

	_, err := execute(t, "digest", "--data-dir", dir, "--buffer-size", "lots", "a.img")
	require.Error(t, err)
}
