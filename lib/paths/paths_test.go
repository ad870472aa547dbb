package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	p := New("/var/lib/diskprobe")

	assert.Equal(t, "/var/lib/diskprobe", p.DataDir())
	assert.Equal(t, "/var/lib/diskprobe/images", p.ImagesDir())
	assert.Equal(t, "/var/lib/diskprobe/processed", p.ProcessedDir())
	assert.Equal(t, "/var/lib/diskprobe/.cache/digests", p.DigestCacheDir())
}
