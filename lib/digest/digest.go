package digest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/onkernel/diskprobe/lib/ctxio"
	"github.com/zeebo/blake3"
)

// DefaultBufferSize is the read chunk used when none is configured.
const DefaultBufferSize = 1 * datasize.MB

// Sums holds the digests computed in a single pass over a file.
type Sums struct {
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
}

// Engine streams files through SHA-256 and BLAKE3 in bounded chunks.
type Engine struct {
	bufferSize int
	cache      Cache
	log        *slog.Logger
}

// NewEngine creates a digest engine. A zero bufferSize selects
// DefaultBufferSize; a nil cache disables caching.
func NewEngine(bufferSize datasize.ByteSize, cache Cache, log *slog.Logger) *Engine {
	if bufferSize == 0 {
		bufferSize = DefaultBufferSize
	}
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		bufferSize: int(bufferSize.Bytes()),
		cache:      cache,
		log:        log,
	}
}

// Digest returns the lowercase hex SHA-256 of the file at path.
func (e *Engine) Digest(ctx context.Context, path string) (string, error) {
	sums, err := e.Sum(ctx, path)
	if err != nil {
		return "", err
	}
	return sums.SHA256, nil
}

// Sum computes SHA-256 and BLAKE3 of the file at path in one read.
func (e *Engine) Sum(ctx context.Context, path string) (*Sums, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", ErrIO, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrIO, path)
	}

	key := KeyFor(path, info)
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			e.log.DebugContext(ctx, "digest cache hit", "path", path)
			return cached, nil
		}
	}

	sha := sha256.New()
	b3 := blake3.New()
	buf := make([]byte, e.bufferSize)
	if _, err := io.CopyBuffer(io.MultiWriter(sha, b3), ctxio.NewReader(ctx, f), buf); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}

	sums := &Sums{
		SHA256: hex.EncodeToString(sha.Sum(nil)),
		BLAKE3: hex.EncodeToString(b3.Sum(nil)),
	}

	if e.cache != nil {
		if err := e.cache.Put(key, sums); err != nil {
			e.log.WarnContext(ctx, "failed to cache digest", "path", path, "error", err)
		}
	}

	return sums, nil
}
