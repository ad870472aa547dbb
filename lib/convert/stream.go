package convert

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/onkernel/diskprobe/lib/ctxio"
	"github.com/pierrec/lz4/v4"
)

// Stream compresses images in-process as a single zstd or lz4 stream.
type Stream struct {
	format Format
}

// NewStream creates an in-process compressor producing format.
func NewStream(format Format) *Stream {
	return &Stream{format: format}
}

func (s *Stream) DefaultFormat() Format {
	return s.format
}

// Convert streams src through the compressor into dst.
func (s *Stream) Convert(ctx context.Context, src, dst string, format Format) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create target: %w", err)
	}
	defer out.Close()

	var w io.WriteCloser
	switch format {
	case FormatZstd:
		enc, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return fmt.Errorf("zstd writer: %w", err)
		}
		w = enc
	case FormatLZ4:
		w = lz4.NewWriter(out)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if _, err := io.Copy(w, ctxio.NewReader(ctx, in)); err != nil {
		w.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish %s stream: %w", format, err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync target: %w", err)
	}
	return nil
}
