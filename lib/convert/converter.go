// Package convert turns source disk images into derived artifacts.
//
// A Converter performs one transformation from a source path to a target
// path. The Queue runs conversions in the background with a concurrency
// limit and a per-job timeout, writing through an ArtifactWriter so that a
// target only appears once it is complete.
package convert

import (
	"context"
	"fmt"
	"strings"
)

// Format is the target format of a conversion.
type Format string

const (
	FormatQCOW2 Format = "qcow2"
	FormatZstd  Format = "zst"
	FormatLZ4   Format = "lz4"
)

// Backend names a converter implementation.
type Backend string

const (
	BackendNone    Backend = "none"
	BackendQemuImg Backend = "qemu-img"
	BackendZstd    Backend = "zstd"
	BackendLZ4     Backend = "lz4"
)

// Converter converts src into dst in the given format. Implementations must
// not modify src, must honor ctx cancellation, and may leave a partial dst
// behind on error (callers write to a temporary path).
type Converter interface {
	Convert(ctx context.Context, src, dst string, format Format) error
	// DefaultFormat is the format used for compression requests
	DefaultFormat() Format
}

// ParseBackend parses a backend name, case-insensitively.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "", BackendNone:
		return BackendNone, nil
	case BackendQemuImg, BackendZstd, BackendLZ4:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// New creates the converter for backend. BackendNone has no converter and
// returns ErrUnknownBackend; callers check for it before calling New.
func New(backend Backend, qemuImgPath string) (Converter, error) {
	switch backend {
	case BackendQemuImg:
		return NewQemuImg(qemuImgPath), nil
	case BackendZstd:
		return NewStream(FormatZstd), nil
	case BackendLZ4:
		return NewStream(FormatLZ4), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
