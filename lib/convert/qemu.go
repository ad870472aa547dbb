package convert

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// QemuImg converts images by invoking the qemu-img binary.
type QemuImg struct {
	path string
}

// NewQemuImg creates a converter that runs the qemu-img binary at path.
func NewQemuImg(path string) *QemuImg {
	if path == "" {
		path = "qemu-img"
	}
	return &QemuImg{path: path}
}

func (q *QemuImg) DefaultFormat() Format {
	return FormatQCOW2
}

// Convert runs `qemu-img convert -c -O qcow2 src dst`. The process is
// killed when ctx is done.
func (q *QemuImg) Convert(ctx context.Context, src, dst string, format Format) error {
	if format != FormatQCOW2 {
		return fmt.Errorf("%w: qemu-img produces qcow2, got %q", ErrUnsupportedFormat, format)
	}

	cmd := exec.CommandContext(ctx, q.path, q.args(src, dst)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("qemu-img convert failed: %w, output: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// args builds the qemu-img argument list.
// -c: compress qcow2 clusters
// -O: output format
func (q *QemuImg) args(src, dst string) []string {
	return []string{"convert", "-c", "-O", string(FormatQCOW2), src, dst}
}
