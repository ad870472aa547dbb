// Package ctxio provides context-aware io helpers.
package ctxio

import (
	"context"
	"io"
)

// NewReader returns a reader that fails with ctx.Err() once ctx is done.
// The check runs between reads, so a copy loop stops at the next chunk.
func NewReader(ctx context.Context, r io.Reader) io.Reader {
	return &reader{ctx: ctx, r: r}
}

type reader struct {
	ctx context.Context
	r   io.Reader
}

func (c *reader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
