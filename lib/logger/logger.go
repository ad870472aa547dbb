// Package logger provides subsystem-scoped slog loggers and context plumbing.
package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Subsystem names used as the "subsystem" attribute on every record.
const (
	SubsystemAPI        = "api"
	SubsystemImages     = "images"
	SubsystemOperations = "operations"
	SubsystemConvert    = "convert"
	SubsystemDigest     = "digest"
)

type contextKey struct{}

// Config holds the default level and per-subsystem overrides.
type Config struct {
	DefaultLevel    slog.Level
	SubsystemLevels map[string]slog.Level
}

// NewConfig builds a Config from LOG_LEVEL and LOG_LEVEL_<SUBSYSTEM>
// environment variables. Unset or unparseable values fall back to info.
func NewConfig() Config {
	cfg := Config{
		DefaultLevel:    parseLevel(os.Getenv("LOG_LEVEL"), slog.LevelInfo),
		SubsystemLevels: make(map[string]slog.Level),
	}
	for _, sub := range []string{SubsystemAPI, SubsystemImages, SubsystemOperations, SubsystemConvert, SubsystemDigest} {
		if v := os.Getenv("LOG_LEVEL_" + strings.ToUpper(sub)); v != "" {
			cfg.SubsystemLevels[sub] = parseLevel(v, cfg.DefaultLevel)
		}
	}
	return cfg
}

// WithDebug lowers the default level to debug when enabled.
func (c Config) WithDebug(debug bool) Config {
	if debug {
		c.DefaultLevel = slog.LevelDebug
	}
	return c
}

// LevelFor returns the effective level for a subsystem.
func (c Config) LevelFor(subsystem string) slog.Level {
	if lvl, ok := c.SubsystemLevels[subsystem]; ok {
		return lvl
	}
	return c.DefaultLevel
}

// New returns the root logger: JSON to stdout, teed to otelHandler when it
// is non-nil.
func New(cfg Config, otelHandler slog.Handler) *slog.Logger {
	return slog.New(newHandler(os.Stdout, cfg.DefaultLevel, otelHandler))
}

// NewSubsystemLogger returns a logger tagged with the subsystem name, at the
// subsystem's configured level. otelHandler may be nil.
func NewSubsystemLogger(subsystem string, cfg Config, otelHandler slog.Handler) *slog.Logger {
	return slog.New(newHandler(os.Stdout, cfg.LevelFor(subsystem), otelHandler)).With("subsystem", subsystem)
}

func newHandler(w io.Writer, level slog.Level, otelHandler slog.Handler) slog.Handler {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	if otelHandler == nil {
		return h
	}
	return &teeHandler{level: level, handlers: []slog.Handler{h, otelHandler}}
}

// teeHandler sends each record at or above level to every handler.
type teeHandler struct {
	level    slog.Level
	handlers []slog.Handler
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= t.level
}

func (t *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t.handlers {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.derive(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	return t.derive(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (t *teeHandler) derive(fn func(slog.Handler) slog.Handler) slog.Handler {
	handlers := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		handlers[i] = fn(h)
	}
	return &teeHandler{level: t.level, handlers: handlers}
}

// AddToContext returns a copy of ctx carrying log.
func AddToContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}

func parseLevel(s string, fallback slog.Level) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return fallback
	}
	return lvl
}
