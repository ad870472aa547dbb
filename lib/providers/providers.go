package providers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/onkernel/diskprobe/cmd/api/config"
	"github.com/onkernel/diskprobe/lib/convert"
	"github.com/onkernel/diskprobe/lib/digest"
	"github.com/onkernel/diskprobe/lib/health"
	"github.com/onkernel/diskprobe/lib/images"
	"github.com/onkernel/diskprobe/lib/logger"
	"github.com/onkernel/diskprobe/lib/operations"
	"github.com/onkernel/diskprobe/lib/otel"
	"github.com/onkernel/diskprobe/lib/paths"
)

// ProvideContext provides a base context
func ProvideContext() context.Context {
	return context.Background()
}

// ProvideLoggerConfig provides log levels, lowered to debug when DEBUG is set
func ProvideLoggerConfig(cfg *config.Config) logger.Config {
	return logger.NewConfig().WithDebug(cfg.Debug)
}

// ProvideLogger provides a structured logger, exporting over OTLP when enabled
func ProvideLogger(cfg logger.Config, mp *otel.Provider) *slog.Logger {
	return logger.New(cfg, mp.LogHandler())
}

// ProvideConfig provides the application configuration
func ProvideConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProvidePaths provides the data directory layout
func ProvidePaths(cfg *config.Config) *paths.Paths {
	return paths.New(cfg.DataDir)
}

// ProvideMeterProvider provides the OTel meter provider
func ProvideMeterProvider(ctx context.Context, cfg *config.Config) (*otel.Provider, func(), error) {
	p, err := otel.Init(ctx, otel.Config{
		Enabled:     cfg.OtelEnabled,
		Endpoint:    cfg.OtelEndpoint,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = p.Shutdown(shutdownCtx)
	}
	return p, cleanup, nil
}

// ProvideStore provides the image store with both roots created
func ProvideStore(p *paths.Paths) (*images.Store, error) {
	store := images.NewStore(p)
	if err := store.EnsureRoots(); err != nil {
		return nil, fmt.Errorf("ensure storage roots: %w", err)
	}
	return store, nil
}

// ProvideDigestEngine provides the digest engine, backed by a badger cache
// when DIGEST_CACHE is enabled
func ProvideDigestEngine(cfg *config.Config, p *paths.Paths, logCfg logger.Config, mp *otel.Provider) (*digest.Engine, func(), error) {
	log := logger.NewSubsystemLogger(logger.SubsystemDigest, logCfg, mp.LogHandler())

	if !cfg.DigestCache {
		return digest.NewEngine(cfg.DigestBufferSize, nil, log), func() {}, nil
	}

	cache, err := digest.OpenBadgerCache(p.DigestCacheDir())
	if err != nil {
		return nil, nil, fmt.Errorf("open digest cache: %w", err)
	}
	cleanup := func() {
		if err := cache.Close(); err != nil {
			log.Error("failed to close digest cache", "error", err)
		}
	}
	return digest.NewEngine(cfg.DigestBufferSize, cache, log), cleanup, nil
}

// ProvideImageManager provides the image manager
func ProvideImageManager(store *images.Store, engine *digest.Engine, mp *otel.Provider) (images.Manager, error) {
	return images.NewManager(store, engine, mp.Meter("diskprobe/images"))
}

// ProvideConvertQueue provides the conversion job queue, or nil when no
// converter backend is configured
func ProvideConvertQueue(cfg *config.Config, store *images.Store, logCfg logger.Config, mp *otel.Provider) (*convert.Queue, func(), error) {
	backend, err := convert.ParseBackend(cfg.Converter)
	if err != nil {
		return nil, nil, err
	}
	if backend == convert.BackendNone {
		return nil, func() {}, nil
	}

	converter, err := convert.New(backend, cfg.QemuImgPath)
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewSubsystemLogger(logger.SubsystemConvert, logCfg, mp.LogHandler())
	queue, err := convert.NewQueue(converter, store, convert.QueueConfig{
		MaxConcurrent: cfg.MaxConcurrentJobs,
		Timeout:       cfg.ConvertTimeout,
		Retention:     cfg.JobRetention,
	}, log, mp.Meter("diskprobe/convert"))
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := queue.Shutdown(ctx); err != nil {
			log.Error("conversion queue did not drain", "error", err)
		}
	}
	return queue, cleanup, nil
}

// ProvideOperationsManager provides the operation dispatcher
func ProvideOperationsManager(store *images.Store, queue *convert.Queue, mp *otel.Provider) (operations.Manager, error) {
	return operations.NewManager(store, queue, mp.Meter("diskprobe/operations"))
}

// ProvideHealthReporter provides the health reporter, with uptime counted
// from construction
func ProvideHealthReporter(cfg *config.Config, imageManager images.Manager) *health.Reporter {
	return health.NewReporter(cfg.ServiceName, time.Now(), imageManager)
}
