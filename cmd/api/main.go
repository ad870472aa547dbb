package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/onkernel/diskprobe"
	mw "github.com/onkernel/diskprobe/lib/middleware"
	"github.com/riandyrn/otelchi"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application terminated", "error", err)
		os.Exit(1)
	}
}

func run() error {
	app, cleanup, err := initializeApp()
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	defer cleanup()

	logger := app.Logger
	slog.SetDefault(logger)
	cfg := app.Config

	// Setup context with signal handling
	ctx, stop := signal.NotifyContext(app.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpMetrics, err := mw.NewHTTPMetrics(app.MeterProvider.Meter("diskprobe/http"))
	if err != nil {
		return fmt.Errorf("create http metrics: %w", err)
	}
	accessLog := mw.NewAccessLogger(app.LoggerConfig, app.MeterProvider.LogHandler())

	spec, err := diskprobe.Swagger()
	if err != nil {
		return err
	}

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.AccessLogger(accessLog))
	r.Use(middleware.Recoverer)
	r.Use(mw.CORS(cfg.CORSOrigins))
	r.Use(mw.InjectLogger(logger))
	if cfg.OtelEnabled {
		r.Use(otelchi.Middleware(cfg.ServiceName, otelchi.WithChiRoutes(r)))
		r.Use(httpMetrics.Middleware)
	} else {
		r.Use(mw.NoopHTTPMetrics())
	}
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	// Mount spec documents and API routes
	app.ApiService.Routes(r, spec)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	// Error group for coordinated shutdown
	grp, gctx := errgroup.WithContext(ctx)

	// Run the server
	grp.Go(func() error {
		logger.Info("starting image processing API server",
			"port", cfg.Port,
			"data_dir", cfg.DataDir,
			"converter", cfg.Converter)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			return err
		}
		return nil
	})

	// Shutdown handler
	grp.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", "error", err)
			return err
		}

		logger.Info("http server shutdown complete")
		return nil
	})

	return grp.Wait()
}
