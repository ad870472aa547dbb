//go:build wireinject

package main

import (
	"context"
	"log/slog"

	"github.com/google/wire"
	"github.com/onkernel/diskprobe/cmd/api/api"
	"github.com/onkernel/diskprobe/cmd/api/config"
	"github.com/onkernel/diskprobe/lib/logger"
	"github.com/onkernel/diskprobe/lib/otel"
	"github.com/onkernel/diskprobe/lib/providers"
)

// application struct to hold initialized components
type application struct {
	Ctx           context.Context
	Logger        *slog.Logger
	LoggerConfig  logger.Config
	Config        *config.Config
	MeterProvider *otel.Provider
	ApiService    *api.ApiService
}

// initializeApp is the injector function
func initializeApp() (*application, func(), error) {
	panic(wire.Build(
		providers.ProvideContext,
		providers.ProvideConfig,
		providers.ProvideLoggerConfig,
		providers.ProvideLogger,
		providers.ProvidePaths,
		providers.ProvideMeterProvider,
		providers.ProvideStore,
		providers.ProvideDigestEngine,
		providers.ProvideImageManager,
		providers.ProvideConvertQueue,
		providers.ProvideOperationsManager,
		providers.ProvideHealthReporter,
		api.New,
		wire.Struct(new(application), "*"),
	))
}
