//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"hydrod/internal"
	"hydrod/internal/controllers"
	"hydrod/internal/models"
	"hydrod/internal/providers"
	"hydrod/internal/services"
	"hydrod/internal/structures"
	"hydrod/internal/tracker"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		models.NewSystemClock,
		services.NewHydrationService,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		tracker.NewZstdCompressor,
		tracker.NewFileManager,
		tracker.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}
