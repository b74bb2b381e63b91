package main

import (
	"context"
	"log/slog"
	"os"

	"pulse/config"
	"pulse/internal/delivery"
	pulsehttp "pulse/internal/delivery/http"
	"pulse/internal/delivery/http/router/handler"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/infra/citydata"
	logs "pulse/internal/infra/log"
	"pulse/internal/infra/persistence/postgres"
	"pulse/internal/infra/pubsub"
	"pulse/internal/trigger"
	"pulse/internal/usecase"
	"pulse/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewHistoryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			newCityDataProvider,
			newTriggerRegistry,
		),
	)
}

// newCityDataProvider builds the composite public-data snapshot provider.
// Upstream open-data source clients are injected here; with none registered
// the snapshot is empty and no evaluator triggers.
func newCityDataProvider(logger *slog.Logger, cfg *config.Config) service.CityDataProvider {
	return citydata.NewProvider(logger, cfg.CityData)
}

// newTriggerRegistry builds the evaluator registry from the trigger config
// section.
func newTriggerRegistry(cfg *config.Config) *trigger.Registry {
	return trigger.NewRegistryFromConfig(cfg.Trigger)
}

// newDedupUsecase builds the suppression service with config overrides applied
// over the default policy table.
func newDedupUsecase(logger *slog.Logger, historyRepo repository.HistoryRepository, cfg *config.Config) usecase.DedupUsecase {
	return impl.NewDedupService(logger, historyRepo, impl.SuppressionPoliciesFromConfig(cfg.Dedup))
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newDedupUsecase,
			impl.NewEvaluationService,
			impl.NewHistoryService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEvaluationHandler,
			handler.NewHistoryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				pulsehttp.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
