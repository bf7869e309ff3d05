package main

import (
	"context"
	"log/slog"
	"os"

	"beacon/config"
	"beacon/internal/delivery"
	"beacon/internal/delivery/http"
	"beacon/internal/delivery/http/router/handler"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/infra/gateway"
	logs "beacon/internal/infra/log"
	"beacon/internal/infra/registry"
	"beacon/internal/usecase"
	"beacon/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			registry.StartJanitor,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newRegistry,
		newPushGateway,
	)
}

func newRegistry() repository.DeviceRegistry {
	return registry.NewMemory()
}

// newPushGateway creates the FCM gateway from injected credentials. Nothing
// else in the service knows which transport is behind the interface.
func newPushGateway(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushGateway, error) {
	return gateway.NewFirebaseGateway(ctx, cfg.Firebase, logger)
}

// newWelcomeHook returns nil when the welcome notification is disabled;
// the registration service treats a nil hook as "no side effect".
func newWelcomeHook(cfg *config.Config, dispatcher usecase.Dispatcher) service.PostRegistrationHook {
	if cfg.Welcome == nil || !cfg.Welcome.Enabled {
		return nil
	}

	return impl.NewWelcomeHook(cfg.Welcome, dispatcher)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatcher,
			newWelcomeHook,
			impl.NewRegistrationService,
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRegistrationHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
