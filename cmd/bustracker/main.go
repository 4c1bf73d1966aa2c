package main

import (
	"context"
	"log/slog"
	"os"

	"bustracker/config"
	"bustracker/internal/delivery"
	"bustracker/internal/delivery/http"
	"bustracker/internal/delivery/http/router/handler"
	"bustracker/internal/delivery/scheduler"
	"bustracker/internal/domain/service"
	logs "bustracker/internal/infra/log"
	"bustracker/internal/infra/mtd"
	"bustracker/internal/infra/notification"
	"bustracker/internal/infra/persistence/postgres"
	"bustracker/internal/infra/pubsub"
	"bustracker/internal/usecase/impl"

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
			postgres.NewSubscriptionRepository,
			postgres.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newNotificationService,
			func(cfg *config.Config, logger *slog.Logger) service.ScheduleService {
				return mtd.NewClient(cfg.MTD, logger)
			},
			pubsub.NewEventPublisher,
		),
	)
}

// newNotificationService builds the Firebase messaging client, or nil when no
// credential is configured. The poll scheduler refuses to start without it,
// while the HTTP surfaces keep working.
func newNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase credentials not configured, push dispatch disabled")
		return nil, nil
	}

	return notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPollerService,
			impl.NewSubscriptionService,
			impl.NewUserService,
			impl.NewScheduleService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewSubscriptionHandler,
			handler.NewScheduleHandler,
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
			fx.Annotate(
				scheduler.NewPoller,
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
