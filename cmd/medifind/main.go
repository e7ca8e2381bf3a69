package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"medifind/config"
	"medifind/internal/delivery"
	"medifind/internal/delivery/http"
	"medifind/internal/delivery/http/middleware"
	"medifind/internal/delivery/http/router/handler"
	"medifind/internal/domain/service"
	"medifind/internal/infra/auth"
	logs "medifind/internal/infra/log"
	"medifind/internal/infra/persistence/postgres"
	"medifind/internal/infra/storage"
	"medifind/internal/usecase/impl"

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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
			postgres.NewPharmacyRepository,
			postgres.NewMedicineRepository,
			postgres.NewCartRepository,
			postgres.NewMessageRepository,
			postgres.NewPrescriptionRepository,
			postgres.NewSavedPharmacyRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newFileStorage,
		),
	)
}

// newFileStorage opens the blob bucket and ties its cleanup to the Fx lifecycle.
func newFileStorage(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (service.FileStorage, error) {
	store, cleanup, err := storage.NewBlobStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob storage: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return cleanup()
		},
	})

	return store, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAuthService,
			impl.NewInventoryService,
			impl.NewCartService,
			impl.NewMessageService,
			impl.NewPrescriptionService,
			impl.NewPharmacyService,
			impl.NewProfileService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewInventoryHandler,
			handler.NewCartHandler,
			handler.NewMessageHandler,
			handler.NewPrescriptionHandler,
			handler.NewPharmacyHandler,
			handler.NewProfileHandler,
			handler.NewAdminHandler,
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
