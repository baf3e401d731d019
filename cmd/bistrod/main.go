// Command bistrod runs the catalog store: the HTTP API the POS clients talk
// to, backed by PostgreSQL.
package main

import (
	"context"
	"log/slog"
	"os"

	"bistro/config"
	"bistro/internal/delivery"
	"bistro/internal/delivery/http"
	"bistro/internal/delivery/http/router/handler"
	"bistro/internal/domain/service"
	"bistro/internal/infra/auth"
	logs "bistro/internal/infra/log"
	"bistro/internal/infra/persistence/postgres"

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
		injectDelivery(),
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
			postgres.NewAppetizerRepository,
			postgres.NewDrinkRepository,
			postgres.NewMainCourseRepository,
			postgres.NewCashierRepository,
			postgres.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
		),
	)
}

// newPasswordHasher builds the bcrypt hasher with the configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAppetizerHandler,
			handler.NewDrinkHandler,
			handler.NewMainCourseHandler,
			handler.NewCashierHandler,
			handler.NewAuthHandler,
			handler.NewMenuHandler,
			handler.NewHealthHandler,
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
