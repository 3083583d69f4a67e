package main

import (
	"context"
	"log/slog"
	"os"

	"rolodex/config"
	"rolodex/internal/delivery"
	"rolodex/internal/delivery/http"
	"rolodex/internal/delivery/http/middleware"
	"rolodex/internal/delivery/http/router/handler"
	"rolodex/internal/domain/service"
	"rolodex/internal/infra/auth"
	"rolodex/internal/infra/auth/google"
	logs "rolodex/internal/infra/log"
	"rolodex/internal/infra/persistence/postgres"
	"rolodex/internal/infra/pubsub"
	"rolodex/internal/infra/qrcode"
	"rolodex/internal/infra/ratelimit"
	"rolodex/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
		ratelimit.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewContactRepository,
			postgres.NewGroupRepository,
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewVerifier,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewContactService,
			impl.NewGroupService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewContactHandler,
			handler.NewGroupHandler,
			handler.NewUserHandler,
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
