package main

import (
	"context"
	"log/slog"
	"os"

	"vitrina/config"
	"vitrina/internal/delivery"
	"vitrina/internal/delivery/http"
	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/router/handler"
	"vitrina/internal/domain/service"
	"vitrina/internal/infra/auth"
	logs "vitrina/internal/infra/log"
	"vitrina/internal/infra/persistence/postgres"
	"vitrina/internal/infra/qrcode"
	"vitrina/internal/infra/slug"
	"vitrina/internal/infra/whatsapp"
	"vitrina/internal/usecase/impl"

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
			postgres.NewBusinessRepository,
			postgres.NewOfferingRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			slug.NewSlugService,
			whatsapp.NewLinkService,
			auth.NewJWTService,
			auth.NewIdentityProvider,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBusinessService,
			impl.NewOfferingService,
			impl.NewShareService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewSessionGate,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBusinessHandler,
			handler.NewOfferingHandler,
			handler.NewShareHandler,
			handler.NewAuthHandler,
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
