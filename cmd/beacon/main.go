package main

import (
	"context"
	"log/slog"
	"os"

	"beacon/config"
	"beacon/internal/delivery"
	"beacon/internal/delivery/http"
	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/router/handler"
	"beacon/internal/domain/service"
	"beacon/internal/infra/credential"
	logs "beacon/internal/infra/log"
	"beacon/internal/infra/nav"
	"beacon/internal/infra/render"
	"beacon/internal/infra/rest"
	"beacon/internal/infra/socket"
	"beacon/internal/usecase"
	"beacon/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
	Session    usecase.SessionUsecase
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
		credential.NewKeyringStore,
		socket.NewDialer,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			rest.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newToastRenderer,
			nav.NewLogNavigator,
			impl.NewAckService,
			func(acks *impl.AckService) service.AckPublisher { return acks },
		),
	)
}

// newToastRenderer creates the terminal toast surface on stdout.
func newToastRenderer(logger *slog.Logger) service.Renderer {
	return render.NewToastRenderer(os.Stdout, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotifierService,
			impl.NewSessionService,
			impl.NewFeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewFeedHandler,
			handler.NewStatusHandler,
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
	// Reconnect from stored credentials before any surface serves traffic.
	if err := params.Session.Resume(ctx); err != nil {
		slog.Warn("Session resume failed", slog.Any("error", err))
	}

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
