package main

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"os"

	"linkauth/config"
	"linkauth/internal/delivery"
	"linkauth/internal/delivery/http"
	"linkauth/internal/delivery/http/middleware"
	"linkauth/internal/delivery/http/router/handler"
	"linkauth/internal/domain/repository"
	"linkauth/internal/domain/service"
	"linkauth/internal/infra/auth"
	"linkauth/internal/infra/auth/google"
	logs "linkauth/internal/infra/log"
	"linkauth/internal/infra/metrics"
	"linkauth/internal/infra/persistence/memory"
	"linkauth/internal/infra/persistence/postgres"
	"linkauth/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
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
		metrics.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		newAccountRepository,
	)
}

// newAccountRepository picks the store named by storage.driver.
func newAccountRepository(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repository.AccountRepository, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Warn("Using in-memory account store; accounts are lost on restart")

		return memory.NewAccountRepository(), nil
	}

	db, err := postgres.New(postgres.Params{Lifecycle: lc, Config: cfg, Logger: logger})
	if err != nil {
		return nil, err
	}

	return postgres.NewAccountRepository(db), nil
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
		auth.NewJWTService,
		impl.NewUsernameAllocator,
		newAuthMetrics,
		fx.Annotate(
			newMetricsHandler,
			fx.ResultTags(`name:"metrics"`),
		),
		newOAuthService,
		newIDTokenVerifier,
	)
}

func newAuthMetrics(reg *prometheus.Registry) service.AuthMetrics {
	return metrics.NewCollector(reg)
}

func newMetricsHandler(reg *prometheus.Registry) nethttp.Handler {
	return metrics.Handler(reg)
}

// newOAuthService returns nil when OAuth is disabled; the Google routes then answer 404.
func newOAuthService(cfg *config.Config) service.OAuthService {
	if cfg.OAuth == nil || !cfg.OAuth.Enabled {
		return nil
	}

	return google.NewOAuthService(cfg)
}

func newIDTokenVerifier(cfg *config.Config, logger *slog.Logger) service.IDTokenVerifier {
	if cfg.OAuth == nil || !cfg.OAuth.Enabled {
		return nil
	}

	return google.NewIDTokenVerifier(cfg, logger)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewTokenIssuer,
		impl.NewIdentityResolver,
		impl.NewAuthService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
		middleware.NewErrorMiddleware,
		middleware.NewRateLimiter,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewAuthHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			http.NewServer,
			fx.ResultTags(`group:"deliveries"`),
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
