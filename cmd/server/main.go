package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-finance-advisor/internal/adapter"
	"github.com/MKhiriev/go-finance-advisor/internal/config"
	"github.com/MKhiriev/go-finance-advisor/internal/handler"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/metrics"
	"github.com/MKhiriev/go-finance-advisor/internal/ratelimit"
	"github.com/MKhiriev/go-finance-advisor/internal/server"
	"github.com/MKhiriev/go-finance-advisor/internal/service"
	"github.com/MKhiriev/go-finance-advisor/internal/store"
	"github.com/MKhiriev/go-finance-advisor/internal/workers"
	"github.com/MKhiriev/go-finance-advisor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	bootLog := logger.NewLogger("finance-advisor-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" && buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log, err := logger.NewLoggerFromConfig("finance-advisor-server", cfg.Log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error creating logger")
	}
	defer log.Close()

	if err := run(context.Background(), *cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	provider, err := adapter.NewOpenAIAdapter(cfg.OpenAI, log)
	if err != nil {
		if !errors.Is(err, adapter.ErrNotConfigured) {
			return fmt.Errorf("error creating llm provider: %w", err)
		}
		log.Warn().Msg("OPENAI_API_KEY is not set, AI endpoints will answer 503")
	}

	m := metrics.New()

	var limiter ratelimit.Store
	if cfg.RateLimit.IsEnabled() {
		limiter, err = ratelimit.NewStore(ctx, cfg.RateLimit, cfg.Workers, log)
		if err != nil {
			return fmt.Errorf("error creating rate limiter: %w", err)
		}
		defer limiter.Close()
	}

	services, err := service.NewServices(ctx, store.NewStorages(db, log), provider, cfg, m, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, limiter, m, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	var reporter workers.StatusReporter
	if handlers.GRPC != nil {
		reporter = handlers.GRPC
	}

	var (
		cleanup     workers.Worker
		probeOption []workers.ProbeOption
	)
	if limiter != nil {
		cleanup = workers.NewLimiterCleanupWorker(limiter, cfg.Workers.LimiterCleanupInterval, log)
		if redisStore, ok := limiter.(workers.Pinger); ok {
			probeOption = append(probeOption, workers.WithRedis(redisStore))
		}
	}
	bg := workers.NewWorkers(
		cleanup,
		workers.NewHealthProbeWorker(db, services.LLMService, reporter, m, cfg.Workers.HealthProbeInterval, log, probeOption...),
	)
	go bg.Run(ctx)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}
