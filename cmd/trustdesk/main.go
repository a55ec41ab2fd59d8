package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/TrustDesk/pkg/app/payload"
	"github.com/NeuralTrust/TrustDesk/pkg/app/pipeline"
	"github.com/NeuralTrust/TrustDesk/pkg/app/reasoning"
	"github.com/NeuralTrust/TrustDesk/pkg/config"
	handlers "github.com/NeuralTrust/TrustDesk/pkg/handlers/http"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/attachment"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/httpx"
	infraLogger "github.com/NeuralTrust/TrustDesk/pkg/infra/logger"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/providers/factory"
	"github.com/NeuralTrust/TrustDesk/pkg/middleware"
	"github.com/NeuralTrust/TrustDesk/pkg/plugins/data_masking"
	"github.com/NeuralTrust/TrustDesk/pkg/server"
	"github.com/NeuralTrust/TrustDesk/pkg/server/router"
	"github.com/NeuralTrust/TrustDesk/pkg/version"
	"github.com/joho/godotenv"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger, closeLogger, err := infraLogger.NewLogger("trustdesk")
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer closeLogger()

	// Load configuration
	if err := config.Load(os.Getenv("CONFIG_PATH")); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	prometheus.Initialize(prometheus.MetricsConfig{Enabled: cfg.Metrics.Enabled})

	if cfg.Reasoning.APIKey == "" {
		logger.Warn("reasoning api key is not configured, replies will be degraded")
	}

	// reasoning service
	client, err := factory.NewProviderLocator().Get(cfg.Reasoning.Provider)
	if err != nil {
		logger.Fatalf("Failed to initialize reasoning client: %v", err)
	}
	var breaker httpx.CircuitBreaker
	if cfg.Reasoning.Breaker.Enabled {
		breaker = httpx.NewCircuitBreakerWithLogger(httpx.BreakerConfig{
			Name:        "reasoning-" + cfg.Reasoning.Provider,
			Timeout:     cfg.Reasoning.Breaker.Timeout,
			MaxFailures: cfg.Reasoning.Breaker.MaxFailures,
		}, logger)
	}
	gateway := reasoning.NewGateway(logger, client, breaker, reasoning.Config{
		APIKey: cfg.Reasoning.APIKey,
		Model:  cfg.Reasoning.Model,
	})

	// sanitization
	masker := data_masking.NewMasker(logger)
	extractor := attachment.NewExtractor(logger, attachment.Config{
		MaxPages: cfg.Security.Attachment.MaxPages,
		MaxChars: cfg.Security.Attachment.MaxChars,
	})
	preparer := payload.NewPreparer(logger, masker, extractor, payload.Options{
		HardBlock: cfg.Security.HardBlock,
		MaxChars:  cfg.Security.MaxChars,
	})

	orchestrator := pipeline.NewOrchestrator(logger, preparer, gateway)

	//middleware
	middlewareTransport := &middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		RequestIDMiddleware:    middleware.NewRequestIDMiddleware(),
		AccessLogMiddleware:    middleware.NewAccessLogMiddleware(logger),
	}

	// Handler Transport
	handlerTransport := handlers.HandlerTransport{
		ProcessMessageHandler: handlers.NewProcessMessageHandler(logger, orchestrator),
		GetVersionHandler:     handlers.NewGetVersionHandler(logger),
	}

	srv := server.NewAPIServer(server.APIServerDI{
		Routers: []router.ServerRouter{router.NewAPIRouter(middlewareTransport, handlerTransport)},
		Config:  cfg,
		Logger:  logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.WithField("version", version.Version).
		WithField("provider", cfg.Reasoning.Provider).
		WithField("hard_block", cfg.Security.HardBlock).
		Info("starting trustdesk")

	if err := srv.Run(ctx); err != nil {
		logger.WithError(err).Error("server stopped with error")
		return
	}
	logger.Info("server exited properly")
}
