package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/campushub/campus-events-gateway/internal/api/http"
	"github.com/campushub/campus-events-gateway/internal/api/http/handlers"
	"github.com/campushub/campus-events-gateway/internal/auth"
	"github.com/campushub/campus-events-gateway/internal/config"
	"github.com/campushub/campus-events-gateway/internal/events"
	"github.com/campushub/campus-events-gateway/internal/observability"
	"github.com/campushub/campus-events-gateway/internal/persistence"
	"github.com/campushub/campus-events-gateway/internal/repository"
	"github.com/campushub/campus-events-gateway/internal/service"
	"github.com/campushub/campus-events-gateway/internal/session"
	"github.com/campushub/campus-events-gateway/internal/upstream"
	"github.com/campushub/campus-events-gateway/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	apiClient := upstream.NewClient(cfg.API, logger)
	snapshotCache := repository.NewEventSnapshotCache(redis, cfg.Cache.EventsTTL(), logger)
	eventsService := service.NewEventsService(apiClient, snapshotCache, logger)

	dispatcher := events.NewInMemoryDispatcher()
	auditService := service.NewAuditService(dispatcher, logger, metrics)
	worker.StartAuditWorker(auditService)

	cookies := session.NewCookieStore(cfg.Session)
	decoder := auth.NewTokenDecoder()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis, apiClient, metrics),
		Session:         handlers.NewSessionHandler(),
		Auth:            handlers.NewAuthHandler(apiClient, cookies, dispatcher, logger),
		Events:          handlers.NewEventsHandler(eventsService, cookies, logger),
		SessionResolver: session.Resolve(cookies, decoder, logger),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
