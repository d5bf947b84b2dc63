package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/campus-kit/complaint-service/internal/api/http"
	"github.com/campus-kit/complaint-service/internal/api/http/handlers"
	"github.com/campus-kit/complaint-service/internal/auth"
	"github.com/campus-kit/complaint-service/internal/config"
	"github.com/campus-kit/complaint-service/internal/events"
	"github.com/campus-kit/complaint-service/internal/observability"
	"github.com/campus-kit/complaint-service/internal/persistence"
	"github.com/campus-kit/complaint-service/internal/repository"
	"github.com/campus-kit/complaint-service/internal/service"
	"github.com/campus-kit/complaint-service/internal/worker"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	accountRepo := repository.NewAccountRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)
	historyRepo := repository.NewComplaintHistoryRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	tokenMgr := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL())
	sessionStore := auth.NewSessionStore(redis.Client)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		AccountRepo:  accountRepo,
		TokenManager: tokenMgr,
		SessionStore: sessionStore,
	})
	complaintService := service.NewComplaintService(service.ComplaintDependencies{
		ComplaintRepo: complaintRepo,
		HistoryRepo:   historyRepo,
		Dispatcher:    dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(tokenMgr, sessionStore, accountRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Accounts:       handlers.NewAccountsHandler(authService),
		Complaints:     handlers.NewComplaintsHandler(complaintService),
		Dashboard:      handlers.NewDashboardHandler(complaintService),
		AuthMiddleware: authMiddleware,
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
