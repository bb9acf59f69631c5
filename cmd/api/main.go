package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Nishukr/Urban-waste-control/internal/api/http"
	"github.com/Nishukr/Urban-waste-control/internal/api/http/handlers"
	"github.com/Nishukr/Urban-waste-control/internal/auth"
	"github.com/Nishukr/Urban-waste-control/internal/config"
	"github.com/Nishukr/Urban-waste-control/internal/events"
	"github.com/Nishukr/Urban-waste-control/internal/observability"
	"github.com/Nishukr/Urban-waste-control/internal/persistence"
	"github.com/Nishukr/Urban-waste-control/internal/repository"
	"github.com/Nishukr/Urban-waste-control/internal/service"
	"github.com/Nishukr/Urban-waste-control/internal/upload"
	"github.com/Nishukr/Urban-waste-control/internal/worker"
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
	userRepo := repository.NewUserRepository(pool)
	concernRepo := repository.NewConcernRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)
	reportRepo := repository.NewGarbageReportRepository(pool)
	scheduleCache := repository.NewRedisScheduleCache(redis.Client, logger)

	dispatcher := events.NewInMemoryDispatcher()
	uploadStore := upload.NewStore(cfg.Upload)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{UserRepo: userRepo})
	concernService := service.NewConcernService(concernRepo, dispatcher)
	scheduleService := service.NewScheduleService(scheduleRepo, scheduleCache, dispatcher)
	reportService := service.NewReportService(reportRepo, uploadStore, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Concerns:       handlers.NewConcernsHandler(concernService),
		Schedules:      handlers.NewSchedulesHandler(scheduleService),
		Reports:        handlers.NewReportsHandler(reportService),
		AuthMiddleware: authMiddleware,
		UploadDir:      cfg.Upload.Dir,
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
