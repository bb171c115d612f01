package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/JTSTBP/ATS-sub003/internal/api/http"
	"github.com/JTSTBP/ATS-sub003/internal/api/http/handlers"
	"github.com/JTSTBP/ATS-sub003/internal/auth"
	"github.com/JTSTBP/ATS-sub003/internal/config"
	"github.com/JTSTBP/ATS-sub003/internal/events"
	"github.com/JTSTBP/ATS-sub003/internal/observability"
	"github.com/JTSTBP/ATS-sub003/internal/persistence"
	"github.com/JTSTBP/ATS-sub003/internal/repository"
	"github.com/JTSTBP/ATS-sub003/internal/service"
	"github.com/JTSTBP/ATS-sub003/internal/worker"
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
	clientRepo := repository.NewClientRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	candidateRepo := repository.NewCandidateRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	directoryService := service.NewDirectoryService(userRepo, redis, logger)
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:          userRepo,
		PasswordResetRepo: resetRepo,
	})
	userService := service.NewUserService(userRepo, directoryService, cfg.Auth.BcryptCost)
	jobService := service.NewJobService(service.JobDependencies{
		JobRepo:    jobRepo,
		ClientRepo: clientRepo,
		UserRepo:   userRepo,
		Directory:  directoryService,
		Dispatcher: dispatcher,
	})
	candidateService := service.NewCandidateService(service.CandidateDependencies{
		CandidateRepo: candidateRepo,
		JobRepo:       jobRepo,
		ClientRepo:    clientRepo,
		Directory:     directoryService,
		Dispatcher:    dispatcher,
	})
	leaveService := service.NewLeaveService(leaveRepo, directoryService, dispatcher)
	reportService := service.NewReportService(candidateRepo, jobRepo, clientRepo, leaveRepo, directoryService)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Jobs:           handlers.NewJobsHandler(jobService),
		Candidates:     handlers.NewCandidatesHandler(candidateService),
		Leaves:         handlers.NewLeavesHandler(leaveService),
		Reports:        handlers.NewReportsHandler(reportService),
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
