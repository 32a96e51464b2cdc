package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"taskflow/internal/config"
	"taskflow/internal/handler"
	"taskflow/internal/logging"
	"taskflow/internal/mockdb"
	"taskflow/internal/repository"
	"taskflow/internal/router"
	"taskflow/internal/service"
	"taskflow/internal/storage"
)

// @title TaskFlow API
// @version 1.0
// @description Local task and project management with a simulated backend.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	log, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("storage init")
	}
	defer backend.Close()
	log.WithField("driver", cfg.StorageDriver).Info("storage ready")

	rt := service.NewRuntime(log, cfg.SimulateLatency)

	// Initialize repositories
	userRepo := repository.NewUserRepository(backend, log)
	sessionRepo := repository.NewSessionRepository(backend, log)
	taskRepo := repository.NewTaskRepository(backend, log)
	projectRepo := repository.NewProjectRepository(backend, log)

	// Initialize stores
	authService := service.NewAuthService(
		userRepo,
		sessionRepo,
		repository.NewAuthSliceRepository(backend, log),
		service.LogNotifier{Log: log},
		rt,
	)
	taskService := service.NewTaskService(
		taskRepo,
		projectRepo,
		repository.NewViewSliceRepository(backend, log),
		authService,
		rt,
	)
	authService.Initialize(ctx)
	taskService.Initialize(ctx)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, log, router.Handlers{
		Health:  handler.NewHealthHandler(cfg.StorageDriver, mockdb.New(log)),
		Auth:    handler.NewAuthHandler(authService),
		Task:    handler.NewTaskHandler(taskService),
		Project: handler.NewProjectHandler(taskService),
	})

	go func() {
		addr := ":" + cfg.ServerPort
		log.Infof("listening on %s", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("server start")
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
}
