package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"taskflow/internal/config"
	apperrors "taskflow/internal/errors"
	"taskflow/internal/logging"
	"taskflow/internal/repository"
	"taskflow/internal/service"
	"taskflow/internal/storage"
)

// seed registers the demo account, or signs into it when it already exists,
// and loads the projects so the demo data is owned by that account.
func main() {
	cfg := config.Load()

	log, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		panic(err)
	}
	log.Info("Starting seed script...")

	if err := run(context.Background(), cfg, log); err != nil {
		log.WithError(err).Error("Seed failed")
		os.Exit(1)
	}
}

// run returns instead of exiting so the backend is always closed.
func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	backend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer backend.Close()

	rt := service.NewRuntime(log, false)
	authService := service.NewAuthService(
		repository.NewUserRepository(backend, log),
		repository.NewSessionRepository(backend, log),
		repository.NewAuthSliceRepository(backend, log),
		service.LogNotifier{Log: log},
		rt,
	)
	taskService := service.NewTaskService(
		repository.NewTaskRepository(backend, log),
		repository.NewProjectRepository(backend, log),
		repository.NewViewSliceRepository(backend, log),
		authService,
		rt,
	)
	authService.Initialize(ctx)
	taskService.Initialize(ctx)

	err = authService.Signup(ctx, cfg.SeedEmail, cfg.SeedPassword)
	if errors.Is(err, apperrors.ErrDuplicateAccount) {
		log.WithField("email", cfg.SeedEmail).Info("Demo account exists, signing in")
		err = authService.Login(ctx, cfg.SeedEmail, cfg.SeedPassword)
	}
	if err != nil {
		return fmt.Errorf("establish demo session: %w", err)
	}

	if err := taskService.FetchProjects(ctx); err != nil {
		return fmt.Errorf("load projects: %w", err)
	}
	if err := taskService.FetchTasks(ctx); err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	state := taskService.State()
	log.WithFields(logrus.Fields{
		"user":     authService.CurrentUser().ID,
		"projects": len(state.Projects),
		"tasks":    len(state.Tasks),
	}).Info("Seed completed")
	return nil
}
