package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/taskboard/internal/config"
	"github.com/bagdasarian/taskboard/internal/db"
	"github.com/bagdasarian/taskboard/internal/handler"
	"github.com/bagdasarian/taskboard/internal/handler/server"
	"github.com/bagdasarian/taskboard/internal/logger"
	"github.com/bagdasarian/taskboard/internal/repository/postgres"
	"github.com/bagdasarian/taskboard/internal/service"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Setup(cfg.Log)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.NewPostgres(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()
	log.Info("connected to database", "host", cfg.Database.Host, "name", cfg.Database.DBName)

	if cfg.MigrateOnStart {
		migrator, err := db.NewMigrator(database, log)
		if err != nil {
			return err
		}
		if err := migrator.Up(ctx); err != nil {
			return err
		}
	}

	userRepo := postgres.NewUserRepository(database)
	teamRepo := postgres.NewTeamRepository(database)
	membershipRepo := postgres.NewMembershipRepository(database)
	tagRepo := postgres.NewTagRepository(database)
	templateRepo := postgres.NewTaskTemplateRepository(database)
	taskRepo := postgres.NewTaskRepository(database)

	membershipService := service.NewMembershipService(membershipRepo)
	userService := service.NewUserService(userRepo, log)
	teamService := service.NewTeamService(teamRepo, membershipService)
	tagService := service.NewTagService(tagRepo, log)
	templateService := service.NewTaskTemplateService(templateRepo, tagRepo, userRepo, membershipService, log)
	taskService := service.NewTaskService(taskRepo, templateRepo, teamRepo, userRepo, membershipService, log)

	h := handler.NewHandler(templateService, taskService, userService, teamService, tagService, log)
	srv := server.NewServer(server.NewRouter(h, server.NewMetrics(), log), cfg.HTTP, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
