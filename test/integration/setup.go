//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/bagdasarian/taskboard/internal/db"
	"github.com/bagdasarian/taskboard/internal/logger"
	"github.com/bagdasarian/taskboard/internal/repository/postgres"
	"github.com/bagdasarian/taskboard/internal/service"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// services собирает сервисы поверх настоящей базы
type services struct {
	db        *sql.DB
	templates service.TaskTemplateService
	tasks     service.TaskService
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	postgresContainer, err := tcpostgres.Run(ctx,
		"postgres:17.7",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.PingContext(ctx))

	migrator, err := db.NewMigrator(database, logger.Discard())
	require.NoError(t, err)
	require.NoError(t, migrator.Up(ctx), "не удалось применить миграции")

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

func setupServices(t *testing.T) *services {
	t.Helper()

	database := setupTestDB(t)
	log := logger.Discard()

	userRepo := postgres.NewUserRepository(database)
	teamRepo := postgres.NewTeamRepository(database)
	tagRepo := postgres.NewTagRepository(database)
	templateRepo := postgres.NewTaskTemplateRepository(database)
	taskRepo := postgres.NewTaskRepository(database)
	membershipService := service.NewMembershipService(postgres.NewMembershipRepository(database))

	return &services{
		db:        database,
		templates: service.NewTaskTemplateService(templateRepo, tagRepo, userRepo, membershipService, log),
		tasks:     service.NewTaskService(taskRepo, templateRepo, teamRepo, userRepo, membershipService, log),
	}
}

// seed выполняет INSERT ... RETURNING id и возвращает идентификатор строки
func (s *services) seed(t *testing.T, query string, args ...any) int64 {
	t.Helper()

	var id int64
	require.NoError(t, s.db.QueryRowContext(context.Background(), query, args...).Scan(&id))
	return id
}

func (s *services) user(t *testing.T, name, role string) int64 {
	return s.seed(t, "INSERT INTO users (name, role) VALUES ($1, $2) RETURNING id", name, role)
}

func (s *services) team(t *testing.T, name string) int64 {
	return s.seed(t, "INSERT INTO teams (name) VALUES ($1) RETURNING id", name)
}

func (s *services) member(t *testing.T, teamID, userID int64, role string) {
	s.seed(t, "INSERT INTO memberships (team_id, user_id, role) VALUES ($1, $2, $3) RETURNING id", teamID, userID, role)
}

func (s *services) tag(t *testing.T, label string) int64 {
	return s.seed(t, "INSERT INTO tags (label) VALUES ($1) RETURNING id", label)
}
