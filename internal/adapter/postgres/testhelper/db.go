// Package testhelper provides PostgreSQL databases for integration tests.
//
// A single server is shared by the whole test run: TEST_DATABASE_DSN when
// set, otherwise a postgres container. Migrations are applied once to a
// template database and every SetupTestDB call clones it, so tests never
// see each other's rows.
package testhelper

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/moviemood-backend/internal/adapter/postgres"
)

const (
	templateDB = "moviemood_template"
	dsnEnv     = "TEST_DATABASE_DSN"
)

var (
	once     sync.Once
	adminCfg *pgxpool.Config
	initErr  error
)

// SetupTestDB returns a pool on a fresh, fully migrated database. The
// database is dropped when the test ends. Tests calling it are skipped
// under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: skipping database test in -short mode")
	}

	once.Do(func() {
		adminCfg, initErr = prepareServer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := adminExec(ctx, fmt.Sprintf("CREATE DATABASE %s TEMPLATE %s",
		pgx.Identifier{name}.Sanitize(), pgx.Identifier{templateDB}.Sanitize())); err != nil {
		t.Fatalf("testhelper: create database: %v", err)
	}

	cfg := adminCfg.Copy()
	cfg.ConnConfig.Database = name
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer dropCancel()
		if err := adminExec(dropCtx, fmt.Sprintf("DROP DATABASE IF EXISTS %s WITH (FORCE)",
			pgx.Identifier{name}.Sanitize())); err != nil {
			t.Logf("testhelper: drop database %s: %v", name, err)
		}
	})

	return pool
}

// prepareServer locates the server and builds the migrated template.
func prepareServer() (*pgxpool.Config, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		var err error
		if dsn, err = startContainer(ctx); err != nil {
			return nil, err
		}
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = 4
	adminCfg = cfg

	template := pgx.Identifier{templateDB}.Sanitize()
	if err := adminExec(ctx, "DROP DATABASE IF EXISTS "+template+" WITH (FORCE)"); err != nil {
		return nil, fmt.Errorf("drop stale template: %w", err)
	}
	if err := adminExec(ctx, "CREATE DATABASE "+template); err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}

	tplCfg := cfg.Copy()
	tplCfg.ConnConfig.Database = templateDB
	pool, err := pgxpool.NewWithConfig(ctx, tplCfg)
	if err != nil {
		return nil, fmt.Errorf("template pool: %w", err)
	}
	defer pool.Close()

	if _, err := postgres.Migrate(ctx, pool); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return cfg, nil
}

// adminExec runs a statement on the server's maintenance database over a
// dedicated connection. CREATE/DROP DATABASE cannot run inside a pool
// transaction and must not hold a connection to the target database.
func adminExec(ctx context.Context, sql string) error {
	conn, err := pgx.ConnectConfig(ctx, adminCfg.ConnConfig)
	if err != nil {
		return fmt.Errorf("admin connect: %w", err)
	}
	defer conn.Close(context.WithoutCancel(ctx))

	_, err = conn.Exec(ctx, sql)
	return err
}

func startContainer(ctx context.Context) (string, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "moviemood",
			"POSTGRES_PASSWORD": "moviemood",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("postgres://moviemood:moviemood@%s:%s/postgres?sslmode=disable", host, port.Port()), nil
}
