package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

var pgLogger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "postgres-store").Logger()

// postgresStore persists workspace blobs in a single key/value table.
type postgresStore struct {
	pool *pgxpool.Pool
}

// postgresConnString builds the connection string from the environment with
// local-development defaults.
func postgresConnString() string {
	host := getEnvOrDefault("DB_HOST", "localhost")
	port := getEnvOrDefault("DB_PORT", "5432")
	user := getEnvOrDefault("DB_USER", "postgres")
	password := getEnvOrDefault("DB_PASSWORD", "password")
	name := getEnvOrDefault("DB_NAME", "workdesk")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, name)
}

// newPostgresStore connects with retries, runs the blob-table migrations and
// returns the store.
func newPostgresStore(ctx context.Context, migrationsPath string) (*postgresStore, error) {
	connStr := postgresConnString()

	var pool *pgxpool.Pool
	var err error

	maxRetries := 30
	retryInterval := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(ctx, connStr)
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				break
			}
			pool.Close()
		}
		pgLogger.Warn().Err(err).Int("attempt", i+1).Msg("database not ready, retrying")
		time.Sleep(retryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after retries: %w", err)
	}

	if _, statErr := os.Stat(migrationsPath); os.IsNotExist(statErr) {
		pgLogger.Warn().Str("path", migrationsPath).Msg("migrations directory not found, skipping migrations")
	} else {
		migrationDB, err := sql.Open("postgres", connStr)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to open migration connection: %w", err)
		}
		defer migrationDB.Close()

		if err := runMigrations(migrationDB, migrationsPath); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		if version, dirty, err := getMigrationVersion(migrationDB, migrationsPath); err == nil {
			pgLogger.Info().Uint("version", version).Bool("dirty", dirty).Msg("migrations applied")
		}
	}

	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := s.pool.QueryRow(ctx, "SELECT value FROM workspace_blobs WHERE key = $1", key).Scan(&blob)
	if err == pgx.ErrNoRows {
		return nil, errNoBlob
	}
	if err != nil {
		return nil, fmt.Errorf("loading blob %q: %w", key, err)
	}
	return blob, nil
}

func (s *postgresStore) Save(ctx context.Context, key string, blob []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO workspace_blobs (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, key, blob)
	if err != nil {
		return fmt.Errorf("saving blob %q: %w", key, err)
	}
	return nil
}

func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}
