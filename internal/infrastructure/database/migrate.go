package database

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"brashfox-backend/internal/config"
)

// MigrationURL builds the postgres URL used by golang-migrate.
func MigrationURL(cfg config.DatabaseConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(cfg.User), url.QueryEscape(cfg.Password),
		cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)
}

// MigrateUp applies all pending migrations from sourcePath
// (e.g. "file://migrations"). A database that is already up to date is not an
// error.
func MigrateUp(sourcePath string, cfg config.DatabaseConfig) error {
	m, err := migrate.New(sourcePath, MigrationURL(cfg))
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
