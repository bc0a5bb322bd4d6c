package database

import (
	"errors"
	"fmt"
	"io/fs"

	"humancapital-api/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	// postgres driver for golang-migrate (lib/pq underneath)
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"
)

// RunMigrations applies every pending up-migration found in files.
// A database that is already current is not an error.
func RunMigrations(files fs.FS, dsn string) error {
	src, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("open migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Log.Info("Database schema up to date")
			return nil
		}
		logger.Log.Error("Migration failed", migrationErrorAttrs(err)...)
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Log.Info("Database migrated", "version", version, "dirty", dirty)
	return nil
}

// migrationErrorAttrs pulls the SQLSTATE and server detail out of a failed
// migration statement. The postgres driver reports them as *pq.Error.
func migrationErrorAttrs(err error) []any {
	attrs := []any{"error", err}
	var dbErr database.Error
	if !errors.As(err, &dbErr) {
		return attrs
	}
	attrs = append(attrs, "line", dbErr.Line)
	var pqErr *pq.Error
	if errors.As(dbErr.OrigErr, &pqErr) {
		attrs = append(attrs, "code", string(pqErr.Code), "detail", pqErr.Detail, "hint", pqErr.Hint)
	}
	return attrs
}
