package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// ErrDirty means an earlier migration of the journal was interrupted. The
// database has to be repaired by hand before it can be used again.
var ErrDirty = errors.New("journal schema is dirty")

//go:embed *.sql
var files embed.FS

// Migrate brings the journal schema of db to the newest version and returns
// that version.
func Migrate(db *sql.DB, log *zap.SugaredLogger) (uint, error) {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return 0, fmt.Errorf("create migration driver: %w", err)
	}

	source, err := iofs.New(files, ".")
	if err != nil {
		return 0, fmt.Errorf("create migration source: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return 0, fmt.Errorf("create migrator: %w", err)
	}

	if _, err := version(migrator); err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	}

	err = migrator.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
	case err != nil:
		return 0, fmt.Errorf("migrate up: %w", err)
	default:
		log.Info("journal migrations applied")
	}

	v, err := version(migrator)
	if err != nil {
		return 0, err
	}
	log.Infow("journal schema ready", "version", v)
	return v, nil
}

func version(migrator *migrate.Migrate) (uint, error) {
	v, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	}
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return v, fmt.Errorf("%w: version %d", ErrDirty, v)
	}
	return v, nil
}
