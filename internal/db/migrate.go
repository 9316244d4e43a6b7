package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/diewo77/invoice-hub/internal/config"
	"github.com/diewo77/invoice-hub/internal/models"
	migrate "github.com/golang-migrate/migrate/v4"
	// registers the postgres:// database driver for golang-migrate
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

var coreTables = []string{"clients", "items", "invoices", "invoice_items"}

// Migrate brings the schema up to date. With MIGRATIONS enabled on postgres
// the embedded SQL files are applied through golang-migrate; otherwise gorm
// AutoMigrate is used (dev convenience, and the only path for sqlite).
func Migrate(conn *gorm.DB, cfg config.Config, log logrus.FieldLogger) error {
	if cfg.App.Migrations && cfg.Database.Driver == config.DriverPostgres {
		log.Info("running sql migrations")
		if err := RunSQLMigrations(cfg.Database.URL()); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		for _, m := range models.All() {
			if err := conn.AutoMigrate(m); err != nil {
				return fmt.Errorf("automigrate %T: %w", m, err)
			}
		}
	}

	// sanity check: ensure required core tables exist
	for _, table := range coreTables {
		if !conn.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}

// RunSQLMigrations applies the embedded migrations to the database at url.
func RunSQLMigrations(url string) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		return err
	}
	defer m.Close()
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
