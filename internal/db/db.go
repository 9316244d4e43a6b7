package db

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/diewo77/invoice-hub/internal/config"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// retryDelay is the pause between connection attempts.
var retryDelay = 2 * time.Second

// Open connects to the configured database, retrying while it comes up.
func Open(cfg config.DatabaseConfig, log logrus.FieldLogger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}
	gcfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	log = log.WithFields(logrus.Fields{"driver": cfg.Driver, "dsn": MaskDSN(cfg.DSN())})
	var conn *gorm.DB
	var err error
	for i := 1; i <= cfg.ConnectRetries; i++ {
		conn, err = gorm.Open(dialector, gcfg)
		if err == nil {
			break
		}
		log.WithError(err).Warnf("database connection attempt %d/%d failed", i, cfg.ConnectRetries)
		if i < cfg.ConnectRetries {
			time.Sleep(retryDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect database after %d attempts: %w", cfg.ConnectRetries, err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if cfg.Driver == config.DriverSQLite {
		// a single writer avoids "database is locked" on the file
		sqlDB.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if err := Ping(context.Background(), conn); err != nil {
		return nil, fmt.Errorf("db ping failed: %w", err)
	}
	log.Info("database connected")
	return conn, nil
}

// Ping runs a trivial query. /healthz uses it.
func Ping(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec("SELECT 1").Error
}

var (
	kvPassword  = regexp.MustCompile(`(password=)(\S+)`)
	urlPassword = regexp.MustCompile(`(://[^:/@]+:)([^@]+)(@)`)
)

// MaskDSN hides the password of a key=value or URL style DSN.
func MaskDSN(dsn string) string {
	masked := kvPassword.ReplaceAllString(dsn, `${1}***`)
	return urlPassword.ReplaceAllString(masked, `${1}***${3}`)
}
