package db

import (
	"context"
	"testing"

	"github.com/diewo77/invoice-hub/internal/config"
	"github.com/diewo77/invoice-hub/internal/logging"
	"github.com/diewo77/invoice-hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.Config{
		Database: config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			Path:           "file:" + t.Name() + "?mode=memory&cache=shared",
			ConnectRetries: 1,
		},
	}
	conn, err := Open(cfg.Database, logging.Discard())
	require.NoError(t, err)
	require.NoError(t, Migrate(conn, cfg, logging.Discard()))
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return conn
}

func TestOpenAndMigrateSQLite(t *testing.T) {
	conn := openTestDB(t)
	for _, table := range coreTables {
		assert.True(t, conn.Migrator().HasTable(table), table)
	}
	assert.NoError(t, Ping(context.Background(), conn))
}

func TestSeedIdempotent(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, Seed(conn))
	require.NoError(t, Seed(conn))

	var clients, items int64
	conn.Model(&models.Client{}).Count(&clients)
	conn.Model(&models.Item{}).Count(&items)
	assert.Equal(t, int64(len(demoClients)), clients)
	assert.Equal(t, int64(len(demoItems)), items)

	var web models.Item
	require.NoError(t, conn.Where("name_key = ?", "web design").First(&web).Error)
	assert.True(t, web.UnitPrice.Equal(demoItems[0].UnitPrice))
}

func TestUniqueNameKeyIndex(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, conn.Create(&models.Client{Name: "Acme"}).Error)
	err := conn.Create(&models.Client{Name: " ACME "}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestMaskDSN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"host=db user=app password=secret dbname=x", "host=db user=app password=*** dbname=x"},
		{"postgres://app:secret@db:5432/x?sslmode=disable", "postgres://app:***@db:5432/x?sslmode=disable"},
		{"invoice_hub.db", "invoice_hub.db"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskDSN(tt.in))
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "000001_init.up.sql")
	assert.Contains(t, names, "000001_init.down.sql")
}
