//go:build integration
// +build integration

package gormstore

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/msomdec/board/internal/config"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// postgresEnv names a keyword DSN for a server the tests may create
// databases on, e.g. "user=postgres password=postgres host=localhost port=5432 sslmode=disable".
const postgresEnv = "BOARD_TEST_POSTGRES_DSN"

// drivers lists the backends each test runs against.
var drivers = []string{config.DriverGormSQLite, config.DriverGormPostgres}

// SetupTestDB opens a migrated, empty database for driver and closes it
// when the test ends.
func SetupTestDB(t *testing.T, driver string) *DB {
	t.Helper()

	var settings config.DatabaseSettings
	cleanup := func() {}

	switch driver {
	case config.DriverGormSQLite:
		settings = config.DatabaseSettings{Driver: driver, DSN: ":memory:"}

	case config.DriverGormPostgres:
		baseDSN := os.Getenv(postgresEnv)
		if baseDSN == "" {
			t.Skipf("%s not set", postgresEnv)
		}
		name := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		admin, err := gorm.Open(postgres.Open(baseDSN+" dbname=postgres"), &gorm.Config{})
		require.NoError(t, err, "connect admin database")
		require.NoError(t, admin.Exec(fmt.Sprintf("CREATE DATABASE %s", name)).Error)

		settings = config.DatabaseSettings{Driver: driver, DSN: baseDSN + " dbname=" + name}
		cleanup = func() {
			_ = admin.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s WITH (FORCE)", name)).Error
			if sqlDB, err := admin.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}

	default:
		t.Fatalf("unsupported driver: %s", driver)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "open database")
	t.Cleanup(func() {
		_ = db.Close()
		cleanup()
	})

	require.NoError(t, db.Migrate(t.Context()), "migrate schema")
	return db
}

// forEachDriver runs fn as a subtest per backend.
func forEachDriver(t *testing.T, fn func(t *testing.T, db *DB)) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			fn(t, SetupTestDB(t, driver))
		})
	}
}
