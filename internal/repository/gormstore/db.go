package gormstore

import (
	"context"
	"fmt"
	"time"

	"github.com/msomdec/board/internal/config"
	"github.com/msomdec/board/internal/domain"
	"github.com/msomdec/board/internal/repository/gormstore/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps a GORM connection and hands out the board repositories.
type DB struct {
	Gorm *gorm.DB
}

var _ domain.Database = (*DB)(nil)

// NewDBConnection opens the database named by settings. Driver must be
// config.DriverGormPostgres or config.DriverGormSQLite.
func NewDBConnection(settings config.DatabaseSettings) (*DB, error) {
	gcfg := &gorm.Config{
		// Let the dialect map constraint violations to gorm.ErrDuplicatedKey
		// and gorm.ErrForeignKeyViolated.
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        storedNow,
	}

	switch settings.Driver {
	case config.DriverGormPostgres:
		db, err := gorm.Open(postgres.Open(settings.DSN), gcfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		return &DB{Gorm: db}, nil

	case config.DriverGormSQLite:
		return connectSQLite(settings.DSN, gcfg)

	default:
		return nil, fmt.Errorf("unsupported database driver: %s", settings.Driver)
	}
}

// storedNow stamps rows at the precision both dialects keep.
func storedNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// connectSQLite opens a SQLite database with foreign keys enforced. A
// single connection keeps the pragma (and an in-memory database) shared
// by every query.
func connectSQLite(dsn string, gcfg *gorm.Config) (*DB, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &DB{Gorm: db}, nil
}

// Migrate creates or updates the board tables.
func (d *DB) Migrate(ctx context.Context) error {
	err := d.Gorm.WithContext(ctx).AutoMigrate(
		&models.UserModel{},
		&models.QuestionModel{},
		&models.AnswerModel{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Close closes the database connection
func (d *DB) Close() error {
	sqlDB, err := d.Gorm.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

func (d *DB) Users() domain.UserRepository {
	return NewUserRepository(d.Gorm)
}

func (d *DB) Questions() domain.QuestionRepository {
	return NewQuestionRepository(d.Gorm)
}

func (d *DB) Answers() domain.AnswerRepository {
	return NewAnswerRepository(d.Gorm)
}
