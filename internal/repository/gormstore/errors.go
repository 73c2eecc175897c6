package gormstore

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/msomdec/board/internal/domain"

	"gorm.io/gorm"
)

// Postgres SQLSTATE codes for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// storageError wraps a failed write, translating constraint violations to
// domain sentinels. onUnique is the sentinel for the table's unique
// constraint, or nil.
func storageError(op string, err error, onUnique error) error {
	unique, foreignKey := classify(err)
	switch {
	case unique && onUnique != nil:
		return domain.NewStorageError(op, onUnique)
	case foreignKey:
		return domain.NewStorageError(op, domain.ErrReferenceNotFound)
	}
	return domain.NewStorageError(op, err)
}

// classify reports whether err is a unique or foreign key violation. The
// dialect translation covers both drivers; the SQLSTATE check catches
// Postgres errors that reach us untranslated.
func classify(err error) (unique, foreignKey bool) {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return true, false
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return false, true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation, pgErr.Code == pgForeignKeyViolation
	}
	return false, false
}
