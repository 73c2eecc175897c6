package sqlite

import (
	"errors"
	"strings"

	"github.com/msomdec/board/internal/domain"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// storageError wraps a failed write. Constraint violations are translated
// to the matching domain sentinel; onUnique names the sentinel for the
// table's unique constraint (nil when the table has none besides the key).
func storageError(op string, err error, onUnique error) error {
	switch {
	case isUniqueConstraintError(err):
		if onUnique != nil {
			return domain.NewStorageError(op, onUnique)
		}
	case isForeignKeyError(err):
		return domain.NewStorageError(op, domain.ErrReferenceNotFound)
	}
	return domain.NewStorageError(op, err)
}

// isUniqueConstraintError checks if the error is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	var se *msqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyError checks if the error is a SQLite foreign key violation.
func isForeignKeyError(err error) bool {
	var se *msqlite.Error
	if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
