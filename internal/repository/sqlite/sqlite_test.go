package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/msomdec/board/internal/domain"
	"github.com/msomdec/board/internal/repository/sqlite"
)

// Verify that *sqlite.DB implements domain.Database at compile time.
var _ domain.Database = (*sqlite.DB)(nil)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNew(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	// Verify the file was created.
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}

	// Verify foreign keys are enabled.
	var fkEnabled int
	if err := db.SqlDB.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled); err != nil {
		t.Fatalf("check foreign_keys: %v", err)
	}
	if fkEnabled != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fkEnabled)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// newTestDB already migrated once; a second run must be a no-op.
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate (idempotent): %v", err)
	}

	var count int
	if err := db.SqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 migration record, got %d", count)
	}
}

func TestDeleteUser_AnonymizesPosts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := &domain.User{Username: "leaving"}
	if err := db.Users().Save(ctx, user); err != nil {
		t.Fatalf("Save user: %v", err)
	}
	q := &domain.Question{Subject: "s", Content: "c", AuthorID: &user.ID}
	if err := db.Questions().Save(ctx, q); err != nil {
		t.Fatalf("Save question: %v", err)
	}
	a := &domain.Answer{QuestionID: q.ID, Content: "a", AuthorID: &user.ID}
	if err := db.Answers().Save(ctx, a); err != nil {
		t.Fatalf("Save answer: %v", err)
	}

	if err := db.Users().DeleteByID(ctx, user.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}

	gotQ, err := db.Questions().FindByID(ctx, q.ID)
	if err != nil {
		t.Fatalf("FindByID question: %v", err)
	}
	if gotQ.AuthorID != nil {
		t.Fatalf("expected question author to be cleared, got %d", *gotQ.AuthorID)
	}
	gotA, err := db.Answers().FindByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("FindByID answer: %v", err)
	}
	if gotA.AuthorID != nil {
		t.Fatalf("expected answer author to be cleared, got %d", *gotA.AuthorID)
	}
}
