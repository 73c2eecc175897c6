package domain

import "context"

// Database defines lifecycle operations for the underlying database.
// Each implementation (SQLite, GORM, etc.) owns its own schema setup,
// ensuring the entire backend is swappable.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
	Users() UserRepository
	Questions() QuestionRepository
	Answers() AnswerRepository
}
