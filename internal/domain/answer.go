package domain

import (
	"context"
	"time"
)

// Answer is a reply to a question.
type Answer struct {
	ID         int64
	QuestionID int64
	Content    string
	AuthorID   *int64
	CreatedAt  time.Time
}

type AnswerRepository interface {
	Repository[Answer, int64]
	// FindByQuestion returns the answers of a question in insertion order.
	FindByQuestion(ctx context.Context, questionID int64) ([]Answer, error)
}
