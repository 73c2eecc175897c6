package service

import (
	"context"
	"fmt"

	"github.com/msomdec/board/internal/domain"
)

// QuestionService handles question creation and lookup.
type QuestionService struct {
	questions domain.QuestionRepository
	now       Clock
}

// NewQuestionService creates a new QuestionService. A nil clock uses
// SystemClock.
func NewQuestionService(questions domain.QuestionRepository, clock Clock) *QuestionService {
	return &QuestionService{questions: questions, now: clockOrDefault(clock)}
}

type questionInput struct {
	Subject string `validate:"required,max=200"`
	Content string `validate:"required"`
}

// Create stores a new question stamped with the current time. authorID is
// nil for an anonymous question.
func (s *QuestionService) Create(ctx context.Context, subject, content string, authorID *int64) (*domain.Question, error) {
	if err := check(questionInput{Subject: subject, Content: content}); err != nil {
		return nil, err
	}

	q := &domain.Question{
		Subject:   subject,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: s.now(),
	}
	if err := s.questions.Save(ctx, q); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return q, nil
}

// Get returns a question by its ID.
func (s *QuestionService) Get(ctx context.Context, id int64) (*domain.Question, error) {
	return s.questions.FindByID(ctx, id)
}

// List returns one page of questions in creation order.
func (s *QuestionService) List(ctx context.Context, page domain.Page) (domain.PageResult[domain.Question], error) {
	res, err := s.questions.FindPage(ctx, page)
	if err != nil {
		return res, fmt.Errorf("list questions: %w", err)
	}
	return res, nil
}
