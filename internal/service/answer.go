package service

import (
	"context"
	"fmt"

	"github.com/msomdec/board/internal/domain"
)

// AnswerService handles answers to existing questions.
type AnswerService struct {
	answers   domain.AnswerRepository
	questions domain.QuestionRepository
	now       Clock
}

// NewAnswerService creates a new AnswerService.
func NewAnswerService(answers domain.AnswerRepository, questions domain.QuestionRepository, clock Clock) *AnswerService {
	return &AnswerService{answers: answers, questions: questions, now: clockOrDefault(clock)}
}

type answerInput struct {
	QuestionID int64  `validate:"gt=0"`
	Content    string `validate:"required"`
}

// Create adds an answer to the question. It returns ErrNotFound when the
// question does not exist.
func (s *AnswerService) Create(ctx context.Context, questionID int64, content string, authorID *int64) (*domain.Answer, error) {
	if err := check(answerInput{QuestionID: questionID, Content: content}); err != nil {
		return nil, err
	}

	if _, err := s.questions.FindByID(ctx, questionID); err != nil {
		return nil, err
	}

	a := &domain.Answer{
		QuestionID: questionID,
		Content:    content,
		AuthorID:   authorID,
		CreatedAt:  s.now(),
	}
	if err := s.answers.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}
	return a, nil
}

// ListByQuestion returns the answers to a question, oldest first.
func (s *AnswerService) ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	answers, err := s.answers.FindByQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	return answers, nil
}
