package gormstore

import (
	"context"

	"github.com/msomdec/board/internal/domain"
	"github.com/msomdec/board/internal/repository/gormstore/models"

	"gorm.io/gorm"
)

type userRepository struct {
	crud[domain.User, models.UserModel]
}

// NewUserRepository creates a GORM-based UserRepository implementation
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{crud[domain.User, models.UserModel]{
		db:       db,
		entity:   "user",
		toModel:  models.UserFromDomain,
		toDomain: (*models.UserModel).ToDomain,
		idOf:     func(u *domain.User) int64 { return u.ID },
		onUnique: domain.ErrDuplicateUsername,
	}}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "find user by username", "username = ?", username)
}

type questionRepository struct {
	crud[domain.Question, models.QuestionModel]
}

// NewQuestionRepository creates a GORM-based QuestionRepository implementation
func NewQuestionRepository(db *gorm.DB) domain.QuestionRepository {
	return &questionRepository{crud[domain.Question, models.QuestionModel]{
		db:       db,
		entity:   "question",
		toModel:  models.QuestionFromDomain,
		toDomain: (*models.QuestionModel).ToDomain,
		idOf:     func(q *domain.Question) int64 { return q.ID },
	}}
}

type answerRepository struct {
	crud[domain.Answer, models.AnswerModel]
}

// NewAnswerRepository creates a GORM-based AnswerRepository implementation
func NewAnswerRepository(db *gorm.DB) domain.AnswerRepository {
	return &answerRepository{crud[domain.Answer, models.AnswerModel]{
		db:       db,
		entity:   "answer",
		toModel:  models.AnswerFromDomain,
		toDomain: (*models.AnswerModel).ToDomain,
		idOf:     func(a *domain.Answer) int64 { return a.ID },
	}}
}

func (r *answerRepository) FindByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	return r.findMany(ctx, "list answers by question", r.db.WithContext(ctx).Where("question_id = ?", questionID))
}
