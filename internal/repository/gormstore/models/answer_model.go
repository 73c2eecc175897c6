package models

import (
	"time"

	"github.com/msomdec/board/internal/domain"
)

// AnswerModel is the GORM database model for answers
type AnswerModel struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	QuestionID int64      `gorm:"not null;index"`
	Content    string     `gorm:"type:text;not null"`
	AuthorID   *int64     `gorm:"index"`
	Author     *UserModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	CreatedAt  time.Time  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (AnswerModel) TableName() string {
	return "answers"
}

// ToDomain converts GORM model to domain entity
func (m *AnswerModel) ToDomain() domain.Answer {
	return domain.Answer{
		ID:         m.ID,
		QuestionID: m.QuestionID,
		Content:    m.Content,
		AuthorID:   m.AuthorID,
		CreatedAt:  m.CreatedAt,
	}
}

// AnswerFromDomain converts domain entity to GORM model
func AnswerFromDomain(a *domain.Answer) *AnswerModel {
	return &AnswerModel{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		Content:    a.Content,
		AuthorID:   a.AuthorID,
		CreatedAt:  storedTime(a.CreatedAt),
	}
}
