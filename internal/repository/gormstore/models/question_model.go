package models

import (
	"time"

	"github.com/msomdec/board/internal/domain"
)

// QuestionModel is the GORM database model for questions. The Author and
// Answers associations exist only so AutoMigrate emits the foreign keys;
// repositories never load or save them.
type QuestionModel struct {
	ID        int64         `gorm:"primaryKey;autoIncrement"`
	Subject   string        `gorm:"type:varchar(200);not null"`
	Content   string        `gorm:"type:text;not null"`
	AuthorID  *int64        `gorm:"index"`
	Author    *UserModel    `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	Answers   []AnswerModel `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time     `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (QuestionModel) TableName() string {
	return "questions"
}

// ToDomain converts GORM model to domain entity
func (m *QuestionModel) ToDomain() domain.Question {
	return domain.Question{
		ID:        m.ID,
		Subject:   m.Subject,
		Content:   m.Content,
		AuthorID:  m.AuthorID,
		CreatedAt: m.CreatedAt,
	}
}

// QuestionFromDomain converts domain entity to GORM model
func QuestionFromDomain(q *domain.Question) *QuestionModel {
	return &QuestionModel{
		ID:        q.ID,
		Subject:   q.Subject,
		Content:   q.Content,
		AuthorID:  q.AuthorID,
		CreatedAt: storedTime(q.CreatedAt),
	}
}
