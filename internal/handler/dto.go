package handler

import (
	"time"

	"github.com/msomdec/board/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash is never
// exposed.
type UserDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// QuestionDTO is the JSON representation of a question.
type QuestionDTO struct {
	ID        int64  `json:"id"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	AuthorID  *int64 `json:"authorId"`
	CreatedAt string `json:"createdAt"`
}

func toQuestionDTO(q *domain.Question) QuestionDTO {
	return QuestionDTO{
		ID:        q.ID,
		Subject:   q.Subject,
		Content:   q.Content,
		AuthorID:  q.AuthorID,
		CreatedAt: q.CreatedAt.Format(time.RFC3339),
	}
}

func toQuestionDTOs(questions []domain.Question) []QuestionDTO {
	dtos := make([]QuestionDTO, len(questions))
	for i := range questions {
		dtos[i] = toQuestionDTO(&questions[i])
	}
	return dtos
}

// QuestionDetailDTO is a question together with its answers.
type QuestionDetailDTO struct {
	QuestionDTO
	Answers []AnswerDTO `json:"answers"`
}

// AnswerDTO is the JSON representation of an answer.
type AnswerDTO struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"questionId"`
	Content    string `json:"content"`
	AuthorID   *int64 `json:"authorId"`
	CreatedAt  string `json:"createdAt"`
}

func toAnswerDTO(a *domain.Answer) AnswerDTO {
	return AnswerDTO{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		Content:    a.Content,
		AuthorID:   a.AuthorID,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}

func toAnswerDTOs(answers []domain.Answer) []AnswerDTO {
	dtos := make([]AnswerDTO, len(answers))
	for i := range answers {
		dtos[i] = toAnswerDTO(&answers[i])
	}
	return dtos
}

// PageDTO is one page of a listing plus the total number of rows.
type PageDTO[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

type createQuestionRequest struct {
	Subject  string `json:"subject"`
	Content  string `json:"content"`
	AuthorID *int64 `json:"authorId"`
}

type createAnswerRequest struct {
	Content  string `json:"content"`
	AuthorID *int64 `json:"authorId"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
