package domain

import "time"

// Question is a post on the board. A nil AuthorID means the question
// was asked anonymously.
type Question struct {
	ID        int64
	Subject   string
	Content   string
	AuthorID  *int64
	CreatedAt time.Time
}

type QuestionRepository interface {
	Repository[Question, int64]
}
