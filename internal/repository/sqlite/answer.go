package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/msomdec/board/internal/domain"
)

const answerColumns = `id, question_id, content, author_id, created_at`

// AnswerRepository implements domain.AnswerRepository using SQLite.
type AnswerRepository struct {
	db *sql.DB
}

// NewAnswerRepository creates a new SQLite-backed AnswerRepository.
func NewAnswerRepository(db *DB) *AnswerRepository {
	return &AnswerRepository{db: db.SqlDB}
}

func (r *AnswerRepository) Save(ctx context.Context, a *domain.Answer) error {
	if a.ID != 0 {
		result, err := r.db.ExecContext(ctx,
			`UPDATE answers SET question_id = ?, content = ?, author_id = ? WHERE id = ?`,
			a.QuestionID, a.Content, a.AuthorID, a.ID,
		)
		if err != nil {
			return storageError("update answer", err, nil)
		}
		return requireAffected(result, "update answer")
	}

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	// The driver stores times as text; only UTC without a monotonic
	// reading reads back.
	a.CreatedAt = a.CreatedAt.UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO answers (question_id, content, author_id, created_at) VALUES (?, ?, ?, ?)`,
		a.QuestionID, a.Content, a.AuthorID, a.CreatedAt,
	)
	if err != nil {
		return storageError("insert answer", err, nil)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.NewStorageError("get last insert id", err)
	}
	a.ID = id
	return nil
}

func (r *AnswerRepository) FindByID(ctx context.Context, id int64) (*domain.Answer, error) {
	a := &domain.Answer{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+answerColumns+` FROM answers WHERE id = ?`, id,
	).Scan(&a.ID, &a.QuestionID, &a.Content, &a.AuthorID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewStorageError("query answer by id", err)
	}
	return a, nil
}

func (r *AnswerRepository) FindByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+answerColumns+` FROM answers WHERE question_id = ? ORDER BY id`, questionID)
	if err != nil {
		return nil, domain.NewStorageError("list answers by question", err)
	}
	defer rows.Close()
	return scanAnswers(rows)
}

func (r *AnswerRepository) FindAll(ctx context.Context) ([]domain.Answer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+answerColumns+` FROM answers ORDER BY id`)
	if err != nil {
		return nil, domain.NewStorageError("list answers", err)
	}
	defer rows.Close()
	return scanAnswers(rows)
}

func (r *AnswerRepository) FindPage(ctx context.Context, page domain.Page) (domain.PageResult[domain.Answer], error) {
	page = page.Normalize()

	total, err := r.Count(ctx)
	if err != nil {
		return domain.PageResult[domain.Answer]{}, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+answerColumns+` FROM answers ORDER BY id LIMIT ? OFFSET ?`, page.Limit, page.Offset)
	if err != nil {
		return domain.PageResult[domain.Answer]{}, domain.NewStorageError("page answers", err)
	}
	defer rows.Close()

	items, err := scanAnswers(rows)
	if err != nil {
		return domain.PageResult[domain.Answer]{}, err
	}
	return domain.PageResult[domain.Answer]{Items: items, Total: total}, nil
}

func (r *AnswerRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "answers")
}

func (r *AnswerRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM answers WHERE id = ?", id); err != nil {
		return domain.NewStorageError("delete answer", err)
	}
	return nil
}

func scanAnswers(rows *sql.Rows) ([]domain.Answer, error) {
	var answers []domain.Answer
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Content, &a.AuthorID, &a.CreatedAt); err != nil {
			return nil, domain.NewStorageError("scan answer", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("iterate answers", err)
	}
	return answers, nil
}
