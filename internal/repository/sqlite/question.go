package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/msomdec/board/internal/domain"
)

const questionColumns = `id, subject, content, author_id, created_at`

// QuestionRepository implements domain.QuestionRepository using SQLite.
type QuestionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new SQLite-backed QuestionRepository.
func NewQuestionRepository(db *DB) *QuestionRepository {
	return &QuestionRepository{db: db.SqlDB}
}

// Save inserts or updates a question. CreatedAt is fixed at insert time.
func (r *QuestionRepository) Save(ctx context.Context, q *domain.Question) error {
	if q.ID != 0 {
		result, err := r.db.ExecContext(ctx,
			`UPDATE questions SET subject = ?, content = ?, author_id = ? WHERE id = ?`,
			q.Subject, q.Content, q.AuthorID, q.ID,
		)
		if err != nil {
			return storageError("update question", err, nil)
		}
		return requireAffected(result, "update question")
	}

	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now()
	}
	// The driver stores times as text; only UTC without a monotonic
	// reading reads back.
	q.CreatedAt = q.CreatedAt.UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (subject, content, author_id, created_at) VALUES (?, ?, ?, ?)`,
		q.Subject, q.Content, q.AuthorID, q.CreatedAt,
	)
	if err != nil {
		return storageError("insert question", err, nil)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.NewStorageError("get last insert id", err)
	}
	q.ID = id
	return nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id int64) (*domain.Question, error) {
	q := &domain.Question{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id = ?`, id,
	).Scan(&q.ID, &q.Subject, &q.Content, &q.AuthorID, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewStorageError("query question by id", err)
	}
	return q, nil
}

func (r *QuestionRepository) FindAll(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id`)
	if err != nil {
		return nil, domain.NewStorageError("list questions", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

// FindPage returns questions oldest first, as FindAll does.
func (r *QuestionRepository) FindPage(ctx context.Context, page domain.Page) (domain.PageResult[domain.Question], error) {
	page = page.Normalize()

	total, err := r.Count(ctx)
	if err != nil {
		return domain.PageResult[domain.Question]{}, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+questionColumns+` FROM questions ORDER BY id LIMIT ? OFFSET ?`, page.Limit, page.Offset)
	if err != nil {
		return domain.PageResult[domain.Question]{}, domain.NewStorageError("page questions", err)
	}
	defer rows.Close()

	items, err := scanQuestions(rows)
	if err != nil {
		return domain.PageResult[domain.Question]{}, err
	}
	return domain.PageResult[domain.Question]{Items: items, Total: total}, nil
}

func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "questions")
}

// DeleteByID removes a question and, through the foreign key, its answers.
func (r *QuestionRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", id); err != nil {
		return domain.NewStorageError("delete question", err)
	}
	return nil
}

func scanQuestions(rows *sql.Rows) ([]domain.Question, error) {
	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Subject, &q.Content, &q.AuthorID, &q.CreatedAt); err != nil {
			return nil, domain.NewStorageError("scan question", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("iterate questions", err)
	}
	return questions, nil
}
