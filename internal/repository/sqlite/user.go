package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/board/internal/domain"
)

const userColumns = `id, username, email, password_hash, created_at`

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	if user.ID == 0 {
		return r.insert(ctx, user)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, email = ?, password_hash = ? WHERE id = ?`,
		user.Username, user.Email, user.PasswordHash, user.ID,
	)
	if err != nil {
		return storageError("update user", err, domain.ErrDuplicateUsername)
	}
	return requireAffected(result, "update user")
}

func (r *UserRepository) insert(ctx context.Context, user *domain.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	// The driver stores times as text; only UTC without a monotonic
	// reading reads back.
	user.CreatedAt = user.CreatedAt.UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		user.Username, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		return storageError("insert user", err, domain.ErrDuplicateUsername)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.NewStorageError("get last insert id", err)
	}
	user.ID = id
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row, "query user by id")
}

// FindByUsername relies on the unique index on username, so at most one
// row can match.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row, "query user by username")
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, domain.NewStorageError("list users", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (r *UserRepository) FindPage(ctx context.Context, page domain.Page) (domain.PageResult[domain.User], error) {
	page = page.Normalize()

	total, err := r.Count(ctx)
	if err != nil {
		return domain.PageResult[domain.User]{}, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id LIMIT ? OFFSET ?`, page.Limit, page.Offset)
	if err != nil {
		return domain.PageResult[domain.User]{}, domain.NewStorageError("page users", err)
	}
	defer rows.Close()

	items, err := scanUsers(rows)
	if err != nil {
		return domain.PageResult[domain.User]{}, err
	}
	return domain.PageResult[domain.User]{Items: items, Total: total}, nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "users")
}

func (r *UserRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id); err != nil {
		return domain.NewStorageError("delete user", err)
	}
	return nil
}

func scanUser(row *sql.Row, op string) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewStorageError(op, err)
	}
	return u, nil
}

func scanUsers(rows *sql.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, domain.NewStorageError("scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("iterate users", err)
	}
	return users, nil
}

// requireAffected turns an update that touched no row into ErrNotFound.
func requireAffected(result sql.Result, op string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return domain.NewStorageError(op, fmt.Errorf("rows affected: %w", err))
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func count(ctx context.Context, db *sql.DB, table string) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, domain.NewStorageError("count "+table, err)
	}
	return n, nil
}
