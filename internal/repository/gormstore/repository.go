package gormstore

import (
	"context"
	"errors"

	"github.com/msomdec/board/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// crud implements domain.Repository for a domain type T stored as model M.
type crud[T, M any] struct {
	db       *gorm.DB
	entity   string
	toModel  func(*T) *M
	toDomain func(*M) T
	idOf     func(*T) int64
	onUnique error
}

func (r *crud[T, M]) Save(ctx context.Context, entity *T) error {
	m := r.toModel(entity)

	if r.idOf(entity) == 0 {
		if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
			return storageError("insert "+r.entity, err, r.onUnique)
		}
		*entity = r.toDomain(m)
		return nil
	}

	// Select("*") writes zero values too, so a cleared author becomes NULL.
	result := r.db.WithContext(ctx).Model(m).Select("*").Omit("id", "created_at", clause.Associations).Updates(m)
	if result.Error != nil {
		return storageError("update "+r.entity, result.Error, r.onUnique)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *crud[T, M]) FindByID(ctx context.Context, id int64) (*T, error) {
	return r.findOne(ctx, "find "+r.entity+" by id", "id = ?", id)
}

func (r *crud[T, M]) findOne(ctx context.Context, op string, query string, args ...any) (*T, error) {
	var m M
	if err := r.db.WithContext(ctx).Where(query, args...).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewStorageError(op, err)
	}
	out := r.toDomain(&m)
	return &out, nil
}

func (r *crud[T, M]) FindAll(ctx context.Context) ([]T, error) {
	return r.findMany(ctx, "list "+r.entity, r.db.WithContext(ctx))
}

func (r *crud[T, M]) findMany(ctx context.Context, op string, q *gorm.DB) ([]T, error) {
	var ms []M
	if err := q.Order("id").Find(&ms).Error; err != nil {
		return nil, domain.NewStorageError(op, err)
	}
	out := make([]T, len(ms))
	for i := range ms {
		out[i] = r.toDomain(&ms[i])
	}
	return out, nil
}

func (r *crud[T, M]) FindPage(ctx context.Context, page domain.Page) (domain.PageResult[T], error) {
	page = page.Normalize()

	total, err := r.Count(ctx)
	if err != nil {
		return domain.PageResult[T]{}, err
	}

	items, err := r.findMany(ctx, "page "+r.entity, r.db.WithContext(ctx).Limit(page.Limit).Offset(page.Offset))
	if err != nil {
		return domain.PageResult[T]{}, err
	}
	return domain.PageResult[T]{Items: items, Total: total}, nil
}

func (r *crud[T, M]) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(new(M)).Count(&n).Error; err != nil {
		return 0, domain.NewStorageError("count "+r.entity, err)
	}
	return int(n), nil
}

func (r *crud[T, M]) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(M)).Error; err != nil {
		return domain.NewStorageError("delete "+r.entity, err)
	}
	return nil
}
