package domain

import "context"

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Repository is the persistence contract shared by every entity.
//
// Save inserts the entity when its ID is zero and assigns the new ID;
// otherwise it updates the existing row. Updating an ID that has no row
// returns ErrNotFound. FindByID returns ErrNotFound when no row matches.
// DeleteByID succeeds whether or not the row exists.
type Repository[T any, ID comparable] interface {
	Save(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id ID) (*T, error)
	// FindAll returns every row ordered by insertion. Prefer FindPage
	// for anything user-facing.
	FindAll(ctx context.Context) ([]T, error)
	FindPage(ctx context.Context, page Page) (PageResult[T], error)
	Count(ctx context.Context) (int, error)
	DeleteByID(ctx context.Context, id ID) error
}

// Page selects a window of rows ordered by insertion.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// PageResult holds one page of items along with the total row count.
type PageResult[T any] struct {
	Items []T
	Total int
}
