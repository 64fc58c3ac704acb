package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "adminpanel/internal/errors"
)

const (
	// DefaultLimit is applied when a list call does not specify a limit.
	DefaultLimit = 10
	// MaxLimit caps page size regardless of what the caller asks for.
	MaxLimit = 100
)

// ListQuery carries pagination and optional filtering for list reads.
type ListQuery struct {
	Limit  int
	Offset int
	// OrderColumn, when set, orders results newest-first on that column.
	// Without it the ordering is left to the datastore.
	OrderColumn string
	// FilterColumn/FilterValue apply an optional substring predicate.
	FilterColumn string
	FilterValue  string
}

// Clamp normalizes Limit into [1, MaxLimit] (DefaultLimit when unset) and
// Offset to >= 0.
func (q ListQuery) Clamp() ListQuery {
	if q.Limit <= 0 {
		if q.Limit == 0 {
			q.Limit = DefaultLimit
		} else {
			q.Limit = 1
		}
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}

// Store is a typed accessor over a single soft-deleting table. All reads go
// through gorm's DeletedAt scoping, so soft-deleted rows are invisible here.
type Store[T any] struct {
	db *gorm.DB
}

// NewStore builds a GORM-backed store for one entity type.
func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// List returns live records matching the query.
func (s *Store[T]) List(ctx context.Context, q ListQuery) ([]T, error) {
	q = q.Clamp()
	tx := s.db.WithContext(ctx).Limit(q.Limit).Offset(q.Offset)
	if q.OrderColumn != "" {
		tx = tx.Order(q.OrderColumn + " DESC")
	}
	if q.FilterColumn != "" && q.FilterValue != "" {
		tx = tx.Where(q.FilterColumn+" LIKE ?", "%"+q.FilterValue+"%")
	}

	var records []T
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByID returns the live record with the given id.
func (s *Store[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := s.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Create inserts a record; id and timestamps are assigned by the datastore.
func (s *Store[T]) Create(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Create(record).Error
}

// Update applies a partial update to the live record with the given id and
// returns the refreshed row. UpdatedAt is always bumped. A soft-deleted id
// matches nothing, so updating it reports ErrNotFound rather than
// resurrecting the row.
func (s *Store[T]) Update(ctx context.Context, id uint, values map[string]interface{}) (*T, error) {
	if len(values) == 0 {
		// An update with no changed fields still refreshes updated_at.
		values = map[string]interface{}{"updated_at": time.Now()}
	}
	var record T
	tx := s.db.WithContext(ctx).Model(&record).Where("id = ?", id).Updates(values)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return s.FindByID(ctx, id)
}

// SoftDelete marks the record deleted. A second call on the same id finds no
// live row and reports ErrNotFound.
func (s *Store[T]) SoftDelete(ctx context.Context, id uint) error {
	var record T
	tx := s.db.WithContext(ctx).Delete(&record, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
