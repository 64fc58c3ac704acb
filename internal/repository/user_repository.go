package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// EmailTaken reports whether a live user other than excludeID holds the
	// email. Pass excludeID 0 to check against all live users.
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	List(ctx context.Context, q ListQuery) ([]model.User, error)
	Update(ctx context.Context, id uint, values map[string]interface{}) (*model.User, error)
	SoftDelete(ctx context.Context, id uint) error
}

type userRepository struct {
	store *Store[model.User]
	db    *gorm.DB
}

// NewUserRepository builds a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{store: NewStore[model.User](db), db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.store.Create(ctx, user)
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return r.store.FindByID(ctx, id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) List(ctx context.Context, q ListQuery) ([]model.User, error) {
	q.OrderColumn = "created_at"
	return r.store.List(ctx, q)
}

func (r *userRepository) Update(ctx context.Context, id uint, values map[string]interface{}) (*model.User, error) {
	return r.store.Update(ctx, id, values)
}

func (r *userRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.store.SoftDelete(ctx, id)
}
