package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"adminpanel/internal/auth"
	"adminpanel/internal/cache"
	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
	"adminpanel/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user CRUD with the soft-delete and email-uniqueness
// semantics of the admin panel.
type UserService interface {
	CreateUser(ctx context.Context, email, password, name string) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context, q repository.ListQuery) ([]model.User, error)
	UpdateUser(ctx context.Context, id uint, name, email *string, ip string) (*model.User, error)
	DeleteUser(ctx context.Context, id uint, ip string) error
}

type userService struct {
	repo     repository.UserRepository
	activity ActivityService
	cache    *cache.Client
}

// NewUserService builds a UserService with repository, activity trail and cache.
func NewUserService(repo repository.UserRepository, activity ActivityService, cache *cache.Client) UserService {
	return &userService{repo: repo, activity: activity, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// CreateUser inserts a new user after checking the email against live rows.
// The pre-check and insert are separate statements; if a concurrent insert
// slips between them the datastore's duplicate-key error is still surfaced
// as a conflict.
func (s *userService) CreateUser(ctx context.Context, email, password, name string) (*model.User, error) {
	taken, err := s.repo.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         name,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, q repository.ListQuery) ([]model.User, error) {
	return s.repo.List(ctx, q)
}

// UpdateUser applies a partial update. A changed email is checked for
// uniqueness against live rows first and reported as a conflict when taken.
func (s *userService) UpdateUser(ctx context.Context, id uint, name, email *string, ip string) (*model.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if name != nil {
		values["name"] = *name
	}
	if email != nil && *email != existing.Email {
		taken, err := s.repo.EmailTaken(ctx, *email, id)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, apperrors.ErrEmailTaken
		}
		values["email"] = *email
	}

	updated, err := s.repo.Update(ctx, id, values)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	s.activity.Record(ctx, id, model.ActionUpdateAccount, ip, "")
	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint, ip string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	s.activity.Record(ctx, id, model.ActionDeleteAccount, ip, "")
	return nil
}
