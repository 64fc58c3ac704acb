package service

import (
	"context"
	"errors"
	"fmt"

	"adminpanel/internal/auth"
	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
	"adminpanel/internal/repository"
	"adminpanel/internal/token"
)

// AuthService handles session lifecycle and account self-service operations.
type AuthService interface {
	SignUp(ctx context.Context, email, password, name, ip string) (string, *model.User, error)
	SignIn(ctx context.Context, email, password, ip string) (string, *model.User, error)
	SignOut(ctx context.Context, userID uint, ip string)
	UpdatePassword(ctx context.Context, userID uint, current, next, ip string) error
	DeleteAccount(ctx context.Context, userID uint, ip string) error
}

type authService struct {
	users    repository.UserRepository
	userSvc  UserService
	codec    *token.Codec
	activity ActivityService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, userSvc UserService, codec *token.Codec, activity ActivityService) AuthService {
	return &authService{
		users:    users,
		userSvc:  userSvc,
		codec:    codec,
		activity: activity,
	}
}

// SignUp registers a new user and issues a session token for it.
func (s *authService) SignUp(ctx context.Context, email, password, name, ip string) (string, *model.User, error) {
	user, err := s.userSvc.CreateUser(ctx, email, password, name)
	if err != nil {
		return "", nil, err
	}

	sessionToken, err := s.codec.Sign(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}

	s.activity.Record(ctx, user.ID, model.ActionSignUp, ip, "")
	return sessionToken, user, nil
}

// SignIn verifies credentials and issues a session token. Lookup and
// password failures collapse into one error so the response does not reveal
// whether the email exists.
func (s *authService) SignIn(ctx context.Context, email, password, ip string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	sessionToken, err := s.codec.Sign(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}

	s.activity.Record(ctx, user.ID, model.ActionSignIn, ip, "")
	return sessionToken, user, nil
}

// SignOut records the event; the session token itself is stateless, the
// handler clears the cookie.
func (s *authService) SignOut(ctx context.Context, userID uint, ip string) {
	s.activity.Record(ctx, userID, model.ActionSignOut, ip, "")
}

// UpdatePassword replaces the user's password after verifying the current one.
func (s *authService) UpdatePassword(ctx context.Context, userID uint, current, next, ip string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.PasswordHash, current) {
		return apperrors.ErrInvalidCredentials
	}

	hashed, err := auth.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.users.Update(ctx, userID, map[string]interface{}{"password_hash": hashed}); err != nil {
		return err
	}

	s.activity.Record(ctx, userID, model.ActionUpdatePassword, ip, "")
	return nil
}

// DeleteAccount soft-deletes the user's own account.
func (s *authService) DeleteAccount(ctx context.Context, userID uint, ip string) error {
	return s.userSvc.DeleteUser(ctx, userID, ip)
}
