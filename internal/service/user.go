package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/board/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles user registration and lookup.
type UserService struct {
	users      domain.UserRepository
	bcryptCost int
	now        Clock
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, bcryptCost int, clock Clock) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost, now: clockOrDefault(clock)}
}

type registerInput struct {
	Username string `validate:"required,min=3,max=25"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// Register creates a new user account after validating inputs.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if err := check(registerInput{Username: username, Email: email, Password: password}); err != nil {
		return nil, err
	}

	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateUsername, username)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	// A concurrent registration can still win the race; the unique
	// constraint reports it as ErrDuplicateUsername.
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetByUsername returns the user with the given username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}
