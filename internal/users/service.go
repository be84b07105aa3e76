// Package users manages user records and the admin role flag.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/domain"
)

// Service implements user business logic.
type Service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateUserInput holds data for a first sign-in.
type CreateUserInput struct {
	Email string
	Name  string
	Photo string
}

// ListUsers returns every user.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	list, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if list == nil {
		list = []domain.User{}
	}
	return list, nil
}

// CreateUser inserts a user unless one with the same email exists, in which case
// ErrUserExists is returned and nothing is written. The role is never taken from input.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (domain.InsertResult, error) {
	_, err := s.repo.GetUserByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return domain.InsertResult{}, ErrUserExists
	case !errors.Is(err, ErrUserNotFound):
		return domain.InsertResult{}, fmt.Errorf("get user by email: %w", err)
	}

	user := &domain.User{
		Email: input.Email,
		Name:  input.Name,
		Photo: input.Photo,
	}

	res, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			return domain.InsertResult{}, ErrUserExists
		}
		return domain.InsertResult{}, fmt.Errorf("create user: %w", err)
	}
	return res, nil
}

// IsAdmin reports whether the stored user with email has the admin role.
// An unknown email is not an admin.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get user by email: %w", err)
	}
	return user.Role.IsAdmin(), nil
}

// CheckAdmin answers whether email is an admin on behalf of callerEmail.
// Callers may only ask about themselves; for anyone else the answer is false
// and the store is not consulted.
func (s *Service) CheckAdmin(ctx context.Context, callerEmail, email string) (bool, error) {
	if callerEmail != email {
		return false, nil
	}
	return s.IsAdmin(ctx, email)
}

// PromoteToAdmin sets the admin role on the user with the given id.
func (s *Service) PromoteToAdmin(ctx context.Context, id string) (domain.UpdateResult, error) {
	res, err := s.repo.SetRole(ctx, id, domain.RoleAdmin)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("promote user %s: %w", id, err)
	}
	return res, nil
}
