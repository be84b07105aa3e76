package users

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/domain"
)

// Repository defines the interface for user data operations.
type Repository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	// GetUserByEmail returns ErrUserNotFound when no document matches.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// CreateUser returns ErrUserExists when the email is already taken.
	CreateUser(ctx context.Context, user *domain.User) (domain.InsertResult, error)
	// SetRole returns domain.ErrInvalidID for ids the store cannot parse.
	SetRole(ctx context.Context, id string, role domain.Role) (domain.UpdateResult, error)
}
