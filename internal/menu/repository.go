package menu

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/domain"
)

// Repository defines the interface for menu data operations.
type Repository interface {
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) (domain.InsertResult, error)
	// DeleteMenuItem returns domain.ErrInvalidID for ids the store cannot parse.
	DeleteMenuItem(ctx context.Context, id string) (domain.DeleteResult, error)
}
