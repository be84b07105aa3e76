package carts

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/domain"
)

// Repository defines the interface for cart data operations.
// Methods taking an id return domain.ErrInvalidID for ids the store cannot parse.
type Repository interface {
	ListCartItems(ctx context.Context, email string) ([]domain.CartItem, error)
	CreateCartItem(ctx context.Context, item *domain.CartItem) (domain.InsertResult, error)
	// GetCartItem returns ErrCartItemNotFound when no document matches.
	GetCartItem(ctx context.Context, id string) (*domain.CartItem, error)
	// DeleteCartItem deletes only when both id and owner email match.
	DeleteCartItem(ctx context.Context, id, email string) (domain.DeleteResult, error)
}
