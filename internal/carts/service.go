// Package carts manages per-user shopping carts. Every operation is scoped to the
// email decoded from the caller's token.
package carts

import (
	"context"
	"errors"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/domain"
)

// Service implements cart business logic.
type Service struct {
	repo Repository
}

// NewService creates a new cart service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListCartItems returns the cart of email. An empty email yields an empty cart
// without touching the store; asking for someone else's cart is ErrForbidden.
func (s *Service) ListCartItems(ctx context.Context, callerEmail, email string) ([]domain.CartItem, error) {
	if email == "" {
		return []domain.CartItem{}, nil
	}
	if email != callerEmail {
		return nil, ErrForbidden
	}

	items, err := s.repo.ListCartItems(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items, nil
}

// AddToCart inserts item into the caller's cart. An item without an email is
// assigned to the caller; one naming another owner is ErrForbidden.
func (s *Service) AddToCart(ctx context.Context, callerEmail string, item *domain.CartItem) (domain.InsertResult, error) {
	if item.Email == "" {
		item.Email = callerEmail
	}
	if item.Email != callerEmail {
		return domain.InsertResult{}, ErrForbidden
	}

	res, err := s.repo.CreateCartItem(ctx, item)
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("create cart item: %w", err)
	}
	return res, nil
}

// RemoveFromCart deletes one item from the caller's cart. A missing item reports
// zero deletions; an item owned by someone else is ErrForbidden.
func (s *Service) RemoveFromCart(ctx context.Context, callerEmail, id string) (domain.DeleteResult, error) {
	item, err := s.repo.GetCartItem(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCartItemNotFound) {
			return domain.DeleteResult{Acknowledged: true}, nil
		}
		return domain.DeleteResult{}, fmt.Errorf("get cart item %s: %w", id, err)
	}

	if item.Email != callerEmail {
		return domain.DeleteResult{}, ErrForbidden
	}

	res, err := s.repo.DeleteCartItem(ctx, id, callerEmail)
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete cart item %s: %w", id, err)
	}
	return res, nil
}
