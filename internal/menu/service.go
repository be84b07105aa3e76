// Package menu serves the restaurant menu and its admin-only mutations.
package menu

import (
	"context"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/domain"
)

// Service implements menu business logic.
type Service struct {
	repo Repository
}

// NewService creates a new menu service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListMenuItems returns the whole menu.
func (s *Service) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return items, nil
}

// CreateMenuItem adds a dish to the menu.
func (s *Service) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (domain.InsertResult, error) {
	res, err := s.repo.CreateMenuItem(ctx, item)
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("create menu item: %w", err)
	}
	return res, nil
}

// DeleteMenuItem removes a dish. Deleting an absent id is not an error.
func (s *Service) DeleteMenuItem(ctx context.Context, id string) (domain.DeleteResult, error) {
	res, err := s.repo.DeleteMenuItem(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete menu item %s: %w", id, err)
	}
	return res, nil
}
