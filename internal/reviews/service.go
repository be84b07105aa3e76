// Package reviews exposes customer reviews. They are read-only here.
package reviews

import (
	"context"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/domain"
)

// Service implements review queries.
type Service struct {
	repo Repository
}

// NewService creates a new review service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListReviews returns every review.
func (s *Service) ListReviews(ctx context.Context) ([]domain.Review, error) {
	list, err := s.repo.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if list == nil {
		list = []domain.Review{}
	}
	return list, nil
}
