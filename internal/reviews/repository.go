package reviews

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/domain"
)

// Repository defines the interface for review data operations.
type Repository interface {
	ListReviews(ctx context.Context) ([]domain.Review, error)
}
