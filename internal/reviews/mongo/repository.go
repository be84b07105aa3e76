// Package mongo provides the MongoDB implementation of the reviews repository.
package mongo

import (
	"context"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository implements reviews.Repository on the reviews collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a new MongoDB reviews repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(mongodb.CollectionReviews)}
}

// ListReviews returns all review documents.
func (r *Repository) ListReviews(ctx context.Context) ([]domain.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}

	var list []domain.Review
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return list, nil
}
