// Package mongo provides the MongoDB implementation of the carts repository.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/carts"
	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository implements carts.Repository on the carts collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a new MongoDB carts repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(mongodb.CollectionCarts)}
}

// ListCartItems returns the items owned by email.
func (r *Repository) ListCartItems(ctx context.Context, email string) ([]domain.CartItem, error) {
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, fmt.Errorf("find cart items: %w", err)
	}

	var items []domain.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	return items, nil
}

// CreateCartItem inserts one cart document.
func (r *Repository) CreateCartItem(ctx context.Context, item *domain.CartItem) (domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert cart item: %w", err)
	}
	return mongodb.InsertResult(res), nil
}

// GetCartItem returns the cart document with the given id.
func (r *Repository) GetCartItem(ctx context.Context, id string) (*domain.CartItem, error) {
	oid, err := mongodb.ObjectID(id)
	if err != nil {
		return nil, err
	}

	var item domain.CartItem
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, carts.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}
	return &item, nil
}

// DeleteCartItem deletes the cart document matching both id and owner email.
func (r *Repository) DeleteCartItem(ctx context.Context, id, email string) (domain.DeleteResult, error) {
	oid, err := mongodb.ObjectID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{
		{Key: "_id", Value: oid},
		{Key: "email", Value: email},
	})
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete cart item: %w", err)
	}
	return mongodb.DeleteResult(res), nil
}
