// Package mongo provides the MongoDB implementation of the menu repository.
package mongo

import (
	"context"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository implements menu.Repository on the menu collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a new MongoDB menu repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(mongodb.CollectionMenu)}
}

// ListMenuItems returns all menu documents.
func (r *Repository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find menu items: %w", err)
	}

	var items []domain.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode menu items: %w", err)
	}
	return items, nil
}

// CreateMenuItem inserts one menu document.
func (r *Repository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert menu item: %w", err)
	}
	return mongodb.InsertResult(res), nil
}

// DeleteMenuItem deletes the menu document with the given id.
func (r *Repository) DeleteMenuItem(ctx context.Context, id string) (domain.DeleteResult, error) {
	oid, err := mongodb.ObjectID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete menu item: %w", err)
	}
	return mongodb.DeleteResult(res), nil
}
