// Package mongo provides the MongoDB implementation of the users repository.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/pkg/mongodb"
	"github.com/bistroboss/bistro-api/internal/users"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository implements users.Repository on the users collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a new MongoDB users repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(mongodb.CollectionUsers)}
}

// ListUsers returns all user documents.
func (r *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var list []domain.User
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return list, nil
}

// GetUserByEmail returns the user with the given email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a user document. The unique email index turns a concurrent
// duplicate sign-in into users.ErrUserExists.
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.InsertResult{}, users.ErrUserExists
		}
		return domain.InsertResult{}, fmt.Errorf("insert user: %w", err)
	}
	return mongodb.InsertResult(res), nil
}

// SetRole sets the role field on the user with the given id.
func (r *Repository) SetRole(ctx context.Context, id string, role domain.Role) (domain.UpdateResult, error) {
	oid, err := mongodb.ObjectID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.D{
		{Key: "$set", Value: bson.D{{Key: "role", Value: role}}},
	})
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("update user role: %w", err)
	}
	return mongodb.UpdateResult(res), nil
}
