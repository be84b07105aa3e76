// Package mongodb provides MongoDB connection and document helpers shared by repositories.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	CollectionMenu    = "menu"
	CollectionReviews = "reviews"
	CollectionCarts   = "carts"
	CollectionUsers   = "users"
)

// Config contains MongoDB connection configuration.
type Config struct {
	URI      string
	Database string
}

// Connect creates a client and verifies the deployment answers a ping.
// There is a single attempt: the caller is expected to exit on error.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetPoolMonitor(metrics.StorePoolMonitor()).
		SetBSONOptions(BSONOptions())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	slog.Info("connected to mongodb", "database", cfg.Database)
	return client, nil
}

// BSONOptions makes nested documents decode as bson.M so pass-through
// fields render as JSON objects instead of key/value arrays.
func BSONOptions() *options.BSONOptions {
	return &options.BSONOptions{DefaultDocumentM: true}
}

// ObjectID parses a hex document id taken from a request path.
func ObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, hex)
	}
	return id, nil
}

// InsertResult converts a driver insert result into its response shape.
func InsertResult(res *mongo.InsertOneResult) domain.InsertResult {
	return domain.InsertResult{
		Acknowledged: true,
		InsertedID:   idString(res.InsertedID),
	}
}

// UpdateResult converts a driver update result into its response shape.
func UpdateResult(res *mongo.UpdateResult) domain.UpdateResult {
	out := domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		id := idString(res.UpsertedID)
		out.UpsertedID = &id
	}
	return out
}

// DeleteResult converts a driver delete result into its response shape.
func DeleteResult(res *mongo.DeleteResult) domain.DeleteResult {
	return domain.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(v)
	}
}
