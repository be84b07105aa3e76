package mongodb

import (
	"testing"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestObjectID(t *testing.T) {
	want := primitive.NewObjectID()

	got, err := ObjectID(want.Hex())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestObjectID_Invalid(t *testing.T) {
	for _, hex := range []string{"", "123", "not-an-object-id", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ObjectID(hex)
		assert.ErrorIs(t, err, domain.ErrInvalidID, "input %q", hex)
	}
}

func TestInsertResult(t *testing.T) {
	id := primitive.NewObjectID()

	res := InsertResult(&mongo.InsertOneResult{InsertedID: id})

	assert.True(t, res.Acknowledged)
	assert.Equal(t, id.Hex(), res.InsertedID)
}

func TestUpdateResult(t *testing.T) {
	res := UpdateResult(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1})

	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Equal(t, int64(1), res.ModifiedCount)
	assert.Nil(t, res.UpsertedID)
}

func TestDeleteResult(t *testing.T) {
	res := DeleteResult(&mongo.DeleteResult{DeletedCount: 0})

	assert.True(t, res.Acknowledged)
	assert.Zero(t, res.DeletedCount)
}

func TestBSONOptions_NestedDocumentsAsMaps(t *testing.T) {
	assert.True(t, BSONOptions().DefaultDocumentM)
}
