package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockRepository implements Repository for testing.
type mockRepository struct {
	items   []domain.MenuItem
	listErr error
}

func (m *mockRepository) ListMenuItems(_ context.Context) ([]domain.MenuItem, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockRepository) CreateMenuItem(_ context.Context, item *domain.MenuItem) (domain.InsertResult, error) {
	item.ID = primitive.NewObjectID()
	m.items = append(m.items, *item)
	return domain.InsertResult{Acknowledged: true, InsertedID: item.ID.Hex()}, nil
}

func (m *mockRepository) DeleteMenuItem(_ context.Context, id string) (domain.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.DeleteResult{}, domain.ErrInvalidID
	}
	for i, item := range m.items {
		if item.ID == oid {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return domain.DeleteResult{Acknowledged: true}, nil
}

func TestService_ListMenuItems_Empty(t *testing.T) {
	svc := NewService(&mockRepository{})

	items, err := svc.ListMenuItems(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestService_ListMenuItems_StoreError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewService(&mockRepository{listErr: boom})

	_, err := svc.ListMenuItems(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestService_CreateAndDeleteMenuItem(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)
	ctx := context.Background()

	res, err := svc.CreateMenuItem(ctx, &domain.MenuItem{Fields: domain.Fields{"name": "Soup", "category": "soup", "price": 7.5}})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	require.Len(t, repo.items, 1)

	del, err := svc.DeleteMenuItem(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)
	assert.Empty(t, repo.items)

	del, err = svc.DeleteMenuItem(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Zero(t, del.DeletedCount)
}

func TestService_DeleteMenuItem_InvalidID(t *testing.T) {
	svc := NewService(&mockRepository{})

	_, err := svc.DeleteMenuItem(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
