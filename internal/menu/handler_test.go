package menu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHandler_CreateMenuItem(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"full dish", `{"name":"Soup","category":"soup","price":7.5}`, http.StatusOK},
		{"no category", `{"name":"Soup","price":7.5}`, http.StatusOK},
		{"relative image", `{"name":"Soup","image":"soup.jpg"}`, http.StatusOK},
		{"empty object", `{}`, http.StatusOK},
		{"array body", `[{"name":"Soup"}]`, http.StatusBadRequest},
		{"invalid json", `{"name":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			h := NewHandler(NewService(repo))

			req := httptest.NewRequest(http.MethodPost, "/menu", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.CreateMenuItem(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Empty(t, repo.items)
			}
		})
	}
}

func TestHandler_CreateMenuItem_KeepsUnknownFields(t *testing.T) {
	repo := &mockRepository{}
	h := NewHandler(NewService(repo))

	body := `{"_id":"` + primitive.NewObjectID().Hex() + `","name":"Soup","chef":"Ana","allergens":["celery"]}`
	req := httptest.NewRequest(http.MethodPost, "/menu", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateMenuItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.items, 1)
	stored := repo.items[0]
	assert.Equal(t, "Ana", stored.Fields["chef"])
	assert.Equal(t, []any{"celery"}, stored.Fields["allergens"])
	assert.NotContains(t, stored.Fields, "_id")
}

func TestHandler_DeleteMenuItem(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)
	h := NewHandler(svc)

	res, err := svc.CreateMenuItem(context.Background(), &domain.MenuItem{Fields: domain.Fields{"name": "Soup"}})
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", res.InsertedID)
	req := httptest.NewRequest(http.MethodDelete, "/menu/"+res.InsertedID, nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	h.DeleteMenuItem(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, repo.items)
}

func TestHandler_DeleteMenuItem_BadEscape(t *testing.T) {
	repo := &mockRepository{}
	h := NewHandler(NewService(repo))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "%zz")
	req := httptest.NewRequest(http.MethodDelete, "/menu/x", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	h.DeleteMenuItem(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
