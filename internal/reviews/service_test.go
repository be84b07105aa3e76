package reviews

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	reviews []domain.Review
	err     error
}

func (s *stubRepository) ListReviews(_ context.Context) ([]domain.Review, error) {
	return s.reviews, s.err
}

func TestService_ListReviews(t *testing.T) {
	svc := NewService(&stubRepository{reviews: []domain.Review{{Fields: domain.Fields{"name": "Ann", "details": "Great", "rating": 5}}}})

	list, err := svc.ListReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ann", list[0].Fields["name"])
}

func TestService_ListReviews_NeverNil(t *testing.T) {
	svc := NewService(&stubRepository{})

	list, err := svc.ListReviews(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
}

func TestHandler_ListReviews(t *testing.T) {
	h := NewHandler(NewService(&stubRepository{}))

	rec := httptest.NewRecorder()
	h.ListReviews(rec, httptest.NewRequest(http.MethodGet, "/reviews", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_ListReviews_StoreError(t *testing.T) {
	h := NewHandler(NewService(&stubRepository{err: errors.New("boom")}))

	rec := httptest.NewRecorder()
	h.ListReviews(rec, httptest.NewRequest(http.MethodGet, "/reviews", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
