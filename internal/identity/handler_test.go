package identity

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bistroboss/bistro-api/internal/identity/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingIssuer struct{}

func (failingIssuer) Issue(map[string]any) (string, error) {
	return "", errors.New("signing failed")
}

func TestHandler_IssueToken(t *testing.T) {
	auth := jwt.NewAuthenticator(jwt.Config{SecretKey: "test-secret", TokenDuration: time.Hour})
	h := NewHandler(auth)

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com","name":"A"}`))
	rec := httptest.NewRecorder()

	h.IssueToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)

	claims, err := auth.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestHandler_IssueToken_InvalidJSON(t *testing.T) {
	h := NewHandler(jwt.NewAuthenticator(jwt.Config{SecretKey: "test-secret"}))

	for _, body := range []string{`{`, `"just a string"`, `[1,2]`} {
		req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.IssueToken(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestHandler_IssueToken_IssuerFailure(t *testing.T) {
	h := NewHandler(failingIssuer{})

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	rec := httptest.NewRecorder()

	h.IssueToken(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal error")
}
