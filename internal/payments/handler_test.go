package payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_CreatePaymentIntent(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCalls  int
	}{
		{"valid price", `{"price":19.99}`, http.StatusOK, 1},
		{"zero price", `{"price":0}`, http.StatusBadRequest, 0},
		{"negative price", `{"price":-3}`, http.StatusBadRequest, 0},
		{"not a number", `{"price":"abc"}`, http.StatusBadRequest, 0},
		{"broken json", `{`, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := &fakeProcessor{}
			h := NewHandler(NewService(proc, "usd"))

			req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(tt.body))
			req = req.WithContext(httputil.WithEmail(req.Context(), "a@x.com"))
			rec := httptest.NewRecorder()

			h.CreatePaymentIntent(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Len(t, proc.calls, tt.wantCalls)

			if tt.wantStatus == http.StatusOK {
				var resp CreatePaymentIntentResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "pi_1_secret", resp.ClientSecret)
				assert.Equal(t, int64(1999), proc.calls[0].Amount)
			}
		})
	}
}
