package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/bistroboss/bistro-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestPaymentLimiter(t *testing.T) {
	assert.Nil(t, paymentLimiter(config.PaymentConfig{RateLimit: 0, RateBurst: 10}))

	l := paymentLimiter(config.PaymentConfig{RateLimit: 5, RateBurst: 0})
	require.NotNil(t, l)
	assert.Equal(t, rate.Limit(5), l.Limit())
	assert.Equal(t, 1, l.Burst())
}

func TestInitLogger_Level(t *testing.T) {
	logger := initLogger(config.LogConfig{Level: "warn", Format: "json"})

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))

	logger = initLogger(config.LogConfig{Level: "bogus"})
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
