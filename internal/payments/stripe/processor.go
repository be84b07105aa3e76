// Package stripe implements payments.Processor with the Stripe API.
package stripe

import (
	"context"
	"fmt"

	"github.com/bistroboss/bistro-api/internal/payments"
	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Config contains Stripe client settings.
type Config struct {
	SecretKey string
	// BaseURL overrides the API endpoint. Empty means api.stripe.com.
	BaseURL string
}

// Processor creates payment intents through Stripe.
type Processor struct {
	api *client.API
}

// NewProcessor creates a Stripe processor. The client never retries on its own.
func NewProcessor(cfg Config) *Processor {
	backendCfg := &stripego.BackendConfig{
		MaxNetworkRetries: stripego.Int64(0),
		LeveledLogger:     &stripego.LeveledLogger{Level: stripego.LevelError},
	}
	if cfg.BaseURL != "" {
		backendCfg.URL = stripego.String(cfg.BaseURL)
	}

	backends := &stripego.Backends{
		API:     stripego.GetBackendWithConfig(stripego.APIBackend, backendCfg),
		Connect: stripego.GetBackendWithConfig(stripego.ConnectBackend, backendCfg),
		Uploads: stripego.GetBackendWithConfig(stripego.UploadsBackend, backendCfg),
	}

	return &Processor{api: client.New(cfg.SecretKey, backends)}
}

// CreatePaymentIntent implements payments.Processor.
func (p *Processor) CreatePaymentIntent(ctx context.Context, params payments.PaymentIntentParams) (*payments.PaymentIntent, error) {
	sp := &stripego.PaymentIntentParams{
		Amount:             stripego.Int64(params.Amount),
		Currency:           stripego.String(params.Currency),
		PaymentMethodTypes: stripego.StringSlice(params.PaymentMethodTypes),
	}
	sp.Context = ctx
	if params.IdempotencyKey != "" {
		sp.SetIdempotencyKey(params.IdempotencyKey)
	}
	for k, v := range params.Metadata {
		sp.AddMetadata(k, v)
	}

	pi, err := p.api.PaymentIntents.New(sp)
	if err != nil {
		return nil, fmt.Errorf("stripe: %w", err)
	}

	return &payments.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}
