// Package payments creates payment intents with an external processor.
package payments

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/bistroboss/bistro-api/internal/pkg/metrics"
	"github.com/google/uuid"
)

// ErrInvalidPrice is returned for non-positive or non-finite prices.
var ErrInvalidPrice = errors.New("price must be a positive number")

// PaymentMethodCard is the only payment method offered to clients.
const PaymentMethodCard = "card"

// PaymentIntentParams is what the processor is asked to create.
type PaymentIntentParams struct {
	Amount             int64 // minor currency units
	Currency           string
	PaymentMethodTypes []string
	IdempotencyKey     string
	Metadata           map[string]string
}

// PaymentIntent is the processor's answer.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// Processor creates payment intents.
type Processor interface {
	CreatePaymentIntent(ctx context.Context, params PaymentIntentParams) (*PaymentIntent, error)
}

// Service implements payment logic.
type Service struct {
	processor Processor
	currency  string
}

// NewService creates a payment service charging in currency.
func NewService(processor Processor, currency string) *Service {
	return &Service{processor: processor, currency: currency}
}

// ToMinorUnits converts a major-unit price to an integer amount, e.g. 19.99 -> 1999.
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreatePaymentIntent asks the processor for a card-only intent of price and
// returns the client secret. email is recorded as metadata.
func (s *Service) CreatePaymentIntent(ctx context.Context, email string, price float64) (string, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return "", ErrInvalidPrice
	}

	amount := ToMinorUnits(price)
	if amount <= 0 {
		return "", ErrInvalidPrice
	}

	intent, err := s.processor.CreatePaymentIntent(ctx, PaymentIntentParams{
		Amount:             amount,
		Currency:           s.currency,
		PaymentMethodTypes: []string{PaymentMethodCard},
		IdempotencyKey:     uuid.NewString(),
		Metadata:           map[string]string{"email": email},
	})
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	return intent.ClientSecret, nil
}
