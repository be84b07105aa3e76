// Package jwt issues and verifies HS256 bearer tokens.
package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenDuration is how long an issued token stays valid.
const DefaultTokenDuration = 2 * time.Hour

// ErrInvalidToken matches every *VerificationError.
var ErrInvalidToken = errors.New("invalid token")

// Reason classifies a verification failure.
type Reason string

const (
	ReasonMissing          Reason = "missing"
	ReasonMalformed        Reason = "malformed"
	ReasonInvalidSignature Reason = "invalid-signature"
	ReasonExpired          Reason = "expired"
)

// VerificationError describes why a token was rejected.
type VerificationError struct {
	Reason Reason
	Err    error
}

func (e *VerificationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("token %s", e.Reason)
	}
	return fmt.Sprintf("token %s: %v", e.Reason, e.Err)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInvalidToken) hold for any verification failure.
func (e *VerificationError) Is(target error) bool {
	return target == ErrInvalidToken
}

// Claims is the decoded token payload.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Config contains token settings.
type Config struct {
	SecretKey     string
	TokenDuration time.Duration
}

// Authenticator signs and verifies tokens with a shared secret.
type Authenticator struct {
	secret   []byte
	duration time.Duration
	now      func() time.Time
}

// NewAuthenticator creates an authenticator. A zero TokenDuration means DefaultTokenDuration.
func NewAuthenticator(cfg Config) *Authenticator {
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = DefaultTokenDuration
	}
	return &Authenticator{
		secret:   []byte(cfg.SecretKey),
		duration: duration,
		now:      time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (a *Authenticator) WithClock(now func() time.Time) *Authenticator {
	a.now = now
	return a
}

// Issue signs payload as-is, adding iat and exp. Caller supplied iat/exp are replaced.
func (a *Authenticator) Issue(payload map[string]any) (string, error) {
	issuedAt := a.now()

	claims := make(jwt.MapClaims, len(payload)+2)
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = jwt.NewNumericDate(issuedAt)
	claims["exp"] = jwt.NewNumericDate(issuedAt.Add(a.duration))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the decoded claims.
// Every failure is a *VerificationError.
func (a *Authenticator) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, &VerificationError{Reason: ReasonMissing}
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, &VerificationError{Reason: reasonFor(err), Err: err}
	}

	return &claims, nil
}

var errNoEmailClaim = errors.New("email claim missing")

// ValidateToken implements httputil.TokenValidator. A token without an
// email is malformed: there is no caller to scope carts or roles to.
func (a *Authenticator) ValidateToken(_ context.Context, tokenString string) (string, error) {
	claims, err := a.Verify(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Email == "" {
		return "", &VerificationError{Reason: ReasonMalformed, Err: errNoEmailClaim}
	}
	return claims.Email, nil
}

func reasonFor(err error) Reason {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ReasonExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ReasonInvalidSignature
	default:
		return ReasonMalformed
	}
}
