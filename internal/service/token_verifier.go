package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/guttosm/delivery-service/internal/domain/dto"
)

var (
	// ErrInvalidToken is returned when a token is malformed, expired or wrongly signed.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrVerifierNotConfigured is returned when no signing secret was provided.
	ErrVerifierNotConfigured = errors.New("token verifier not configured")
)

// TokenVerifier validates bearer tokens issued by the identity provider.
type TokenVerifier interface {
	Verify(tokenString string) (*dto.Claims, error)
}

// ClaimsWithJWT is the token payload: identity claims plus the registered JWT claims.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// HMACTokenVerifier verifies HS256 tokens against a shared secret. It never issues tokens.
type HMACTokenVerifier struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// VerifierOption configures an HMACTokenVerifier.
type VerifierOption func(*HMACTokenVerifier)

// WithIssuer requires tokens to carry the given iss claim.
func WithIssuer(issuer string) VerifierOption {
	return func(v *HMACTokenVerifier) {
		v.issuer = issuer
	}
}

// WithLeeway tolerates clock skew when checking exp and nbf.
func WithLeeway(leeway time.Duration) VerifierOption {
	return func(v *HMACTokenVerifier) {
		v.leeway = leeway
	}
}

// NewHMACTokenVerifier creates a verifier for tokens signed with secret.
func NewHMACTokenVerifier(secret string, opts ...VerifierOption) *HMACTokenVerifier {
	v := &HMACTokenVerifier{secret: []byte(secret)}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify parses tokenString and returns its identity claims.
// Tokens without an expiry are rejected.
func (v *HMACTokenVerifier) Verify(tokenString string) (*dto.Claims, error) {
	if len(v.secret) == 0 {
		return nil, ErrVerifierNotConfigured
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuer))
	}
	if v.leeway > 0 {
		parserOpts = append(parserOpts, jwt.WithLeeway(v.leeway))
	}

	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, parserOpts...)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ClaimsWithJWT)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	return &claims.Claims, nil
}
