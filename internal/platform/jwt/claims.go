package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind tells access tokens apart from refresh tokens.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims is the decoded, read-only view of a token.
// A zero ExpiresAt means the token carries no exp claim.
type Claims struct {
	Subject   string
	Kind      Kind
	ID        string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// customClaims is the wire representation of Claims.
type customClaims struct {
	Kind Kind `json:"typ,omitempty"`
	jwt.RegisteredClaims
}

func (c *customClaims) toClaims() *Claims {
	claims := &Claims{
		Subject: c.Subject,
		Kind:    c.Kind,
		ID:      c.ID,
		Issuer:  c.Issuer,
	}

	if c.IssuedAt != nil {
		claims.IssuedAt = c.IssuedAt.Time
	}

	if c.ExpiresAt != nil {
		claims.ExpiresAt = c.ExpiresAt.Time
	}

	return claims
}
