package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by an issued access token.
type Claims struct {
	UserName string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken signs a token carrying the identity and role claims
	// and returns it together with its absolute expiry.
	GenerateAccessToken(userName, roleName string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks signature, issuer, audience and expiry of a token
	// string and returns its claims.
	ValidateToken(token string) (*Claims, error)
}
