package service

import (
	"github.com/google/uuid"
)

// Claims carries the identity of a validated access token.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
}

// TokenService validates bearer access tokens issued by the identity provider.
type TokenService interface {
	// ValidateToken checks the signature, expiry and type of an access token.
	ValidateToken(tokenString string) (*Claims, error)
}
