// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"loyalty/config"
	"loyalty/internal/domain/service"
	"loyalty/internal/errors"
)

const accessTokenType = "access"

// jwtService validates HS256 access tokens issued by the identity service.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken checks the validity of an access token and extracts its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := jwt.MapClaims{}
	if _, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	if tokenType, ok := claims["type"].(string); ok && tokenType != accessTokenType {
		return nil, errors.Errorf("unexpected token type: %s", tokenType)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "subject is not a valid user id")
	}

	return &service.Claims{
		UserID: userID,
		Roles:  rolesFromClaims(claims),
	}, nil
}

func rolesFromClaims(claims jwt.MapClaims) []string {
	raw, ok := claims["roles"].([]any)
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if role, ok := r.(string); ok {
			roles = append(roles, role)
		}
	}

	return roles
}
