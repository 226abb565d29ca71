package auth

import (
	"testing"
	"time"

	"loyalty/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func signToken(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod, key any) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token := signToken(t, jwt.MapClaims{
		"sub":   userID.String(),
		"exp":   time.Now().Add(time.Hour).Unix(),
		"type":  "access",
		"roles": []string{"client", "merchant"},
	}, jwt.SigningMethodHS256, []byte(testSecret))

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"client", "merchant"}, claims.Roles)
}

func TestJWTService_ValidateToken_Rejects(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	valid := jwt.MapClaims{"sub": uuid.NewString(), "exp": time.Now().Add(time.Hour).Unix()}

	tests := []struct {
		name  string
		token string
	}{
		{"not a jwt", "clearly-not-a-jwt-token-format"},
		{"wrong secret", signToken(t, valid, jwt.SigningMethodHS256, []byte("other-secret"))},
		{"expired", signToken(t, jwt.MapClaims{"sub": uuid.NewString(), "exp": time.Now().Add(-time.Minute).Unix()}, jwt.SigningMethodHS256, []byte(testSecret))},
		{"missing exp", signToken(t, jwt.MapClaims{"sub": uuid.NewString()}, jwt.SigningMethodHS256, []byte(testSecret))},
		{"refresh token", signToken(t, jwt.MapClaims{"sub": uuid.NewString(), "exp": time.Now().Add(time.Hour).Unix(), "type": "refresh"}, jwt.SigningMethodHS256, []byte(testSecret))},
		{"subject not uuid", signToken(t, jwt.MapClaims{"sub": "alice", "exp": time.Now().Add(time.Hour).Unix()}, jwt.SigningMethodHS256, []byte(testSecret))},
		{"wrong algorithm", signToken(t, valid, jwt.SigningMethodHS512, []byte(testSecret))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
