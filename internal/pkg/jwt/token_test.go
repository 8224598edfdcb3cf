package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60,
			Issuer:     "cabbooking-test",
		},
	}
}

func testUser(role models.Role) *models.User {
	return &models.User{
		ID:       uuid.New(),
		Username: "alice",
		Role:     role,
	}
}

func TestGenerateToken(t *testing.T) {
	for _, role := range []models.Role{models.RoleCustomer, models.RoleDriver, models.RoleAdmin} {
		t.Run(string(role), func(t *testing.T) {
			cfg := getTestConfig()
			user := testUser(role)

			tokenString, expiresAt, err := GenerateToken(user, cfg)

			require.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWT.Secret), nil
			})
			require.NoError(t, err)

			claims, ok := token.Claims.(jwt.MapClaims)
			require.True(t, ok)
			assert.Equal(t, user.ID.String(), claims["user_id"])
			assert.Equal(t, "alice", claims["username"])
			assert.Equal(t, string(role), claims["role"])
			assert.Equal(t, cfg.JWT.Issuer, claims["iss"])
			assert.Equal(t, float64(expiresAt), claims["exp"])
		})
	}
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	user := testUser(models.RoleDriver)

	validToken, _, err := GenerateToken(user, cfg)
	require.NoError(t, err)

	expiredCfg := *cfg
	expiredCfg.JWT.Expiration = -1
	expiredToken, _, err := GenerateToken(user, &expiredCfg)
	require.NoError(t, err)

	badRole := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   user.ID.String(),
		Username: user.Username,
		Role:     "superuser",
	})
	badRoleToken, err := badRole.SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
		secret      string
		expectError bool
	}{
		{name: "Valid token", tokenString: validToken, secret: cfg.JWT.Secret},
		{name: "Invalid secret", tokenString: validToken, secret: "wrong-secret", expectError: true},
		{name: "Malformed token", tokenString: "invalid.token.string", secret: cfg.JWT.Secret, expectError: true},
		{name: "Empty token", tokenString: "", secret: cfg.JWT.Secret, expectError: true},
		{name: "Expired token", tokenString: expiredToken, secret: cfg.JWT.Secret, expectError: true},
		{name: "Unknown role", tokenString: badRoleToken, secret: cfg.JWT.Secret, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := ValidateToken(tt.tokenString, tt.secret)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, principal)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, principal.UserID)
			assert.Equal(t, "alice", principal.Username)
			assert.Equal(t, models.RoleDriver, principal.Role)
		})
	}
}
