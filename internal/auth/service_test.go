package auth

import (
	"testing"
	"time"

	"campora/internal/shared/config"
	"campora/internal/users"
	"campora/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *service {
	return &service{
		config: &config.Config{
			JWT: config.JWTConfig{
				Secret:           "test-secret",
				JWTExpiresIn:     15 * time.Minute,
				RefreshExpiresIn: 7 * 24 * time.Hour,
			},
		},
		logger: logger.New(),
	}
}

func testUser() *users.User {
	return &users.User{
		ID:        uuid.New(),
		FirstName: "Jordan",
		LastName:  "Reyes",
		Email:     "jordan@example.com",
		Role:      users.RoleUser,
	}
}

func TestGenerateTokenPairRoundTrip(t *testing.T) {
	svc := newTestService()
	user := testUser()

	pair, err := svc.generateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), pair.ExpiresIn)

	claims, err := svc.parseToken(pair.AccessToken, "access")
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, string(users.RoleUser), claims.Role)
	assert.Equal(t, "access", claims.Type)
	assert.NotEmpty(t, claims.ID)

	refreshClaims, err := svc.parseToken(pair.RefreshToken, "refresh")
	require.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims.Type)
	assert.NotEqual(t, claims.ID, refreshClaims.ID)
}

func TestParseTokenRejectsWrongType(t *testing.T) {
	svc := newTestService()

	pair, err := svc.generateTokenPair(testUser())
	require.NoError(t, err)

	_, err = svc.parseToken(pair.AccessToken, "refresh")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.parseToken(pair.RefreshToken, "access")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	pair, err := svc.generateTokenPair(testUser())
	require.NoError(t, err)

	other := newTestService()
	other.config.JWT.Secret = "a-different-secret"

	_, err = other.parseToken(pair.AccessToken, "access")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.parseToken("not.a.token", "access")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
