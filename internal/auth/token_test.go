package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-service/internal/models"
	"hospital-service/pkg/response"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	user := &models.User{
		ID:       "user-1",
		Username: "admin1",
		Role:     models.RoleAdmin,
		Name:     "Administrator",
	}

	token, err := manager.NewToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin1", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "Administrator", claims.Name)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.NewToken(&models.User{ID: "user-1", Username: "x", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, response.ErrUnauthorized)
}

func TestParseRejectsExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.NewToken(&models.User{ID: "user-1", Username: "x", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = manager.Parse(token)
	assert.ErrorIs(t, err, response.ErrUnauthorized)
}

func TestParseRejectsGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	_, err := manager.Parse("not.a.token")
	assert.ErrorIs(t, err, response.ErrUnauthorized)
}
