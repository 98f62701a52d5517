package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-service/api"
	"hospital-service/pkg/response"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		user, err := svc.Register(ctx, &api.RegisterRequest{
			Username: "reception1",
			Password: "s3cret",
			Name:     "Front Desk",
		})
		require.NoError(t, err)

		assert.Equal(t, "reception", user.Role, "role defaults to reception")

		login, err := svc.Login(ctx, &api.LoginRequest{Username: "reception1", Password: "s3cret"})
		require.NoError(t, err)

		assert.NotEmpty(t, login.Token)
		assert.Equal(t, user.ID, login.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		_, err := svc.Register(ctx, &api.RegisterRequest{Username: "admin1", Password: "right", Role: "admin"})
		require.NoError(t, err)

		_, err = svc.Login(ctx, &api.LoginRequest{Username: "admin1", Password: "wrong"})
		assert.ErrorIs(t, err, response.ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		_, err := svc.Login(ctx, &api.LoginRequest{Username: "ghost", Password: "x"})
		assert.ErrorIs(t, err, response.ErrUnauthorized)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		_, err := svc.Register(ctx, &api.RegisterRequest{Username: "admin1", Password: "x"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, &api.RegisterRequest{Username: "admin1", Password: "y"})
		assert.ErrorIs(t, err, response.ErrConflict)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		_, err := svc.Register(ctx, &api.RegisterRequest{Username: "u", Password: "p", Role: "superuser"})
		assert.ErrorIs(t, err, response.ErrValidation)
	})
}
