package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvites/internal/domain"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		errIs    error
	}{
		{name: "success normalizes email", email: "  Alice@Example.com ", password: "password123"},
		{name: "invalid email", email: "not-an-email", password: "password123", errIs: domain.ErrInvalidInput},
		{name: "short password", email: "a@example.com", password: "short", errIs: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			svc := NewAuthService(repo, fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour, testTimeout)

			u, err := svc.Register(ctx, " Alice ", tt.email, tt.password)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "created-1", u.ID)
			assert.Equal(t, "alice@example.com", u.Email)
			assert.Equal(t, "Alice", u.Name)
			assert.Equal(t, "salt", u.Salt)
			assert.Equal(t, "hash-salt-"+tt.password, u.PasswordHash)
		})
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour, testTimeout)

	_, err := svc.Register(context.Background(), "A", "a@example.com", "password123")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "A", "a@example.com", "password123")
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour, testTimeout)
	_, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	token, u, err := svc.Login(ctx, "ALICE@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "token-created-1", token)
	assert.Equal(t, "alice@example.com", u.Email)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	repo.getErr = errors.New("db down")
	_, _, err = svc.Login(ctx, "alice@example.com", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_IssuerError(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, fakePasswordHasher{}, &fakeTokenIssuer{err: errors.New("no key")}, time.Hour, testTimeout)
	_, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "password123")
	require.Error(t, err)
}
