package controllers

import (
	"errors"
	"net/http"
	"testing"

	"weddinginvites/internal/delivery/http/helpers"
	"weddinginvites/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthController_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"created", RegisterRequest{Name: "Ann", Email: "Ann@Example.com", Password: "longenough"}, nil, http.StatusCreated, ""},
		{"missing name", RegisterRequest{Email: "ann@example.com", Password: "longenough"}, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"short password", RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "short"}, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"bad email", RegisterRequest{Name: "Ann", Email: "nope", Password: "longenough"}, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"unknown field", `{"name":"Ann","email":"ann@example.com","password":"longenough","role":"admin"}`, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"duplicate", RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "longenough"}, domain.ErrDuplicateEmail, http.StatusConflict, helpers.ErrCodeConflict},
		{"store down", RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "longenough"}, errors.New("db down"), http.StatusInternalServerError, helpers.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAuthService{user: &domain.User{ID: "u-1", Email: "ann@example.com", Name: "Ann"}, err: tt.svcErr}
			c := NewAuthController(testLogger, svc)

			rr := doJSON(t, c.Register, http.MethodPost, "/api/register", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rr))
				return
			}
			var user domain.User
			decodeData(t, rr, &user)
			assert.Equal(t, "u-1", user.ID)
			assert.Equal(t, "ann@example.com", svc.gotEmail)
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{token: "jwt", user: &domain.User{ID: "u-1", Email: "ann@example.com"}}
		rr := doJSON(t, NewAuthController(testLogger, svc).Login, http.MethodPost, "/api/login", LoginRequest{Email: "ANN@example.com", Password: "pw"})

		require.Equal(t, http.StatusOK, rr.Code)
		var resp LoginResponse
		decodeData(t, rr, &resp)
		assert.Equal(t, "jwt", resp.Token)
		assert.Equal(t, "Bearer", resp.TokenType)
		require.NotNil(t, resp.User)
		assert.Equal(t, "u-1", resp.User.ID)
		assert.Equal(t, "ann@example.com", svc.gotEmail)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := &fakeAuthService{err: domain.ErrInvalidCredentials}
		rr := doJSON(t, NewAuthController(testLogger, svc).Login, http.MethodPost, "/api/login", LoginRequest{Email: "a@b.com", Password: "pw"})
		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, helpers.ErrCodeUnauthorized, errorCode(t, rr))
	})

	t.Run("missing password", func(t *testing.T) {
		rr := doJSON(t, NewAuthController(testLogger, &fakeAuthService{}).Login, http.MethodPost, "/api/login", LoginRequest{Email: "a@b.com"})
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
