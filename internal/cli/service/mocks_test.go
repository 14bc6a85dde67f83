package service

import (
	"context"
	"testing"
	"time"

	"HBnB/internal/cli/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Мок api.API ---
type mockAPI struct{ mock.Mock }

func (m *mockAPI) Get(ctx context.Context, url string, out any) error {
	return m.Called(ctx, url, out).Error(0)
}

func (m *mockAPI) Post(ctx context.Context, url string, body, out any) error {
	return m.Called(ctx, url, body, out).Error(0)
}

// sessionWith возвращает in-memory хранилище с токеном для пользователя sub (пустой sub — без токена).
func sessionWith(t *testing.T, sub string) *auth.Store {
	t.Helper()
	s := auth.NewStore(nil, time.Hour)
	if sub != "" {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub}).SignedString([]byte("k"))
		require.NoError(t, err)
		s.Set(tok, time.Hour)
	}
	return s
}
