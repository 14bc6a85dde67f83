package repo

import (
	"errors"
	"time"
)

// TokenKey — ключ, под которым токен хранится во всех хранилищах.
const TokenKey = "token"

// ErrNoToken возвращается хранилищем, если токен не сохранён.
var ErrNoToken = errors.New("no stored token")

// StoredToken is a credential together with the moment it lapses.
type StoredToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the token has lapsed at the given moment.
func (t StoredToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// TokenStore описывает абстракцию долговременного хранилища auth-токена на клиенте.
type TokenStore interface {
	// Save перезаписывает сохранённый токен.
	Save(t StoredToken) error
	// Load возвращает сохранённый токен или ErrNoToken.
	Load() (StoredToken, error)
	// Clear удаляет токен. Повторный вызов не является ошибкой.
	Clear() error
}
