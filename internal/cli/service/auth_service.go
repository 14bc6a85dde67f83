package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"HBnB/internal/cli/api"
	"HBnB/internal/cli/auth"
	"HBnB/internal/cli/model"

	"go.uber.org/zap"
)

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// Login выполняет вход и сохраняет токен.
	Login(ctx context.Context, email, password string) error

	// Logout очищает локальный контекст аутентификации.
	Logout()

	// CurrentUser возвращает id текущего пользователя, если сессия есть.
	CurrentUser() (string, error)

	// Authenticated reports whether a live token is stored.
	Authenticated() bool
}

type authService struct {
	api     api.API
	tokens  auth.TokenStore
	authURL string
	ttl     time.Duration
	log     *zap.SugaredLogger
}

// NewAuthService creates the auth use cases. a should be bound to the login surface.
func NewAuthService(a api.API, tokens auth.TokenStore, authURL string, ttl time.Duration, log *zap.SugaredLogger) AuthService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &authService{api: a, tokens: tokens, authURL: authURL, ttl: ttl, log: log}
}

func (s *authService) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return errors.New("email and password are required")
	}
	var resp model.LoginResponse
	if err := s.api.Post(ctx, join(s.authURL, "login"), model.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if resp.AccessToken == "" {
		return fmt.Errorf("login: %w: no access_token in response", api.ErrMalformedResponse)
	}
	s.tokens.Set(resp.AccessToken, s.ttl)
	s.log.Infow("logged in", "email", email)
	return nil
}

func (s *authService) Logout() {
	s.tokens.Delete()
	s.log.Infow("logged out")
}

func (s *authService) CurrentUser() (string, error) {
	tok, ok := s.tokens.Get()
	if !ok {
		return "", ErrNotAuthenticated
	}
	return auth.SubjectFromToken(tok)
}

func (s *authService) Authenticated() bool {
	_, ok := s.tokens.Get()
	return ok
}
