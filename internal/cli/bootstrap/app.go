package bootstrap

import (
	"fmt"
	"io"
	"net/http"

	"HBnB/internal/cli/api"
	"HBnB/internal/cli/auth"
	"HBnB/internal/cli/repo"
	fsrepo "HBnB/internal/cli/repo/fs"
	"HBnB/internal/cli/repo/keychain"
	reposqlite "HBnB/internal/cli/repo/sqlite"
	"HBnB/internal/cli/service"
	"HBnB/internal/cli/session"
	"HBnB/internal/config"
	"HBnB/internal/logger"

	"go.uber.org/zap"
)

// App is the wired client: token store, request façade, session and services.
type App struct {
	Log     *zap.SugaredLogger
	Tokens  *auth.Store
	Client  *api.Client
	Session *session.Coordinator
	Auth    service.AuthService
	Places  service.PlaceService
	Reviews service.ReviewService
}

// Open собирает клиент по конфигурации и возвращает (app, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть БД и сбросить буфер логгера.
func Open(cfg *config.Config, out io.Writer) (*App, func() error, error) {
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	durable, closeStore, err := openDurable(cfg)
	if err != nil {
		_ = log.Sync()
		return nil, nil, fmt.Errorf("open token store (%s): %w", cfg.TokenBackend, err)
	}

	tokens := auth.NewStore(durable, cfg.TokenMaxAge(), auth.WithLogger(log))
	client := api.NewClient(&http.Client{Timeout: cfg.HTTPTimeout}, tokens, log)

	start := api.SurfaceLogin
	if tokens.Authenticated() {
		start = api.SurfaceIndex
	}
	app := &App{
		Log:     log,
		Tokens:  tokens,
		Client:  client,
		Session: session.New(start, session.PrintNavigator{Out: out}, log),
		Auth:    service.NewAuthService(client.On(api.SurfaceLogin), tokens, cfg.AuthURL(), cfg.TokenMaxAge(), log),
		Places:  service.NewPlaceService(client.On(api.SurfaceIndex), cfg.PlacesURL()),
		Reviews: service.NewReviewService(client.On(api.SurfaceIndex), tokens, cfg.ReviewsURL()),
	}
	log.Debugw("client ready", "api", cfg.APIURL, "token_backend", cfg.TokenBackend, "surface", string(start))

	cleanup := func() error {
		err := closeStore()
		// Sync на stderr может вернуть EINVAL, это не ошибка клиента
		_ = log.Sync()
		return err
	}
	return app, cleanup, nil
}

func openDurable(cfg *config.Config) (repo.TokenStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.TokenBackend {
	case config.BackendNone:
		return nil, noop, nil
	case config.BackendSQLite:
		s, err := reposqlite.Open(cfg.TokenDBPath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.BackendKeyring:
		s, err := keychain.NewTokenStoreKeyring(keychain.DefaultService)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	default:
		s, err := fsrepo.NewTokenFSStore(cfg.TokenFile)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	}
}
