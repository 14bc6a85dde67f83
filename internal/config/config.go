package config

import (
	"flag"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Значения по умолчанию.
const (
	DefaultAPIURL       = "http://localhost:5000"
	DefaultAuthPath     = "/api/v1/auth"
	DefaultPlacesPath   = "/api/v1/places"
	DefaultReviewsPath  = "/api/v1/reviews"
	DefaultTokenTTL     = 3600
	DefaultTokenBackend = "file"
	DefaultHTTPTimeout  = 15 * time.Second
)

// Backends supported for the secondary (durable) token store.
const (
	BackendFile    = "file"
	BackendSQLite  = "sqlite"
	BackendKeyring = "keyring"
	BackendNone    = "none"
)

type Config struct {
	// API endpoints
	APIURL      string `env:"API_URL"`
	AuthPath    string `env:"AUTH_PATH"`
	PlacesPath  string `env:"PLACES_PATH"`
	ReviewsPath string `env:"REVIEWS_PATH"`

	// Token persistence
	TokenTTL     int    `env:"TOKEN_TTL"` // seconds
	TokenBackend string `env:"TOKEN_BACKEND"`
	TokenFile    string `env:"TOKEN_FILE"`
	TokenDBPath  string `env:"TOKEN_DB_PATH"`

	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT"`
	LogLevel    string        `env:"LOG_LEVEL"`
	Version     bool          `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "base URL of the HBnB API, e.g. http://localhost:5000")
	flag.IntVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "lifetime of the stored auth token in seconds")
	flag.StringVar(&cfg.TokenBackend, "token-backend", cfg.TokenBackend, "durable token store: file, sqlite, keyring or none")
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (file backend)")
	flag.StringVar(&cfg.TokenDBPath, "token-db", cfg.TokenDBPath, "path to token SQLite DB (sqlite backend)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error (empty disables logging)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

// applyDefaults заполняет пустые и невалидные значения.
func (c *Config) applyDefaults() {
	// API_URL должен быть абсолютным http(s) URL, иначе берём значение по умолчанию.
	if u, err := url.Parse(c.APIURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		c.APIURL = DefaultAPIURL
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")

	if c.AuthPath == "" {
		c.AuthPath = DefaultAuthPath
	}
	if c.PlacesPath == "" {
		c.PlacesPath = DefaultPlacesPath
	}
	if c.ReviewsPath == "" {
		c.ReviewsPath = DefaultReviewsPath
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = DefaultTokenTTL
	}
	switch c.TokenBackend {
	case BackendFile, BackendSQLite, BackendKeyring, BackendNone:
	default:
		c.TokenBackend = DefaultTokenBackend
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}

	cfgDir, err := os.UserConfigDir()
	if err != nil {
		cfgDir, _ = os.UserHomeDir()
	}
	if c.TokenFile == "" {
		c.TokenFile = filepath.Join(cfgDir, "HBnB", "token.json")
	}
	if c.TokenDBPath == "" {
		c.TokenDBPath = filepath.Join(cfgDir, "HBnB", "session.sqlite")
	}
}

// AuthURL returns the base URL of the auth namespace.
func (c *Config) AuthURL() string { return joinURL(c.APIURL, c.AuthPath) }

// PlacesURL returns the base URL of the places namespace.
func (c *Config) PlacesURL() string { return joinURL(c.APIURL, c.PlacesPath) }

// ReviewsURL returns the base URL of the reviews namespace.
func (c *Config) ReviewsURL() string { return joinURL(c.APIURL, c.ReviewsPath) }

// TokenMaxAge returns the token lifetime as a duration.
func (c *Config) TokenMaxAge() time.Duration { return time.Duration(c.TokenTTL) * time.Second }

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Trim(path, "/")
}
