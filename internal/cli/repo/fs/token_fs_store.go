package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"HBnB/internal/cli/repo"
)

// TokenFSStore — файловое хранилище auth-токена для CLI.
// Запись атомарная: временный файл в том же каталоге + rename.
type TokenFSStore struct {
	path string
}

var _ repo.TokenStore = (*TokenFSStore)(nil)

// DefaultPath returns <user config dir>/HBnB/token.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "HBnB", "token.json"), nil
}

// NewTokenFSStore создаёт хранилище по указанному пути (пустой путь → DefaultPath).
// Родительский каталог создаётся с правами 0700.
func NewTokenFSStore(path string) (*TokenFSStore, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return &TokenFSStore{path: path}, nil
}

// Path returns the file the token is kept in.
func (s *TokenFSStore) Path() string { return s.path }

// Save сохраняет токен в файл.
func (s *TokenFSStore) Save(t repo.StoredToken) error {
	if strings.TrimSpace(t.Token) == "" {
		return errors.New("empty token")
	}
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()
	defer func() { _ = tmp.Close() }()

	if _, err := tmp.Write(b); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return err
	}
	return os.Chmod(s.path, 0o600)
}

// Load читает токен из файла.
func (s *TokenFSStore) Load() (repo.StoredToken, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return repo.StoredToken{}, repo.ErrNoToken
		}
		return repo.StoredToken{}, err
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return repo.StoredToken{}, repo.ErrNoToken
	}
	var t repo.StoredToken
	if err := json.Unmarshal(b, &t); err != nil {
		return repo.StoredToken{}, fmt.Errorf("decode token file %s: %w", s.path, err)
	}
	t.Token = strings.TrimSpace(t.Token)
	if t.Token == "" {
		return repo.StoredToken{}, repo.ErrNoToken
	}
	return t, nil
}

// Clear удаляет файл токена.
func (s *TokenFSStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
