package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"HBnB/internal/cli/repo"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// credential — строка таблицы credentials.
type credential struct {
	Name      string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	ExpiresAt int64  `gorm:"not null;default:0"` // unix seconds, 0 — без срока
}

func (credential) TableName() string { return "credentials" }

// TokenStoreSQLite — хранилище токена в локальной БД SQLite (modernc.org/sqlite через gorm).
type TokenStoreSQLite struct {
	db *gorm.DB
}

var _ repo.TokenStore = (*TokenStoreSQLite)(nil)

// Open открывает (и создаёт при необходимости) файл БД и выполняет миграции.
func Open(path string) (*TokenStoreSQLite, error) {
	if path == "" {
		return nil, errors.New("empty path for token db")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, err
		}
	}
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: path}
	db, err := gorm.Open(dial, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&credential{}); err != nil {
		_ = closeDB(db)
		return nil, err
	}
	return &TokenStoreSQLite{db: db}, nil
}

// Close закрывает соединение с БД.
func (s *TokenStoreSQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return closeDB(s.db)
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save делает upsert строки с ключом token.
func (s *TokenStoreSQLite) Save(t repo.StoredToken) error {
	if t.Token == "" {
		return errors.New("empty token")
	}
	row := credential{Name: repo.TokenKey, Value: t.Token}
	if !t.ExpiresAt.IsZero() {
		row.ExpiresAt = t.ExpiresAt.Unix()
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at"}),
	}).Create(&row).Error
}

// Load читает токен.
func (s *TokenStoreSQLite) Load() (repo.StoredToken, error) {
	var row credential
	err := s.db.Where("name = ?", repo.TokenKey).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repo.StoredToken{}, repo.ErrNoToken
		}
		return repo.StoredToken{}, err
	}
	if row.Value == "" {
		return repo.StoredToken{}, repo.ErrNoToken
	}
	t := repo.StoredToken{Token: row.Value}
	if row.ExpiresAt > 0 {
		t.ExpiresAt = time.Unix(row.ExpiresAt, 0).UTC()
	}
	return t, nil
}

// Clear удаляет строку токена.
func (s *TokenStoreSQLite) Clear() error {
	return s.db.Where("name = ?", repo.TokenKey).Delete(&credential{}).Error
}
