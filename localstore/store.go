// Package localstore is the client's persisted key-value state: the bearer
// token, the cached user record, and the seen-announcement set survive
// restarts in an embedded SQLite database.
package localstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campus-connect-client/model"
)

// Well-known keys. These mirror the names the backend's web client uses so a
// state file can be inspected with familiar vocabulary.
const (
	KeyAuthToken         = "authToken"
	KeyUserData          = "userData"
	KeyReadAnnouncements = "readAnnouncements"
)

type entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

func (entry) TableName() string { return "kv_entries" }

type Store struct {
	db *gorm.DB
}

// Open creates or opens the state database at path. ":memory:" is accepted
// for tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the stored value for key, or model.ErrKeyNotFound when absent.
func (s *Store) Get(key string) (string, error) {
	var row entry
	if err := s.db.First(&row, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", model.ErrKeyNotFound
		}
		return "", err
	}

	return row.Value, nil
}

func (s *Store) Set(key string, value string) error {
	row := entry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.Save(&row).Error
}

// Delete removes key; deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	return s.db.Delete(&entry{}, "key = ?", key).Error
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
