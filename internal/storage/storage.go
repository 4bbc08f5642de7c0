package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Entry is a single device-storage value. The session layer keeps the token,
// user blob and role here under fixed keys.
type Entry struct {
	Key       string `gorm:"primaryKey;size:64;not null"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

// CachedResource is the last good JSON snapshot of a backend resource,
// served back when the backend is unreachable (degraded mode).
type CachedResource struct {
	Key       string `gorm:"primaryKey;size:128;not null"`
	Data      []byte `gorm:"not null"`
	FetchedAt time.Time
}

var ErrNotFound = errors.New("storage: key not found")

type Store struct {
	db *gorm.DB
}

func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open device storage: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}, &CachedResource{}); err != nil {
		return nil, fmt.Errorf("migrate device storage: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var entry Entry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete removes the given keys in one transaction so partial credential
// purges cannot happen.
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("key IN ?", keys).Delete(&Entry{}).Error
	})
}

func (s *Store) PutCache(ctx context.Context, key string, data []byte) error {
	cached := CachedResource{Key: key, Data: data, FetchedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "fetched_at"}),
	}).Create(&cached).Error
}

func (s *Store) GetCache(ctx context.Context, key string) ([]byte, time.Time, error) {
	var cached CachedResource
	err := s.db.WithContext(ctx).First(&cached, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, time.Time{}, ErrNotFound
	}
	if err != nil {
		return nil, time.Time{}, err
	}
	return cached.Data, cached.FetchedAt, nil
}
