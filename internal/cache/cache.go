// Package cache is the local snapshot store: one SQLite row per entity
// collection, value = the collection as a JSON array. It is a best-effort
// availability layer, not a correctness guarantee; a missing or unparsable
// snapshot reads as an empty collection.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// snapshot is one cached entity collection.
type snapshot struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:text"`
}

// Cache is an explicit service object, constructed once at startup and
// passed to whatever needs it.
type Cache struct {
	db *gorm.DB
}

// Open creates or opens a snapshot cache at path. The special path
// ":memory:" opens an ephemeral cache.
func Open(path string) (*Cache, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("cache: create dir for %s: %w", path, err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	// A single connection keeps concurrent snapshot writes from tripping
	// SQLite's locking, and keeps ":memory:" pointing at one database.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&snapshot{}); err != nil {
		return nil, fmt.Errorf("cache: migrate: %w", err)
	}
	return &Cache{db: db}, nil
}

// Get returns the raw JSON snapshot for key, or "" when absent.
func (c *Cache) Get(key string) string {
	var s snapshot
	// A broken cache reads like an absent one.
	if err := c.db.First(&s, "key = ?", key).Error; err != nil {
		return ""
	}
	return s.Value
}

// Put overwrites the snapshot for key.
func (c *Cache) Put(key, value string) error {
	s := snapshot{Key: key, Value: value}
	if err := c.db.Save(&s).Error; err != nil {
		return fmt.Errorf("cache: put %s: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot for key.
func (c *Cache) Delete(key string) error {
	if err := c.db.Delete(&snapshot{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("cache: delete %s: %w", key, err)
	}
	return nil
}
