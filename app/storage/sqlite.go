package storage

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type blobRecord struct {
	Key   string `gorm:"size:64;primaryKey"`
	Value string `gorm:"type:text"`
}

func (blobRecord) TableName() string {
	return "blobs"
}

// SQLiteKV keeps every collection as one JSON blob row in a local
// sqlite file. It is the default backend: a single-store shop does not
// need more than a durable key-value table.
type SQLiteKV struct {
	db *gorm.DB
}

func OpenSQLite(path string) (*SQLiteKV, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store at %s: %w", path, err)
	}

	if err := db.AutoMigrate(&blobRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate blob table: %w", err)
	}

	return &SQLiteKV{db: db}, nil
}

func (s *SQLiteKV) Get(key string) (string, bool, error) {
	var rec blobRecord
	err := s.db.Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return rec.Value, true, nil
}

func (s *SQLiteKV) Set(key, value string) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&blobRecord{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}
