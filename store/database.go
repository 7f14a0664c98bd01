package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is the single table behind the database driver: one row per record
// key, the value stored as an opaque JSON blob. No schema beyond that, so the
// store stays as shapeless as its local-storage ancestor.
type Record struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value []byte
}

// DatabaseStore persists records through GORM (MySQL or SQLite, per config).
type DatabaseStore struct {
	notifier
	db *gorm.DB
}

func NewDatabaseStore(db *gorm.DB) (*DatabaseStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &DatabaseStore{db: db}, nil
}

func (s *DatabaseStore) Get(ctx context.Context, key string, dest interface{}) bool {
	var record Record
	err := s.db.WithContext(ctx).First(&record, "`key` = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("record store: read %q: %v", key, err)
		}
		return false
	}
	if err := decodeRecord(record.Value, dest); err != nil {
		log.Printf("record store: malformed record %q: %v", key, err)
		return false
	}
	return true
}

func (s *DatabaseStore) Set(ctx context.Context, key string, value interface{}) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return err
	}
	record := Record{Key: key, Value: blob}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&record).Error
	if err != nil {
		return err
	}
	s.publish(key)
	return nil
}

func (s *DatabaseStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&Record{}, "`key` = ?", key).Error
	if err != nil {
		return err
	}
	s.publish(key)
	return nil
}

func (s *DatabaseStore) Subscribe(key string, fn func()) {
	s.subscribe(key, fn)
}
