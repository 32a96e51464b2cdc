package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type slotRecord struct {
	Key       string    `gorm:"column:slot_key;primaryKey;size:191"`
	Value     string    `gorm:"column:value;type:longtext;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (slotRecord) TableName() string { return "slots" }

// MySQLBackend stores slots in a MySQL table through GORM.
type MySQLBackend struct {
	db *gorm.DB
}

var _ Backend = (*MySQLBackend)(nil)

// NewMySQL connects and migrates the slots table.
func NewMySQL(dsn string) (*MySQLBackend, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	if err := db.AutoMigrate(&slotRecord{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &MySQLBackend{db: db}, nil
}

func (m *MySQLBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var rec slotRecord
	err := m.db.WithContext(ctx).Where("slot_key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(rec.Value), nil
}

func (m *MySQLBackend) Set(ctx context.Context, key string, value []byte) error {
	rec := slotRecord{Key: key, Value: string(value), UpdatedAt: time.Now()}
	return m.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}

func (m *MySQLBackend) Delete(ctx context.Context, key string) error {
	return m.db.WithContext(ctx).Where("slot_key = ?", key).Delete(&slotRecord{}).Error
}

func (m *MySQLBackend) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
