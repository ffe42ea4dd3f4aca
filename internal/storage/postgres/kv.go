package postgres

import (
	"context"
	"errors"
	"time"

	kvDatamodel "github.com/frahmantamala/lead-tracker/internal/core/datamodel/kv"
	"github.com/frahmantamala/lead-tracker/internal/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepository implements storage.RecordStore on a single SQL table using GORM.
// It runs on both the postgres and the sqlite dialector.
type KVRepository struct {
	db *gorm.DB
}

func NewKVRepository(db *gorm.DB) *KVRepository {
	return &KVRepository{db: db}
}

var _ storage.RecordStore = (*KVRepository)(nil)

func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var entry kvDatamodel.Entry
	err := r.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	entry := kvDatamodel.Entry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
	}).Create(&entry).Error
}

func (r *KVRepository) Remove(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&kvDatamodel.Entry{}).Error
}

func (r *KVRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
