package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopadmin/backend/internal/domain/sitecontent"
)

// GormAppDownloadRepository implements AppDownloadRepository using GORM
type GormAppDownloadRepository struct {
	db *gorm.DB
}

// NewGormAppDownloadRepository creates a new GormAppDownloadRepository
func NewGormAppDownloadRepository(db *gorm.DB) *GormAppDownloadRepository {
	return &GormAppDownloadRepository{db: db}
}

// Get loads the singleton config. A missing row yields an empty config
// rather than an error so the edit form always has something to show.
func (r *GormAppDownloadRepository) Get(ctx context.Context) (*sitecontent.AppDownloadConfig, error) {
	var cfg sitecontent.AppDownloadConfig
	err := r.db.WithContext(ctx).First(&cfg, "id = ?", sitecontent.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &sitecontent.AppDownloadConfig{ID: sitecontent.SingletonID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save upserts the singleton config row
func (r *GormAppDownloadRepository) Save(ctx context.Context, cfg *sitecontent.AppDownloadConfig) error {
	cfg.ID = sitecontent.SingletonID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(cfg).Error
}

// GormTrackingRepository implements TrackingRepository using GORM
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GormTrackingRepository
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Get loads the singleton config, empty when no row exists yet
func (r *GormTrackingRepository) Get(ctx context.Context) (*sitecontent.TrackingConfig, error) {
	var cfg sitecontent.TrackingConfig
	err := r.db.WithContext(ctx).First(&cfg, "id = ?", sitecontent.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &sitecontent.TrackingConfig{ID: sitecontent.SingletonID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save upserts the singleton config row
func (r *GormTrackingRepository) Save(ctx context.Context, cfg *sitecontent.TrackingConfig) error {
	cfg.ID = sitecontent.SingletonID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(cfg).Error
}

// Ensure the repositories implement their interfaces
var (
	_ sitecontent.AppDownloadRepository = (*GormAppDownloadRepository)(nil)
	_ sitecontent.TrackingRepository    = (*GormTrackingRepository)(nil)
)
