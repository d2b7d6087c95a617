package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/shared"
)

var imageSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"file_name":  true,
	"file_size":  true,
}

// GormImageRepository implements ImageRepository using GORM
type GormImageRepository struct {
	db *gorm.DB
}

// NewGormImageRepository creates a new GormImageRepository
func NewGormImageRepository(db *gorm.DB) *GormImageRepository {
	return &GormImageRepository{db: db}
}

// FindByID finds an image record by its ID
func (r *GormImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Image, error) {
	var image catalog.Image
	if err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

// FindByPublicURL finds an image record by the URL it is served from
func (r *GormImageRepository) FindByPublicURL(ctx context.Context, publicURL string) (*catalog.Image, error) {
	var image catalog.Image
	if err := r.db.WithContext(ctx).First(&image, "public_url = ?", publicURL).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

// FindAll finds image records matching the filter
func (r *GormImageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Image, error) {
	var images []catalog.Image
	query := r.db.WithContext(ctx).Model(&catalog.Image{})
	if filter.Search != "" {
		query = query.Where("file_name LIKE ?", "%"+filter.Search+"%")
	}
	query = applyPagination(query, filter, imageSortFields)

	if err := query.Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// Save creates or updates an image record
func (r *GormImageRepository) Save(ctx context.Context, image *catalog.Image) error {
	return r.db.WithContext(ctx).Save(image).Error
}

// Delete deletes an image record
func (r *GormImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Image{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts image records matching the filter
func (r *GormImageRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Image{})
	if filter.Search != "" {
		query = query.Where("file_name LIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormImageRepository implements ImageRepository
var _ catalog.ImageRepository = (*GormImageRepository)(nil)
