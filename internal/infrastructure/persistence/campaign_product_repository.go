package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/shared"
)

var campaignProductSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"name":           true,
	"price":          true,
	"is_recommended": true,
}

// GormCampaignProductRepository implements CampaignProductRepository using GORM
type GormCampaignProductRepository struct {
	db *gorm.DB
}

// NewGormCampaignProductRepository creates a new GormCampaignProductRepository
func NewGormCampaignProductRepository(db *gorm.DB) *GormCampaignProductRepository {
	return &GormCampaignProductRepository{db: db}
}

// FindByID finds a campaign product by its ID
func (r *GormCampaignProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.CampaignProduct, error) {
	var product catalog.CampaignProduct
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll finds all campaign products matching the filter
func (r *GormCampaignProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.CampaignProduct, error) {
	var products []catalog.CampaignProduct
	query := r.applySearch(r.db.WithContext(ctx).Model(&catalog.CampaignProduct{}), filter)
	query = applyPagination(query, filter, campaignProductSortFields)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindRecommended finds campaign products flagged as recommended
func (r *GormCampaignProductRepository) FindRecommended(ctx context.Context, filter shared.Filter) ([]catalog.CampaignProduct, error) {
	var products []catalog.CampaignProduct
	query := r.db.WithContext(ctx).Model(&catalog.CampaignProduct{}).Where("is_recommended = ?", true)
	query = applyPagination(query, filter, campaignProductSortFields)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save creates or updates a campaign product
func (r *GormCampaignProductRepository) Save(ctx context.Context, product *catalog.CampaignProduct) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// UpdateFields applies a partial column update in a single write
func (r *GormCampaignProductRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&catalog.CampaignProduct{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a campaign product
func (r *GormCampaignProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.CampaignProduct{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts campaign products matching the filter
func (r *GormCampaignProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&catalog.CampaignProduct{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormCampaignProductRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if recommended, ok := filter.Filters["is_recommended"]; ok {
		query = query.Where("is_recommended = ?", recommended)
	}
	return query
}

// Ensure GormCampaignProductRepository implements CampaignProductRepository
var _ catalog.CampaignProductRepository = (*GormCampaignProductRepository)(nil)
