package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/shared"
)

var trafficProductSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"name":          true,
	"category":      true,
	"current_price": true,
}

// GormTrafficProductRepository implements TrafficProductRepository using GORM
type GormTrafficProductRepository struct {
	db *gorm.DB
}

// NewGormTrafficProductRepository creates a new GormTrafficProductRepository
func NewGormTrafficProductRepository(db *gorm.DB) *GormTrafficProductRepository {
	return &GormTrafficProductRepository{db: db}
}

// FindByID finds a traffic product by its ID with its image records
func (r *GormTrafficProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.TrafficProduct, error) {
	var product catalog.TrafficProduct
	if err := r.db.WithContext(ctx).
		Preload("Image").
		Preload("QCImage").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll finds all traffic products matching the filter
func (r *GormTrafficProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.TrafficProduct, error) {
	var products []catalog.TrafficProduct
	query := r.applySearch(r.db.WithContext(ctx).Model(&catalog.TrafficProduct{}), filter)
	query = applyPagination(query, filter, trafficProductSortFields)

	if err := query.Preload("Image").Preload("QCImage").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByCategory finds all traffic products in a category
func (r *GormTrafficProductRepository) FindByCategory(ctx context.Context, category string, filter shared.Filter) ([]catalog.TrafficProduct, error) {
	var products []catalog.TrafficProduct
	query := r.db.WithContext(ctx).Model(&catalog.TrafficProduct{}).Where("category = ?", category)
	query = applyPagination(query, filter, trafficProductSortFields)

	if err := query.Preload("Image").Preload("QCImage").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save creates or updates a traffic product
func (r *GormTrafficProductRepository) Save(ctx context.Context, product *catalog.TrafficProduct) error {
	return r.db.WithContext(ctx).Omit("Image", "QCImage").Save(product).Error
}

// SaveBatch inserts multiple traffic products in one statement. Used
// by bulk import after per-row validation.
func (r *GormTrafficProductRepository) SaveBatch(ctx context.Context, products []*catalog.TrafficProduct) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Image", "QCImage").Create(products).Error
}

// UpdateFields applies a partial column update in a single write
func (r *GormTrafficProductRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&catalog.TrafficProduct{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a traffic product
func (r *GormTrafficProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.TrafficProduct{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts traffic products matching the filter
func (r *GormTrafficProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&catalog.TrafficProduct{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormTrafficProductRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR category LIKE ?", pattern, pattern)
	}
	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	return query
}

// Ensure GormTrafficProductRepository implements TrafficProductRepository
var _ catalog.TrafficProductRepository = (*GormTrafficProductRepository)(nil)
