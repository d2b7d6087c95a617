package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// ProductRepository persists products
type ProductRepository interface {
	shared.Repository[Product]
	FindByCategory(ctx context.Context, category string, filter shared.Filter) ([]Product, error)
	Categories(ctx context.Context) ([]string, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
}

// CampaignProductRepository persists campaign products
type CampaignProductRepository interface {
	shared.Repository[CampaignProduct]
	FindRecommended(ctx context.Context, filter shared.Filter) ([]CampaignProduct, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
}

// TrafficProductRepository persists traffic products
type TrafficProductRepository interface {
	shared.Repository[TrafficProduct]
	FindByCategory(ctx context.Context, category string, filter shared.Filter) ([]TrafficProduct, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	SaveBatch(ctx context.Context, products []*TrafficProduct) error
}

// ImageRepository persists image upload records
type ImageRepository interface {
	shared.Repository[Image]
	FindByPublicURL(ctx context.Context, publicURL string) (*Image, error)
}
