package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// FileInput is an uploaded image bound to a schema slot.
type FileInput struct {
	Slot        string
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

// ListFilter carries list query options from the API layer.
type ListFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// toSharedFilter converts API list options into the repository filter.
// The category constraint is not folded in; list queries route it
// through FindByCategory instead.
func toSharedFilter(filter ListFilter) shared.Filter {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		f.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		f.OrderDir = filter.OrderDir
	}
	f.Search = filter.Search
	return f
}

// countFilter builds the filter used for totals. Count has no category
// variant, so the constraint rides along in Filters.
func countFilter(filter ListFilter) shared.Filter {
	f := toSharedFilter(filter)
	if filter.Category != "" {
		f.Filters["category"] = filter.Category
	}
	return f
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	OriginalPrice  decimal.Decimal `json:"original_price"`
	CurrentPrice   decimal.Decimal `json:"current_price"`
	ImageURL       string          `json:"image_url"`
	Recommendation string          `json:"recommendation"`
	PurchaseLink   string          `json:"purchase_link"`
	InquiryLink    string          `json:"inquiry_link"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductSubmitResponse is the outcome of a product editor submit.
type ProductSubmitResponse struct {
	Product   ProductResponse `json:"product"`
	Changed   []string        `json:"changed,omitempty"`
	Created   bool            `json:"created,omitempty"`
	NoChanges bool            `json:"no_changes,omitempty"`
}

// CampaignProductResponse represents a campaign product in API responses
type CampaignProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	ImageURL      string          `json:"image_url"`
	PurchaseLink  string          `json:"purchase_link"`
	InquiryLink   string          `json:"inquiry_link"`
	IsRecommended bool            `json:"is_recommended"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CampaignProductSubmitResponse is the outcome of a campaign product editor submit.
type CampaignProductSubmitResponse struct {
	Product   CampaignProductResponse `json:"product"`
	Changed   []string                `json:"changed,omitempty"`
	Created   bool                    `json:"created,omitempty"`
	NoChanges bool                    `json:"no_changes,omitempty"`
}

// TrafficProductResponse represents a traffic product in API responses
type TrafficProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	ImageID       *uuid.UUID      `json:"image_id,omitempty"`
	QCImageID     *uuid.UUID      `json:"qc_image_id,omitempty"`
	ImageURL      string          `json:"image_url"`
	QCImageURL    string          `json:"qc_image_url"`
	PurchaseLink  string          `json:"purchase_link"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TrafficProductSubmitResponse is the outcome of a traffic product editor submit.
type TrafficProductSubmitResponse struct {
	Product   TrafficProductResponse `json:"product"`
	Changed   []string               `json:"changed,omitempty"`
	Created   bool                   `json:"created,omitempty"`
	NoChanges bool                   `json:"no_changes,omitempty"`
}

// ImageResponse represents a stored image in API responses
type ImageResponse struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	PublicURL string    `json:"public_url"`
	FileSize  int64     `json:"file_size"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		OriginalPrice:  p.OriginalPrice,
		CurrentPrice:   p.CurrentPrice,
		ImageURL:       p.ImageURL,
		Recommendation: p.Recommendation,
		PurchaseLink:   p.PurchaseLink,
		InquiryLink:    p.InquiryLink,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToCampaignProductResponse converts a domain CampaignProduct to CampaignProductResponse
func ToCampaignProductResponse(p *catalog.CampaignProduct) CampaignProductResponse {
	return CampaignProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		ImageURL:      p.ImageURL,
		PurchaseLink:  p.PurchaseLink,
		InquiryLink:   p.InquiryLink,
		IsRecommended: p.IsRecommended,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToTrafficProductResponse converts a domain TrafficProduct to TrafficProductResponse
func ToTrafficProductResponse(p *catalog.TrafficProduct) TrafficProductResponse {
	return TrafficProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		CurrentPrice:  p.CurrentPrice,
		OriginalPrice: p.OriginalPrice,
		ImageID:       p.ImageID,
		QCImageID:     p.QCImageID,
		ImageURL:      p.ImageURL,
		QCImageURL:    p.QCImageURL,
		PurchaseLink:  p.PurchaseLink,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToImageResponse converts a domain Image to ImageResponse
func ToImageResponse(img *catalog.Image) ImageResponse {
	return ImageResponse{
		ID:        img.ID,
		FileName:  img.FileName,
		FilePath:  img.FilePath,
		PublicURL: img.PublicURL,
		FileSize:  img.FileSize,
		MimeType:  img.MimeType,
		CreatedAt: img.CreatedAt,
	}
}
