package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/editor"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// TrafficProduct is a sourcing item with both a listing image and a
// quality-control image. The image rows are referenced by ID and the
// public URLs are kept denormalized for direct rendering.
type TrafficProduct struct {
	shared.BaseAggregateRoot
	Name          string          `gorm:"type:varchar(255);not null"`
	Category      string          `gorm:"type:varchar(100);not null;index"`
	CurrentPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	OriginalPrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ImageID       *uuid.UUID      `gorm:"type:uuid"`
	QCImageID     *uuid.UUID      `gorm:"type:uuid"`
	ImageURL      string          `gorm:"type:text;not null"`
	QCImageURL    string          `gorm:"type:text;not null"`
	PurchaseLink  string          `gorm:"type:text;not null"`

	Image   *Image `gorm:"foreignKey:ImageID"`
	QCImage *Image `gorm:"foreignKey:QCImageID"`
}

// TableName returns the table name for GORM
func (TrafficProduct) TableName() string {
	return "traffic_products"
}

// NewTrafficProduct creates a new traffic product
func NewTrafficProduct(name, category string, currentPrice decimal.Decimal, imageURL, qcImageURL, purchaseLink string) (*TrafficProduct, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name is required")
	}
	if category == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_CATEGORY", "Product category is required")
	}
	if currentPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if imageURL == "" || qcImageURL == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Both product and QC images are required")
	}
	if purchaseLink == "" {
		return nil, shared.NewDomainError("INVALID_PURCHASE_LINK", "Purchase link is required")
	}

	return &TrafficProduct{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Category:          category,
		CurrentPrice:      currentPrice,
		ImageURL:          imageURL,
		QCImageURL:        qcImageURL,
		PurchaseLink:      purchaseLink,
	}, nil
}

// TrafficProductSchema declares the editable fields of a traffic
// product. Both image slots are required.
func TrafficProductSchema() editor.Schema {
	return editor.Schema{
		Entity: "traffic_product",
		Fields: []editor.Field{
			{Name: "name", Type: editor.FieldString, Required: true, MaxLen: 255},
			{Name: "category", Type: editor.FieldString, Required: true, MaxLen: 100},
			{Name: "current_price", Type: editor.FieldDecimal, Required: true},
			{Name: "original_price", Type: editor.FieldDecimal},
			{Name: "image_url", Type: editor.FieldURL},
			{Name: "qc_image_url", Type: editor.FieldURL},
			{Name: "image_id", Type: editor.FieldString},
			{Name: "qc_image_id", Type: editor.FieldString},
			{Name: "purchase_link", Type: editor.FieldURL, Required: true},
		},
		ImageSlots: []editor.ImageSlot{
			{Name: "image", URLField: "image_url", IDField: "image_id", Required: true},
			{Name: "qc_image", URLField: "qc_image_url", IDField: "qc_image_id", Required: true},
		},
	}
}

// EditorValues returns the traffic product's current state as the
// baseline for an update session.
func (p *TrafficProduct) EditorValues() editor.Values {
	values := editor.Values{
		"name":           p.Name,
		"category":       p.Category,
		"current_price":  p.CurrentPrice,
		"original_price": p.OriginalPrice,
		"image_url":      p.ImageURL,
		"qc_image_url":   p.QCImageURL,
		"purchase_link":  p.PurchaseLink,
	}
	if p.ImageID != nil {
		values["image_id"] = p.ImageID.String()
	}
	if p.QCImageID != nil {
		values["qc_image_id"] = p.QCImageID.String()
	}
	return values
}
