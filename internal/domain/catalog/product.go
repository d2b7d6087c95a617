package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/editor"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// Product is a storefront catalog item managed from the admin
// dashboard. It is the aggregate root for product operations.
type Product struct {
	shared.BaseAggregateRoot
	Name           string          `gorm:"type:varchar(255);not null"`
	Category       string          `gorm:"type:varchar(100);not null;index"`
	OriginalPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	CurrentPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ImageURL       string          `gorm:"type:text"`
	Recommendation string          `gorm:"type:text"`
	PurchaseLink   string          `gorm:"type:text"`
	InquiryLink    string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, category string, currentPrice decimal.Decimal) (*Product, error) {
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

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Category:          category,
		CurrentPrice:      currentPrice,
	}, nil
}

// ProductSchema declares the editable fields of a product. The same
// schema drives the create and update editors.
func ProductSchema() editor.Schema {
	return editor.Schema{
		Entity: "product",
		Fields: []editor.Field{
			{Name: "name", Type: editor.FieldString, Required: true, MaxLen: 255},
			{Name: "category", Type: editor.FieldString, Required: true, MaxLen: 100},
			{Name: "original_price", Type: editor.FieldDecimal},
			{Name: "current_price", Type: editor.FieldDecimal, Required: true},
			{Name: "image_url", Type: editor.FieldURL},
			{Name: "recommendation", Type: editor.FieldText},
			{Name: "purchase_link", Type: editor.FieldURL},
			{Name: "inquiry_link", Type: editor.FieldURL},
		},
		ImageSlots: []editor.ImageSlot{
			{Name: "image", URLField: "image_url"},
		},
	}
}

// EditorValues returns the product's current state as the baseline for
// an update session.
func (p *Product) EditorValues() editor.Values {
	return editor.Values{
		"name":           p.Name,
		"category":       p.Category,
		"original_price": p.OriginalPrice,
		"current_price":  p.CurrentPrice,
		"image_url":      p.ImageURL,
		"recommendation": p.Recommendation,
		"purchase_link":  p.PurchaseLink,
		"inquiry_link":   p.InquiryLink,
	}
}
