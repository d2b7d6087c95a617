package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/editor"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// CampaignProduct is a promotional item shown on campaign pages. It
// carries its own purchase link and can be flagged as recommended.
type CampaignProduct struct {
	shared.BaseAggregateRoot
	Name          string          `gorm:"type:varchar(255);not null"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	OriginalPrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ImageURL      string          `gorm:"type:text"`
	PurchaseLink  string          `gorm:"type:text;not null"`
	InquiryLink   string          `gorm:"type:text"`
	IsRecommended bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (CampaignProduct) TableName() string {
	return "campaign_products"
}

// NewCampaignProduct creates a new campaign product
func NewCampaignProduct(name string, price decimal.Decimal, purchaseLink string) (*CampaignProduct, error) {
	name = strings.TrimSpace(name)
	purchaseLink = strings.TrimSpace(purchaseLink)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if purchaseLink == "" {
		return nil, shared.NewDomainError("INVALID_PURCHASE_LINK", "Purchase link is required")
	}

	return &CampaignProduct{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Price:             price,
		PurchaseLink:      purchaseLink,
	}, nil
}

// CampaignProductSchema declares the editable fields of a campaign
// product.
func CampaignProductSchema() editor.Schema {
	return editor.Schema{
		Entity: "campaign_product",
		Fields: []editor.Field{
			{Name: "name", Type: editor.FieldString, Required: true, MaxLen: 255},
			{Name: "description", Type: editor.FieldText},
			{Name: "price", Type: editor.FieldDecimal, Required: true},
			{Name: "original_price", Type: editor.FieldDecimal},
			{Name: "image_url", Type: editor.FieldURL},
			{Name: "purchase_link", Type: editor.FieldURL, Required: true},
			{Name: "inquiry_link", Type: editor.FieldURL},
			{Name: "is_recommended", Type: editor.FieldBool},
		},
		ImageSlots: []editor.ImageSlot{
			{Name: "image", URLField: "image_url"},
		},
	}
}

// EditorValues returns the campaign product's current state as the
// baseline for an update session.
func (p *CampaignProduct) EditorValues() editor.Values {
	return editor.Values{
		"name":           p.Name,
		"description":    p.Description,
		"price":          p.Price,
		"original_price": p.OriginalPrice,
		"image_url":      p.ImageURL,
		"purchase_link":  p.PurchaseLink,
		"inquiry_link":   p.InquiryLink,
		"is_recommended": p.IsRecommended,
	}
}
