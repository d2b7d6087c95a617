package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/editor"
)

// The editor gateways adapt normalized editor values onto the GORM
// repositories. Creates build a full aggregate; updates map the
// changed keys straight onto columns so the whole diff lands in one
// UPDATE statement.

func stringValue(v editor.Values, key string) string {
	if s, ok := v[key].(string); ok {
		return s
	}
	return ""
}

func decimalValue(v editor.Values, key string) decimal.Decimal {
	if d, ok := v[key].(decimal.Decimal); ok {
		return d
	}
	return decimal.Zero
}

func boolValue(v editor.Values, key string) bool {
	if b, ok := v[key].(bool); ok {
		return b
	}
	return false
}

func uuidValue(v editor.Values, key string) *uuid.UUID {
	s, ok := v[key].(string)
	if !ok || s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

// editorColumns converts changed editor values into a column map.
// Cleared optional fields become their zero value rather than NULL so
// string columns stay scannable.
func editorColumns(schema editor.Schema, changed editor.Values) map[string]any {
	cols := make(map[string]any, len(changed))
	for key, val := range changed {
		if key == "updated_at" {
			cols[key] = val
			continue
		}
		f, ok := schema.Field(key)
		if !ok {
			continue
		}
		if val == nil {
			switch f.Type {
			case editor.FieldDecimal:
				cols[key] = decimal.Zero
			case editor.FieldInteger:
				cols[key] = int64(0)
			case editor.FieldBool:
				cols[key] = false
			default:
				cols[key] = ""
			}
			continue
		}
		cols[key] = val
	}
	return cols
}

// ProductEditorGateway persists product editor sessions
type ProductEditorGateway struct {
	repo catalog.ProductRepository
}

// NewProductEditorGateway creates a new ProductEditorGateway
func NewProductEditorGateway(repo catalog.ProductRepository) *ProductEditorGateway {
	return &ProductEditorGateway{repo: repo}
}

// Create builds and saves a new product from normalized values
func (g *ProductEditorGateway) Create(ctx context.Context, values editor.Values) (editor.Values, error) {
	product, err := catalog.NewProduct(
		stringValue(values, "name"),
		stringValue(values, "category"),
		decimalValue(values, "current_price"),
	)
	if err != nil {
		return nil, err
	}
	product.OriginalPrice = decimalValue(values, "original_price")
	product.ImageURL = stringValue(values, "image_url")
	product.Recommendation = stringValue(values, "recommendation")
	product.PurchaseLink = stringValue(values, "purchase_link")
	product.InquiryLink = stringValue(values, "inquiry_link")

	if err := g.repo.Save(ctx, product); err != nil {
		return nil, err
	}
	return withID(product.EditorValues(), product.ID), nil
}

// Update applies the changed values in a single write
func (g *ProductEditorGateway) Update(ctx context.Context, id uuid.UUID, changed editor.Values) (editor.Values, error) {
	cols := editorColumns(catalog.ProductSchema(), changed)
	if err := g.repo.UpdateFields(ctx, id, cols); err != nil {
		return nil, err
	}
	product, err := g.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return withID(product.EditorValues(), product.ID), nil
}

// CampaignProductEditorGateway persists campaign product editor sessions
type CampaignProductEditorGateway struct {
	repo catalog.CampaignProductRepository
}

// NewCampaignProductEditorGateway creates a new CampaignProductEditorGateway
func NewCampaignProductEditorGateway(repo catalog.CampaignProductRepository) *CampaignProductEditorGateway {
	return &CampaignProductEditorGateway{repo: repo}
}

// Create builds and saves a new campaign product from normalized values
func (g *CampaignProductEditorGateway) Create(ctx context.Context, values editor.Values) (editor.Values, error) {
	product, err := catalog.NewCampaignProduct(
		stringValue(values, "name"),
		decimalValue(values, "price"),
		stringValue(values, "purchase_link"),
	)
	if err != nil {
		return nil, err
	}
	product.Description = stringValue(values, "description")
	product.OriginalPrice = decimalValue(values, "original_price")
	product.ImageURL = stringValue(values, "image_url")
	product.InquiryLink = stringValue(values, "inquiry_link")
	product.IsRecommended = boolValue(values, "is_recommended")

	if err := g.repo.Save(ctx, product); err != nil {
		return nil, err
	}
	return withID(product.EditorValues(), product.ID), nil
}

// Update applies the changed values in a single write
func (g *CampaignProductEditorGateway) Update(ctx context.Context, id uuid.UUID, changed editor.Values) (editor.Values, error) {
	cols := editorColumns(catalog.CampaignProductSchema(), changed)
	if err := g.repo.UpdateFields(ctx, id, cols); err != nil {
		return nil, err
	}
	product, err := g.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return withID(product.EditorValues(), product.ID), nil
}

// TrafficProductEditorGateway persists traffic product editor sessions
type TrafficProductEditorGateway struct {
	repo catalog.TrafficProductRepository
}

// NewTrafficProductEditorGateway creates a new TrafficProductEditorGateway
func NewTrafficProductEditorGateway(repo catalog.TrafficProductRepository) *TrafficProductEditorGateway {
	return &TrafficProductEditorGateway{repo: repo}
}

// Create builds and saves a new traffic product from normalized values
func (g *TrafficProductEditorGateway) Create(ctx context.Context, values editor.Values) (editor.Values, error) {
	product, err := catalog.NewTrafficProduct(
		stringValue(values, "name"),
		stringValue(values, "category"),
		decimalValue(values, "current_price"),
		stringValue(values, "image_url"),
		stringValue(values, "qc_image_url"),
		stringValue(values, "purchase_link"),
	)
	if err != nil {
		return nil, err
	}
	product.OriginalPrice = decimalValue(values, "original_price")
	product.ImageID = uuidValue(values, "image_id")
	product.QCImageID = uuidValue(values, "qc_image_id")

	if err := g.repo.Save(ctx, product); err != nil {
		return nil, err
	}
	return withID(product.EditorValues(), product.ID), nil
}

// Update applies the changed values in a single write
func (g *TrafficProductEditorGateway) Update(ctx context.Context, id uuid.UUID, changed editor.Values) (editor.Values, error) {
	cols := editorColumns(catalog.TrafficProductSchema(), changed)
	// image references are uuid columns, not text
	if raw, ok := cols["image_id"]; ok {
		cols["image_id"] = uuidValue(editor.Values{"image_id": raw}, "image_id")
	}
	if raw, ok := cols["qc_image_id"]; ok {
		cols["qc_image_id"] = uuidValue(editor.Values{"qc_image_id": raw}, "qc_image_id")
	}
	if err := g.repo.UpdateFields(ctx, id, cols); err != nil {
		return nil, err
	}
	product, err := g.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return withID(product.EditorValues(), product.ID), nil
}

func withID(values editor.Values, id uuid.UUID) editor.Values {
	values["id"] = id.String()
	return values
}

// Ensure the gateways implement editor.Gateway
var (
	_ editor.Gateway = (*ProductEditorGateway)(nil)
	_ editor.Gateway = (*CampaignProductEditorGateway)(nil)
	_ editor.Gateway = (*TrafficProductEditorGateway)(nil)
)
