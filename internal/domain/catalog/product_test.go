package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shopadmin/backend/internal/domain/editor"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Widget", "tools", decimal.RequireFromString("19.90"))

	assert.NoError(t, err)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, 1, p.Version)
	assert.NotEqual(t, "", p.ID.String())
}

func TestNewProductTrimsInput(t *testing.T) {
	p, err := NewProduct("  Widget  ", " tools ", decimal.NewFromInt(10))

	assert.NoError(t, err)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, "tools", p.Category)
}

func TestNewProductRejectsEmptyName(t *testing.T) {
	_, err := NewProduct("   ", "tools", decimal.NewFromInt(10))
	assert.Error(t, err)
}

func TestNewProductRejectsNegativePrice(t *testing.T) {
	_, err := NewProduct("Widget", "tools", decimal.NewFromInt(-1))
	assert.Error(t, err)
}

func TestNewCampaignProductRequiresPurchaseLink(t *testing.T) {
	_, err := NewCampaignProduct("Deal", decimal.NewFromInt(5), "")
	assert.Error(t, err)

	p, err := NewCampaignProduct("Deal", decimal.NewFromInt(5), "https://shop.example.com/deal")
	assert.NoError(t, err)
	assert.False(t, p.IsRecommended)
}

func TestNewTrafficProductRequiresBothImages(t *testing.T) {
	_, err := NewTrafficProduct("Item", "misc", decimal.NewFromInt(3),
		"https://cdn.example.com/a.jpg", "", "https://shop.example.com/item")
	assert.Error(t, err)
}

func TestProductSchemaRoundTripsEditorValues(t *testing.T) {
	p, err := NewProduct("Widget", "tools", decimal.RequireFromString("19.90"))
	assert.NoError(t, err)
	p.ImageURL = "https://cdn.example.com/w.jpg"

	values := p.EditorValues()
	schema := ProductSchema()

	for _, f := range schema.Fields {
		assert.Contains(t, values, f.Name)
	}
	// an unchanged baseline diffs to nothing
	assert.Empty(t, editor.Diff(schema, values, values))
}

func TestTrafficProductSchemaRequiresBothSlots(t *testing.T) {
	schema := TrafficProductSchema()

	assert.Len(t, schema.ImageSlots, 2)
	for _, slot := range schema.ImageSlots {
		assert.True(t, slot.Required)
	}
}
