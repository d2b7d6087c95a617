package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/editor"
	"github.com/shopadmin/backend/internal/domain/shared"
)

func storedProduct(t *testing.T) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("Widget", "gadgets", decimal.NewFromInt(100))
	assert.NoError(t, err)
	return product
}

func TestProductService_Create(t *testing.T) {
	repo := new(MockProductRepository)
	gateway := new(MockGateway)
	svc := NewProductService(repo, gateway, new(MockUploader), nil)

	product := storedProduct(t)
	gateway.On("Create", mock.Anything, mock.Anything).
		Return(editor.Values{"id": product.ID.String()}, nil)
	repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

	resp, err := svc.Create(context.Background(), map[string]any{
		"name":          "Widget",
		"category":      "gadgets",
		"current_price": "100",
	}, nil)

	assert.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, "Widget", resp.Product.Name)
	gateway.AssertExpectations(t)
}

func TestProductService_CreateMissingRequiredField(t *testing.T) {
	repo := new(MockProductRepository)
	gateway := new(MockGateway)
	svc := NewProductService(repo, gateway, new(MockUploader), nil)

	_, err := svc.Create(context.Background(), map[string]any{
		"name": "Widget",
	}, nil)

	var verr *editor.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "category")
	gateway.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_CreateUnknownFieldRejected(t *testing.T) {
	svc := NewProductService(new(MockProductRepository), new(MockGateway), new(MockUploader), nil)

	_, err := svc.Create(context.Background(), map[string]any{
		"name":          "Widget",
		"category":      "gadgets",
		"current_price": "100",
		"sku":           "X1",
	}, nil)

	var verr *editor.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "sku")
}

func TestProductService_UpdateOnlySendsChanges(t *testing.T) {
	repo := new(MockProductRepository)
	gateway := new(MockGateway)
	svc := NewProductService(repo, gateway, new(MockUploader), nil)

	product := storedProduct(t)
	repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	gateway.On("Update", mock.Anything, product.ID, mock.MatchedBy(func(changed editor.Values) bool {
		_, hasName := changed["name"]
		_, hasStamp := changed["updated_at"]
		_, hasCategory := changed["category"]
		return hasName && hasStamp && !hasCategory
	})).Return(editor.Values{"id": product.ID.String()}, nil)

	resp, err := svc.Update(context.Background(), product.ID, map[string]any{
		"name":     "Widget Pro",
		"category": "gadgets",
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, []string{"name"}, resp.Changed)
	gateway.AssertExpectations(t)
}

func TestProductService_UpdateNoChangesSkipsWrite(t *testing.T) {
	repo := new(MockProductRepository)
	gateway := new(MockGateway)
	svc := NewProductService(repo, gateway, new(MockUploader), nil)

	product := storedProduct(t)
	repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

	resp, err := svc.Update(context.Background(), product.ID, map[string]any{
		"name": "Widget",
	}, nil)

	assert.NoError(t, err)
	assert.True(t, resp.NoChanges)
	assert.Equal(t, "Widget", resp.Product.Name)
	gateway.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateNotFound(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, new(MockGateway), new(MockUploader), nil)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.Update(context.Background(), id, map[string]any{"name": "X"}, nil)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductService_CreateWithImage(t *testing.T) {
	repo := new(MockProductRepository)
	gateway := new(MockGateway)
	uploader := new(MockUploader)
	svc := NewProductService(repo, gateway, uploader, nil)

	product := storedProduct(t)
	ref := editor.AssetRef{ID: uuid.New(), PublicURL: "https://cdn.example.com/images/1.jpg"}
	uploader.On("Upload", mock.Anything, mock.Anything).Return(ref, nil)
	gateway.On("Create", mock.Anything, mock.MatchedBy(func(values editor.Values) bool {
		return values["image_url"] == ref.PublicURL
	})).Return(editor.Values{"id": product.ID.String()}, nil)
	repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

	_, err := svc.Create(context.Background(), map[string]any{
		"name":          "Widget",
		"category":      "gadgets",
		"current_price": "100",
	}, []FileInput{{
		Slot:        "image",
		FileName:    "widget.jpg",
		ContentType: "image/jpeg",
		Size:        1024,
		Data:        []byte("fake"),
	}})

	assert.NoError(t, err)
	uploader.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestProductService_List(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, new(MockGateway), new(MockUploader), nil)

	product := storedProduct(t)
	repo.On("FindAll", mock.Anything, mock.Anything).Return([]catalog.Product{*product}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	page, err := svc.List(context.Background(), ListFilter{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Items, 1)
}

func TestProductService_ListByCategory(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, new(MockGateway), new(MockUploader), nil)

	product := storedProduct(t)
	repo.On("FindByCategory", mock.Anything, "gadgets", mock.Anything).
		Return([]catalog.Product{*product}, nil)
	repo.On("Count", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["category"] == "gadgets"
	})).Return(int64(1), nil)

	page, err := svc.List(context.Background(), ListFilter{Category: "gadgets", Page: 1, PageSize: 10})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}

func TestProductService_ListCategories(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, new(MockGateway), new(MockUploader), nil)

	repo.On("Categories", mock.Anything).Return([]string{"books", "gadgets"}, nil)

	categories, err := svc.ListCategories(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"books", "gadgets"}, categories)
}
