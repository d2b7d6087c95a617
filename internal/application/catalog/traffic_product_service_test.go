package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/shared"
)

func storedTrafficProduct(t *testing.T) *catalog.TrafficProduct {
	t.Helper()
	product, err := catalog.NewTrafficProduct("Sneaker", "shoes", decimal.NewFromInt(12),
		"https://cdn.example.com/s.jpg", "https://cdn.example.com/s-qc.jpg", "https://shop.example.com/s")
	assert.NoError(t, err)
	return product
}

func TestTrafficProductService_List(t *testing.T) {
	repo := new(MockTrafficProductRepository)
	svc := NewTrafficProductService(repo, new(MockGateway), new(MockUploader), nil)

	product := storedTrafficProduct(t)
	repo.On("FindAll", mock.Anything, mock.Anything).Return([]catalog.TrafficProduct{*product}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	page, err := svc.List(context.Background(), ListFilter{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Items, 1)
}

func TestTrafficProductService_ListByCategory(t *testing.T) {
	repo := new(MockTrafficProductRepository)
	svc := NewTrafficProductService(repo, new(MockGateway), new(MockUploader), nil)

	product := storedTrafficProduct(t)
	repo.On("FindByCategory", mock.Anything, "shoes", mock.Anything).
		Return([]catalog.TrafficProduct{*product}, nil)
	repo.On("Count", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["category"] == "shoes"
	})).Return(int64(1), nil)

	page, err := svc.List(context.Background(), ListFilter{Category: "shoes", Page: 1, PageSize: 10})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}
