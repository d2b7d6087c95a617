package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/editor"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// ProductService drives product CRUD through the editor pipeline.
// Every create and update runs the same validate, upload, diff,
// persist sequence.
type ProductService struct {
	repo       catalog.ProductRepository
	controller *editor.Controller
}

// NewProductService creates a new ProductService
func NewProductService(repo catalog.ProductRepository, gateway editor.Gateway, uploader editor.Uploader, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:       repo,
		controller: editor.NewController(catalog.ProductSchema(), gateway, uploader, logger),
	}
}

// List returns products matching the filter. A category filter goes
// through the dedicated repository lookup.
func (s *ProductService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[ProductResponse], error) {
	f := toSharedFilter(filter)
	var products []catalog.Product
	var err error
	if filter.Category != "" {
		products, err = s.repo.FindByCategory(ctx, filter.Category, f)
	} else {
		products, err = s.repo.FindAll(ctx, f)
	}
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, countFilter(filter))
	if err != nil {
		return nil, err
	}
	items := make([]ProductResponse, len(products))
	for i := range products {
		items[i] = ToProductResponse(&products[i])
	}
	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// ListCategories returns the distinct product categories
func (s *ProductService) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// Get returns one product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Create runs a create editor session over the given values and files.
func (s *ProductService) Create(ctx context.Context, values map[string]any, files []FileInput) (*ProductSubmitResponse, error) {
	session := editor.NewCreateSession(s.controller.Schema())
	result, err := s.submit(ctx, session, values, files)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, result)
}

// Update runs an update editor session over an existing product. An
// unchanged form skips the write entirely.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, values map[string]any, files []FileInput) (*ProductSubmitResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	session := editor.NewUpdateSession(s.controller.Schema(), id, product.EditorValues())
	result, err := s.submit(ctx, session, values, files)
	if err != nil {
		return nil, err
	}
	if result.NoChanges {
		return &ProductSubmitResponse{Product: ToProductResponse(product), NoChanges: true}, nil
	}
	return s.buildResponse(ctx, result)
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) submit(ctx context.Context, session *editor.Session, values map[string]any, files []FileInput) (*editor.Result, error) {
	if err := stageSession(session, values, files); err != nil {
		return nil, err
	}
	return s.controller.Submit(ctx, session)
}

func (s *ProductService) buildResponse(ctx context.Context, result *editor.Result) (*ProductSubmitResponse, error) {
	id, err := resultID(result)
	if err != nil {
		return nil, err
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductSubmitResponse{
		Product: ToProductResponse(product),
		Changed: result.Changed,
		Created: result.Created,
	}, nil
}

// stageSession loads raw values and files into an editor session.
// Unknown field and slot names surface as validation errors.
func stageSession(session *editor.Session, values map[string]any, files []FileInput) error {
	for name, raw := range values {
		if err := session.SetField(name, raw); err != nil {
			return &editor.ValidationError{Fields: map[string]string{name: "is not an editable field"}}
		}
	}
	for _, file := range files {
		sel := editor.FileSelection{
			FileName:    file.FileName,
			ContentType: file.ContentType,
			Size:        file.Size,
			Data:        file.Data,
		}
		if err := session.SelectFile(file.Slot, sel); err != nil {
			return &editor.ValidationError{Fields: map[string]string{file.Slot: "is not an image slot"}}
		}
	}
	return nil
}

// resultID extracts the persisted entity's ID from a submit result.
func resultID(result *editor.Result) (uuid.UUID, error) {
	raw, _ := result.Values["id"].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, shared.NewDomainError("PERSISTENCE_ERROR", "persisted entity has no ID")
	}
	return id, nil
}
