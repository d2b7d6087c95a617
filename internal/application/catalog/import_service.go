package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/domain/catalog"
	csvimport "github.com/shopadmin/backend/internal/infrastructure/import"
)

// trafficImportHeaders are the columns a traffic product import file
// must have.
var trafficImportHeaders = []string{
	"name", "category", "current_price", "image_url", "qc_image_url", "purchase_link",
}

// ImportResult summarizes one bulk import run.
type ImportResult struct {
	Total    int                  `json:"total"`
	Imported int                  `json:"imported"`
	Failed   int                  `json:"failed"`
	Errors   []csvimport.RowError `json:"errors,omitempty"`
}

// ImportService loads traffic products in bulk from uploaded CSV
// files. Rows are validated independently; a bad row is reported and
// skipped, it does not abort the rest of the file. Valid rows are
// inserted in one batch.
type ImportService struct {
	repo        catalog.TrafficProductRepository
	maxFileSize int64
	logger      *zap.Logger
}

// NewImportService creates a new ImportService
func NewImportService(repo catalog.TrafficProductRepository, maxFileSize int64, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{repo: repo, maxFileSize: maxFileSize, logger: logger}
}

// ImportTrafficProducts parses the file and saves every valid row.
func (s *ImportService) ImportTrafficProducts(ctx context.Context, data []byte) (*ImportResult, error) {
	if s.maxFileSize > 0 && int64(len(data)) > s.maxFileSize {
		return nil, csvimport.ErrFileTooLarge
	}

	parser, err := csvimport.ParseFromBytes(data)
	if err != nil {
		return nil, err
	}
	if err := parser.ParseHeader(); err != nil {
		return nil, err
	}
	if missing := parser.MissingHeaders(trafficImportHeaders); len(missing) > 0 {
		return nil, csvimport.NewRowError(1, strings.Join(missing, ", "),
			csvimport.ErrCodeRequiredField, "missing required columns")
	}

	rows, err := parser.ReadAllRows()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, csvimport.ErrNoDataRows
	}

	result := &ImportResult{Total: len(rows)}
	var valid []*catalog.TrafficProduct
	for _, row := range rows {
		product, rowErr := s.buildTrafficProduct(row)
		if rowErr != nil {
			result.Failed++
			result.Errors = append(result.Errors, *rowErr)
			continue
		}
		valid = append(valid, product)
	}

	if err := s.repo.SaveBatch(ctx, valid); err != nil {
		return nil, err
	}
	result.Imported = len(valid)

	s.logger.Info("traffic product import finished",
		zap.Int("total", result.Total),
		zap.Int("imported", result.Imported),
		zap.Int("failed", result.Failed))
	return result, nil
}

func (s *ImportService) buildTrafficProduct(row *csvimport.Row) (*catalog.TrafficProduct, *csvimport.RowError) {
	for _, column := range []string{"name", "category", "image_url", "qc_image_url", "purchase_link"} {
		if row.Get(column) == "" {
			e := csvimport.NewRowError(row.LineNumber, column,
				csvimport.ErrCodeRequiredField, column+" is required")
			return nil, &e
		}
	}

	currentPrice, rowErr := parsePrice(row, "current_price", true)
	if rowErr != nil {
		return nil, rowErr
	}
	originalPrice, rowErr := parsePrice(row, "original_price", false)
	if rowErr != nil {
		return nil, rowErr
	}

	product, err := catalog.NewTrafficProduct(
		row.Get("name"), row.Get("category"), currentPrice,
		row.Get("image_url"), row.Get("qc_image_url"), row.Get("purchase_link"))
	if err != nil {
		e := csvimport.NewRowError(row.LineNumber, "", csvimport.ErrCodeMalformedRow, err.Error())
		return nil, &e
	}
	product.OriginalPrice = originalPrice
	return product, nil
}

func parsePrice(row *csvimport.Row, column string, required bool) (decimal.Decimal, *csvimport.RowError) {
	raw := row.Get(column)
	if raw == "" {
		if required {
			e := csvimport.NewRowError(row.LineNumber, column, csvimport.ErrCodeRequiredField, column+" is required")
			return decimal.Zero, &e
		}
		return decimal.Zero, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		e := csvimport.NewRowError(row.LineNumber, column, csvimport.ErrCodeInvalidType, "must be a number")
		return decimal.Zero, &e
	}
	if price.IsNegative() {
		e := csvimport.NewRowError(row.LineNumber, column, csvimport.ErrCodeInvalidFormat, "cannot be negative")
		return decimal.Zero, &e
	}
	return price, nil
}
