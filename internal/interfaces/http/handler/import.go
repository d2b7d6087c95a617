package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/shopadmin/backend/internal/application/catalog"
	csvimport "github.com/shopadmin/backend/internal/infrastructure/import"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

// ImportHandler handles CSV bulk import endpoints
type ImportHandler struct {
	BaseHandler
	importService *catalogapp.ImportService
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(importService *catalogapp.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ImportTrafficProducts accepts a CSV file and imports its rows as
// traffic products. Bad rows are reported in the result, not failed
// wholesale.
func (h *ImportHandler) ImportTrafficProducts(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Missing file part")
		return
	}

	f, err := header.Open()
	if err != nil {
		h.BadRequest(c, "Unreadable file part")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.BadRequest(c, "Unreadable file part")
		return
	}

	result, err := h.importService.ImportTrafficProducts(c.Request.Context(), data)
	if err != nil {
		h.handleImportError(c, err)
		return
	}

	h.Success(c, result)
}

// handleImportError maps file level import failures. Row level failures
// never reach here, they ride along in the import result.
func (h *ImportHandler) handleImportError(c *gin.Context, err error) {
	var rowErr csvimport.RowError
	if errors.As(err, &rowErr) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(rowErr.Code, rowErr.Message))
		return
	}

	switch {
	case errors.Is(err, csvimport.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(dto.ErrCodeUploadTooLarge, err.Error()))
	case errors.Is(err, csvimport.ErrEmptyFile),
		errors.Is(err, csvimport.ErrInvalidEncoding),
		errors.Is(err, csvimport.ErrNoDataRows):
		h.BadRequest(c, err.Error())
	default:
		h.HandleError(c, err)
	}
}

// RegisterRoutes registers import routes
func (h *ImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/imports/traffic-products", h.ImportTrafficProducts)
}
