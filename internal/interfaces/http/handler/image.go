package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/shopadmin/backend/internal/application/catalog"
)

// ImageHandler handles image upload and management endpoints
type ImageHandler struct {
	BaseHandler
	imageService *catalogapp.ImageService
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(imageService *catalogapp.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Upload accepts a multipart "file" part and runs the upload pipeline
func (h *ImageHandler) Upload(c *gin.Context) {
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

	image, err := h.imageService.Upload(c.Request.Context(), catalogapp.UploadImageInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, catalogapp.ToImageResponse(image))
}

// List returns stored images
func (h *ImageHandler) List(c *gin.Context) {
	var filter catalogapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.imageService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByID returns one image record
func (h *ImageHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid image ID")
		return
	}

	image, err := h.imageService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, image)
}

// Delete removes an image record and its stored object
func (h *ImageHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid image ID")
		return
	}

	if err := h.imageService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers image routes
func (h *ImageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	images := rg.Group("/images")
	{
		images.POST("", h.Upload)
		images.GET("", h.List)
		images.GET("/:id", h.GetByID)
		images.DELETE("/:id", h.Delete)
	}
}
