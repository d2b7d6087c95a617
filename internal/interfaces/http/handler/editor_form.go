package handler

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/shopadmin/backend/internal/application/catalog"
)

// editorPayload extracts editor values and files from a request. JSON
// bodies carry values only; multipart forms carry text fields as values
// and file parts as slot selections keyed by field name.
func editorPayload(c *gin.Context) (map[string]any, []catalogapp.FileInput, error) {
	contentType := c.ContentType()

	if strings.HasPrefix(contentType, "multipart/") {
		return multipartPayload(c)
	}

	values := make(map[string]any)
	if err := c.ShouldBindJSON(&values); err != nil {
		return nil, nil, err
	}
	return values, nil, nil
}

func multipartPayload(c *gin.Context) (map[string]any, []catalogapp.FileInput, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, err
	}

	values := make(map[string]any, len(form.Value))
	for name, fieldValues := range form.Value {
		if len(fieldValues) > 0 {
			values[name] = fieldValues[0]
		}
	}

	files := make([]catalogapp.FileInput, 0, len(form.File))
	for slot, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		file, err := readFilePart(slot, headers[0])
		if err != nil {
			return nil, nil, err
		}
		files = append(files, file)
	}

	return values, files, nil
}

func readFilePart(slot string, header *multipart.FileHeader) (catalogapp.FileInput, error) {
	f, err := header.Open()
	if err != nil {
		return catalogapp.FileInput{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return catalogapp.FileInput{}, err
	}

	return catalogapp.FileInput{
		Slot:        slot,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, nil
}
