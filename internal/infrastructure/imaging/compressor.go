// Package imaging prepares uploaded images for storage. Oversized
// images are scaled down and re-encoded so the stored file stays under
// the configured target size.
package imaging

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Result is the outcome of compressing one upload.
type Result struct {
	Data        []byte
	ContentType string
	Extension   string
}

// Compressor scales and re-encodes images. GIFs pass through untouched
// so animations survive.
type Compressor struct {
	maxDimension int
	targetBytes  int64
}

// NewCompressor creates a compressor with the given bounds.
func NewCompressor(maxDimension int, targetBytes int64) *Compressor {
	if maxDimension <= 0 {
		maxDimension = 1024
	}
	if targetBytes <= 0 {
		targetBytes = 1 << 20
	}
	return &Compressor{maxDimension: maxDimension, targetBytes: targetBytes}
}

// Compress returns the bytes to store for an upload. Files already
// under the target keep their original bytes and type; larger ones are
// scaled to fit maxDimension and re-encoded as JPEG with decreasing
// quality until they fit.
func (c *Compressor) Compress(data []byte, contentType string) (*Result, error) {
	if contentType == "image/gif" {
		return &Result{Data: data, ContentType: contentType, Extension: ".gif"}, nil
	}
	if int64(len(data)) <= c.targetBytes {
		return &Result{Data: data, ContentType: contentType, Extension: extensionFor(contentType)}, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() > c.maxDimension || bounds.Dy() > c.maxDimension {
		src = imaging.Fit(src, c.maxDimension, c.maxDimension, imaging.Lanczos)
	}

	for quality := 85; quality >= 40; quality -= 15 {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, src, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, fmt.Errorf("encode image: %w", err)
		}
		if int64(buf.Len()) <= c.targetBytes || quality == 40 {
			return &Result{Data: buf.Bytes(), ContentType: "image/jpeg", Extension: ".jpg"}, nil
		}
	}

	// unreachable, the loop always returns at quality 40
	return nil, fmt.Errorf("compress image: target size %d not reached", c.targetBytes)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".bin"
	}
}
