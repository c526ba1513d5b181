package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// ImageProcessor derives display variants from uploaded photos. Upload
// validation (extension, size cap) happens in the validation layer before any
// bytes reach this type.
type ImageProcessor struct {
	ThumbnailSize int // px, longest side
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{ThumbnailSize: 300}
}

// Thumbnail decodes data and re-encodes a bounded JPEG thumbnail. Formats the
// stdlib cannot decode (webp) are passed through untouched so the original is
// still served.
func (p *ImageProcessor) Thumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, nil
	}

	resized := imaging.Fit(img, p.ThumbnailSize, p.ThumbnailSize, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("cannot encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
