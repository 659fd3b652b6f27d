package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

// Classifier input size. Photos are downscaled to fit within this box
// before upload; the sidecar does its own final crop.
const (
	maxDimension   = 1024
	defaultQuality = 85
)

// Processor normalizes uploaded physique photos: decode, downscale to
// the classifier's working size and re-encode as JPEG.
type Processor struct {
	quality int
}

// NewProcessor creates a processor with the given JPEG quality (1-100).
func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = defaultQuality
	}
	return &Processor{quality: quality}
}

// Prepare decodes an uploaded photo, downscales it if either dimension
// exceeds the classifier's working size and returns JPEG bytes. PNG
// uploads are converted to JPEG here.
func (p *Processor) Prepare(reader io.Reader) ([]byte, error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = p.resize(img, maxDimension, maxDimension)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// resize downscales an image into maxWidth x maxHeight keeping the
// aspect ratio.
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// IsValidImage reports whether the reader holds a decodable image.
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.Decode(reader)
	return err == nil
}
