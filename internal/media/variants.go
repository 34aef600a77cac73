// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package media

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Variant describes a single responsive image size.
type Variant struct {
	Name    string // e.g., "thumb", "sm", "md", "lg"
	Width   int    // target width in pixels
	Quality int    // JPEG quality 1-100
}

// DefaultVariants defines the standard breakpoints for responsive web images.
var DefaultVariants = []Variant{
	{Name: "thumb", Width: 320, Quality: 75},
	{Name: "sm", Width: 640, Quality: 80},
	{Name: "md", Width: 1024, Quality: 80},
	{Name: "lg", Width: 1920, Quality: 80},
}

// ProcessedImage holds one generated variant ready for upload.
type ProcessedImage struct {
	Name        string // variant name (e.g., "sm")
	Width       int    // actual output width
	Height      int    // actual output height
	Data        []byte // JPEG-encoded image bytes
	ContentType string // always "image/jpeg"
}

// GenerateVariants creates JPEG variants of the source image for each
// configured breakpoint. It skips variants wider than the original to
// avoid upscaling. Returns at least one variant (the smallest that fits).
// Resizing uses Lanczos resampling; output is deterministic for a given
// source, so re-derivation never produces a different byte stream.
func GenerateVariants(src image.Image, variants []Variant) ([]ProcessedImage, error) {
	if len(variants) == 0 {
		variants = DefaultVariants
	}

	origWidth := src.Bounds().Dx()

	var results []ProcessedImage
	for _, v := range variants {
		targetWidth := v.Width

		// Cap at original width to avoid upscaling.
		if origWidth <= targetWidth {
			targetWidth = origWidth
		}

		resized := imaging.Resize(src, targetWidth, 0, imaging.Lanczos)

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(v.Quality)); err != nil {
			return nil, fmt.Errorf("media: encode %s (%dpx): %w", v.Name, targetWidth, err)
		}

		results = append(results, ProcessedImage{
			Name:        v.Name,
			Width:       resized.Bounds().Dx(),
			Height:      resized.Bounds().Dy(),
			Data:        buf.Bytes(),
			ContentType: "image/jpeg",
		})

		// If we already processed the original-width image, no point
		// generating larger variants.
		if origWidth <= v.Width {
			break
		}
	}

	return results, nil
}
