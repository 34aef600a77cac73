// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package media is the upload processing pipeline: validation, automatic
// enhancement, and responsive variant generation for restaurant imagery.
// Decoding handles JPEG, PNG, WebP, and GIF; everything the pipeline emits
// is JPEG.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"

	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding

	_ "golang.org/x/image/webp" // register WebP decoding
)

// Validation failures map to distinct API error codes, so each gets its
// own sentinel.
var (
	ErrTooLarge        = errors.New("media: file exceeds size limit")
	ErrUnsupportedType = errors.New("media: unsupported image type")
	ErrCorrupt         = errors.New("media: image data is corrupt or not an image")
)

// maxImagePixels caps decoded dimensions. A small compressed file can
// declare an enormous canvas (decompression bomb); refuse to decode it.
const maxImagePixels = 40_000_000 // ~40 megapixels

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// Validate checks an upload before any decoding work: size ceiling, sniffed
// content type, and declared dimensions. Returns the detected content type.
// The sniffed type is authoritative; the client's Content-Type header is
// never trusted.
func Validate(data []byte, maxBytes int64) (string, error) {
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, len(data), maxBytes)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrCorrupt)
	}

	contentType := http.DetectContentType(data)
	if !allowedTypes[contentType] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return "", fmt.Errorf("%w: zero-sized image", ErrCorrupt)
	}
	if cfg.Width*cfg.Height > maxImagePixels {
		return "", fmt.Errorf("%w: %dx%d exceeds pixel limit", ErrTooLarge, cfg.Width, cfg.Height)
	}

	return contentType, nil
}
