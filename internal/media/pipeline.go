// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package media

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"

	"platefront/internal/models"
)

// Processed is the full output of the upload pipeline for one image: the
// enhanced full-size JPEG that becomes the stored original, plus the
// responsive variant set derived from it.
type Processed struct {
	ContentType string // of the stored original, always "image/jpeg"
	Width       int
	Height      int
	Data        []byte
	Variants    []ProcessedImage
}

// Process runs an upload through the whole pipeline: validate, decode with
// EXIF orientation applied, enhance, re-encode as JPEG, and derive the
// responsive variants from the enhanced image (so thumbnails match what
// visitors see full-size).
func Process(data []byte, imageType models.ImageType, maxBytes int64) (*Processed, error) {
	if _, err := Validate(data, maxBytes); err != nil {
		return nil, err
	}

	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	enhanced := Enhance(src, imageType)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, enhanced, imaging.JPEG, imaging.JPEGQuality(88)); err != nil {
		return nil, fmt.Errorf("media: encode original: %w", err)
	}

	variants, err := GenerateVariants(enhanced, DefaultVariants)
	if err != nil {
		return nil, err
	}

	return &Processed{
		ContentType: "image/jpeg",
		Width:       enhanced.Bounds().Dx(),
		Height:      enhanced.Bounds().Dy(),
		Data:        buf.Bytes(),
		Variants:    variants,
	}, nil
}
