// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package media

import (
	"image"

	"github.com/disintegration/imaging"

	"platefront/internal/models"
)

// Enhance applies the automatic polish every upload gets: a slight lift in
// brightness and contrast, richer color, and a light sharpen. Hero images
// additionally get a warmth boost, since they sit behind large text on dark
// gradients and flat lighting reads as cold at that size.
//
// The same input always produces the same output, so re-running the
// pipeline on a stored original is idempotent.
func Enhance(src image.Image, imageType models.ImageType) *image.NRGBA {
	out := imaging.AdjustBrightness(src, 6)
	out = imaging.AdjustContrast(out, 8)
	out = imaging.AdjustSaturation(out, 12)

	if imageType == models.ImageTypeHero {
		out = imaging.AdjustGamma(out, 1.05)
	}

	return imaging.Sharpen(out, 0.5)
}
