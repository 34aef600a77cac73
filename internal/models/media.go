// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImageType is the logical role an uploaded image plays on a website.
type ImageType string

const (
	ImageTypeHero     ImageType = "hero"
	ImageTypeMenuItem ImageType = "menu_item"
	ImageTypeLogo     ImageType = "logo"
	ImageTypeGeneral  ImageType = "general"
)

// ValidImageType reports whether t is one of the known logical types.
func ValidImageType(t ImageType) bool {
	switch t {
	case ImageTypeHero, ImageTypeMenuItem, ImageTypeLogo, ImageTypeGeneral:
		return true
	}
	return false
}

// Media represents an uploaded image. The enhanced original lives in
// S3-compatible object storage; metadata is stored in PostgreSQL. Derived
// size variants hang off it as MediaVariant rows and are deleted with it.
type Media struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Type         ImageType `json:"type"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	SizeBytes    int64     `json:"size_bytes"`
	Bucket       string    `json:"bucket"`
	S3Key        string    `json:"s3_key"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsImage returns true if the media item is an image type.
func (m *Media) IsImage() bool {
	return strings.HasPrefix(m.ContentType, "image/")
}

// HumanSize returns a human-readable file size string.
func (m *Media) HumanSize() string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case m.SizeBytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(m.SizeBytes)/float64(mb))
	case m.SizeBytes >= kb:
		return fmt.Sprintf("%.0f KB", float64(m.SizeBytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", m.SizeBytes)
	}
}

// MediaVariant is one derived size of an uploaded image (thumbnail set
// entry). Variants are keyed by name+format and regenerate deterministically
// from the stored original.
type MediaVariant struct {
	ID          uuid.UUID `json:"id"`
	MediaID     uuid.UUID `json:"media_id"`
	Name        string    `json:"name"` // "thumb", "sm", "md", "lg"
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	S3Key       string    `json:"s3_key"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}
