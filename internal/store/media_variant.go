// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"platefront/internal/models"
)

// VariantStore handles database operations for derived image variants.
type VariantStore struct {
	db *sql.DB
}

// NewVariantStore creates a new VariantStore with the given database connection.
func NewVariantStore(db *sql.DB) *VariantStore {
	return &VariantStore{db: db}
}

const variantColumns = `id, media_id, name, width, height, s3_key, content_type, size_bytes, created_at`

func scanVariant(scanner interface{ Scan(...any) error }) (*models.MediaVariant, error) {
	var v models.MediaVariant
	err := scanner.Scan(
		&v.ID, &v.MediaID, &v.Name, &v.Width, &v.Height,
		&v.S3Key, &v.ContentType, &v.SizeBytes, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateBatch inserts multiple variants in a single transaction. Used after
// deriving the thumbnail set for an uploaded image. Re-running for the same
// media is a no-op per variant, keeping derivation idempotent.
func (s *VariantStore) CreateBatch(variants []models.MediaVariant) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin variant batch: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO media_variants (media_id, name, width, height, s3_key, content_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (media_id, name, content_type) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("prepare variant insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range variants {
		if _, err := stmt.Exec(v.MediaID, v.Name, v.Width, v.Height, v.S3Key, v.ContentType, v.SizeBytes); err != nil {
			return fmt.Errorf("insert variant %s: %w", v.Name, err)
		}
	}

	return tx.Commit()
}

// FindByMediaID returns all variants for a given media item, ordered by width.
func (s *VariantStore) FindByMediaID(mediaID uuid.UUID) ([]models.MediaVariant, error) {
	rows, err := s.db.Query(`
		SELECT `+variantColumns+` FROM media_variants
		WHERE media_id = $1
		ORDER BY width
	`, mediaID)
	if err != nil {
		return nil, fmt.Errorf("find variants: %w", err)
	}
	defer rows.Close()

	var variants []models.MediaVariant
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		variants = append(variants, *v)
	}
	return variants, rows.Err()
}

// DeleteByMediaID removes all variant rows for a media item and returns
// them so the caller can delete the S3 objects. Normally the FK cascade
// handles row cleanup; this exists for explicit deletes that need the keys
// before the parent row goes away.
func (s *VariantStore) DeleteByMediaID(mediaID uuid.UUID) ([]models.MediaVariant, error) {
	rows, err := s.db.Query(`
		DELETE FROM media_variants WHERE media_id = $1 RETURNING `+variantColumns, mediaID)
	if err != nil {
		return nil, fmt.Errorf("delete variants: %w", err)
	}
	defer rows.Close()

	var variants []models.MediaVariant
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deleted variant: %w", err)
		}
		variants = append(variants, *v)
	}
	return variants, rows.Err()
}
