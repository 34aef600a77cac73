// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"platefront/internal/models"
)

// WebsiteStore handles all website-related database operations.
type WebsiteStore struct {
	db *sql.DB
}

// NewWebsiteStore creates a new WebsiteStore with the given database connection.
func NewWebsiteStore(db *sql.DB) *WebsiteStore {
	return &WebsiteStore{db: db}
}

const websiteColumns = `id, owner_id, name, slug, template_id, customization,
	markup, style, status, hero_image_id, created_at, updated_at`

func scanWebsite(scanner interface{ Scan(...any) error }) (*models.Website, error) {
	var w models.Website
	var customization []byte
	err := scanner.Scan(
		&w.ID, &w.OwnerID, &w.Name, &w.Slug, &w.TemplateID, &customization,
		&w.Markup, &w.Style, &w.Status, &w.HeroImageID, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(customization, &w.Customization); err != nil {
		return nil, fmt.Errorf("decode customization: %w", err)
	}
	return &w, nil
}

// Create inserts a new website record and returns it with the generated ID.
func (s *WebsiteStore) Create(w *models.Website) (*models.Website, error) {
	customization, err := json.Marshal(w.Customization)
	if err != nil {
		return nil, fmt.Errorf("encode customization: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO websites (owner_id, name, slug, template_id, customization, markup, style, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+websiteColumns,
		w.OwnerID, w.Name, w.Slug, w.TemplateID, customization, w.Markup, w.Style, w.Status,
	)
	created, err := scanWebsite(row)
	if err != nil {
		return nil, fmt.Errorf("create website: %w", err)
	}
	return created, nil
}

// FindByID retrieves a single website by its UUID. Returns nil if not found.
func (s *WebsiteStore) FindByID(id uuid.UUID) (*models.Website, error) {
	row := s.db.QueryRow(`SELECT `+websiteColumns+` FROM websites WHERE id = $1`, id)
	w, err := scanWebsite(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find website by id: %w", err)
	}
	return w, nil
}

// FindBySlug retrieves a website by its public slug. Returns nil if not found.
func (s *WebsiteStore) FindBySlug(slug string) (*models.Website, error) {
	row := s.db.QueryRow(`SELECT `+websiteColumns+` FROM websites WHERE slug = $1`, slug)
	w, err := scanWebsite(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find website by slug: %w", err)
	}
	return w, nil
}

// ListByOwner returns an operator's websites, newest first.
func (s *WebsiteStore) ListByOwner(ownerID uuid.UUID) ([]models.Website, error) {
	rows, err := s.db.Query(`
		SELECT `+websiteColumns+`
		FROM websites
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}
	defer rows.Close()

	var sites []models.Website
	for rows.Next() {
		w, err := scanWebsite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		sites = append(sites, *w)
	}
	return sites, rows.Err()
}

// UpdateStatus sets a website's lifecycle status.
func (s *WebsiteStore) UpdateStatus(id uuid.UUID, status models.WebsiteStatus) error {
	_, err := s.db.Exec(`
		UPDATE websites SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update website status: %w", err)
	}
	return nil
}

// SaveGenerated writes the rendered markup/style pair, the refreshed
// customization, and the hero image reference produced by a completed
// generation job, moving the website to ready.
func (s *WebsiteStore) SaveGenerated(id uuid.UUID, c models.Customization, markup, style string, heroImageID *uuid.UUID) error {
	customization, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode customization: %w", err)
	}
	_, err = s.db.Exec(`
		UPDATE websites SET
			customization = $1, markup = $2, style = $3, hero_image_id = $4,
			status = $5, updated_at = NOW()
		WHERE id = $6
	`, customization, markup, style, heroImageID, models.WebsiteStatusReady, id)
	if err != nil {
		return fmt.Errorf("save generated website: %w", err)
	}
	return nil
}

// SaveCustomization persists a field-level customization change together
// with the re-rendered markup/style. Refuses the write while a generation
// job owns the website (status = generating), and guards against lost
// updates: the write only lands if the row still carries the updated_at
// the caller read. A concurrent edit in between returns ErrStale so the
// caller can reload and reapply its one field.
func (s *WebsiteStore) SaveCustomization(id uuid.UUID, c models.Customization, markup, style string, readAt time.Time) error {
	customization, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode customization: %w", err)
	}
	result, err := s.db.Exec(`
		UPDATE websites SET
			customization = $1, markup = $2, style = $3, updated_at = NOW()
		WHERE id = $4 AND status <> $5 AND updated_at = $6
	`, customization, markup, style, id, models.WebsiteStatusGenerating, readAt)
	if err != nil {
		return fmt.Errorf("save customization: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows > 0 {
		return nil
	}

	// Zero rows is either the generation lock or a concurrent edit;
	// distinguish so callers retry only the retryable case.
	var status models.WebsiteStatus
	err = s.db.QueryRow(`SELECT status FROM websites WHERE id = $1`, id).Scan(&status)
	if err == sql.ErrNoRows {
		return ErrStale
	}
	if err != nil {
		return fmt.Errorf("save customization: check status: %w", err)
	}
	if status == models.WebsiteStatusGenerating {
		return ErrWebsiteLocked
	}
	return ErrStale
}

// Delete removes a website and returns it so the caller can clean up
// related resources. Generation jobs cascade via foreign key.
func (s *WebsiteStore) Delete(id uuid.UUID) (*models.Website, error) {
	row := s.db.QueryRow(`DELETE FROM websites WHERE id = $1 RETURNING `+websiteColumns, id)
	w, err := scanWebsite(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete website: %w", err)
	}
	return w, nil
}

// Count returns the total number of websites.
func (s *WebsiteStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM websites`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count websites: %w", err)
	}
	return count, nil
}
