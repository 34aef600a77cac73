// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"platefront/internal/models"
)

// TemplateStore handles all template-related database operations.
// Templates are written once by the seed step and read-only afterwards.
type TemplateStore struct {
	db *sql.DB
}

// NewTemplateStore creates a new TemplateStore with the given database connection.
func NewTemplateStore(db *sql.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

const templateColumns = `id, name, category, markup, style, placeholders, created_at`

func scanTemplate(scanner interface{ Scan(...any) error }) (*models.Template, error) {
	var t models.Template
	var placeholders []byte
	err := scanner.Scan(&t.ID, &t.Name, &t.Category, &t.Markup, &t.Style, &placeholders, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(placeholders, &t.Placeholders); err != nil {
		return nil, fmt.Errorf("decode placeholders for %s: %w", t.ID, err)
	}
	return &t, nil
}

// List returns templates ordered by category and name. An empty category
// returns all templates.
func (s *TemplateStore) List(category string) ([]models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates`
	var args []any
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY category, name`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, *t)
	}
	return templates, rows.Err()
}

// FindByID retrieves a template by its slug ID. Returns nil if not found.
func (s *TemplateStore) FindByID(id string) (*models.Template, error) {
	row := s.db.QueryRow(`SELECT `+templateColumns+` FROM templates WHERE id = $1`, id)
	t, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template by id: %w", err)
	}
	return t, nil
}

// Create inserts a template. Used only by the seed step; templates are
// immutable after publication. Returns true if a row was inserted, false
// if the ID already existed.
func (s *TemplateStore) Create(t *models.Template) (bool, error) {
	placeholders, err := json.Marshal(t.Placeholders)
	if err != nil {
		return false, fmt.Errorf("encode placeholders: %w", err)
	}
	res, err := s.db.Exec(`
		INSERT INTO templates (id, name, category, markup, style, placeholders)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`, t.ID, t.Name, t.Category, t.Markup, t.Style, placeholders)
	if err != nil {
		return false, fmt.Errorf("create template: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("create template: %w", err)
	}
	return n > 0, nil
}

// Count returns the total number of templates.
func (s *TemplateStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM templates`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count templates: %w", err)
	}
	return count, nil
}
