// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"
)

// PlaceholderKind distinguishes the value types a template placeholder accepts.
type PlaceholderKind string

const (
	// PlaceholderText is a plain scalar string (names, taglines, hours).
	PlaceholderText PlaceholderKind = "text"

	// PlaceholderColor is a hex color code substituted into both markup
	// tokens and themable style variables.
	PlaceholderColor PlaceholderKind = "color"

	// PlaceholderRich is an HTML fragment produced by the platform itself
	// (markdown-rendered AI copy or operator markdown), inserted verbatim.
	PlaceholderRich PlaceholderKind = "rich"

	// PlaceholderGroup is a repeating group of records (e.g. menu items)
	// expanded from a per-item section in the markup skeleton.
	PlaceholderGroup PlaceholderKind = "group"
)

// GroupField describes one field of a repeating-group record.
type GroupField struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Default string `json:"default,omitempty"`
}

// Placeholder is a named substitution point declared by a template.
// Scalar kinds carry a default value used when the customization leaves
// the placeholder unset; group kinds carry their per-item field schema.
type Placeholder struct {
	Name    string          `json:"name"`
	Kind    PlaceholderKind `json:"kind"`
	Label   string          `json:"label"`
	Default string          `json:"default,omitempty"`
	Fields  []GroupField    `json:"fields,omitempty"`
}

// Scalar reports whether the placeholder holds a single value.
func (p *Placeholder) Scalar() bool {
	return p.Kind != PlaceholderGroup
}

// Field returns the group field declaration with the given name, or nil.
func (p *Placeholder) Field(name string) *GroupField {
	for i := range p.Fields {
		if p.Fields[i].Name == name {
			return &p.Fields[i]
		}
	}
	return nil
}

// Template is a reusable markup/style skeleton with a declared placeholder
// schema. Templates are created by platform maintainers (seed data) and are
// immutable afterwards; IDs are human-readable slugs like "casual-dining-1".
type Template struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Category     string        `json:"category"`
	Markup       string        `json:"markup"`
	Style        string        `json:"style"`
	Placeholders []Placeholder `json:"placeholders"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Placeholder returns the declared placeholder with the given name, or nil.
func (t *Template) Placeholder(name string) *Placeholder {
	for i := range t.Placeholders {
		if t.Placeholders[i].Name == name {
			return &t.Placeholders[i]
		}
	}
	return nil
}
