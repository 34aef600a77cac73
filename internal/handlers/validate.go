// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"platefront/internal/markdown"
	"platefront/internal/models"
	"platefront/internal/renderer"
)

// Validation limits for operator-supplied values.
const (
	maxWebsiteNameLen = 120
	maxScalarLen      = 2_000
	maxRichLen        = 50_000
	maxGroupItems     = 100
)

// validateWebsiteName checks the display name and returns the first error found.
func validateWebsiteName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Website name is required."
	}
	if utf8.RuneCountInString(name) > maxWebsiteNameLen {
		return "Website name is too long (max 120 characters)."
	}
	return ""
}

// validateCustomization checks every value in a customization record against
// the template's placeholder schema: unknown placeholders are rejected,
// colors must be hex codes, groups must carry only declared fields.
func validateCustomization(t *models.Template, c models.Customization) string {
	for name, raw := range c {
		ph := t.Placeholder(name)
		if ph == nil {
			return fmt.Sprintf("Unknown placeholder %q.", name)
		}

		if ph.Kind == models.PlaceholderGroup {
			items, ok := c.Group(name)
			if !ok {
				return fmt.Sprintf("Placeholder %q must be a list of items.", name)
			}
			if msg := validateGroupItems(ph, items); msg != "" {
				return msg
			}
			continue
		}

		v, ok := raw.(string)
		if !ok {
			return fmt.Sprintf("Placeholder %q must be a string.", name)
		}
		if msg := validateScalar(ph, v); msg != "" {
			return msg
		}
	}
	return ""
}

// validateScalar checks one scalar value against its placeholder kind.
// Empty values are always allowed; the renderer falls back to the default.
func validateScalar(ph *models.Placeholder, v string) string {
	if v == "" {
		return ""
	}
	switch ph.Kind {
	case models.PlaceholderColor:
		if !renderer.ValidColor(v) {
			return fmt.Sprintf("Value for %q must be a hex color like #a52a2a.", ph.Name)
		}
	case models.PlaceholderRich:
		if utf8.RuneCountInString(v) > maxRichLen {
			return fmt.Sprintf("Value for %q is too long (max 50,000 characters).", ph.Name)
		}
	default:
		if utf8.RuneCountInString(v) > maxScalarLen {
			return fmt.Sprintf("Value for %q is too long (max 2,000 characters).", ph.Name)
		}
	}
	return ""
}

// renderRichValues converts rich placeholder values from markdown to HTML
// in place. Rich values are inserted verbatim by the renderer, so every
// path that accepts them must funnel raw input through the markdown
// pipeline; nothing else may reach the verbatim slot.
func renderRichValues(t *models.Template, c models.Customization) error {
	for name, raw := range c {
		ph := t.Placeholder(name)
		if ph == nil || ph.Kind != models.PlaceholderRich {
			continue
		}
		v, ok := raw.(string)
		if !ok || v == "" {
			continue
		}
		html, err := markdown.ToHTML(v)
		if err != nil {
			return fmt.Errorf("render rich value %q: %w", name, err)
		}
		c[name] = html
	}
	return nil
}

func validateGroupItems(ph *models.Placeholder, items []models.GroupItem) string {
	if len(items) > maxGroupItems {
		return fmt.Sprintf("Group %q has too many items (max %d).", ph.Name, maxGroupItems)
	}
	for i, item := range items {
		for field, v := range item {
			if ph.Field(field) == nil {
				return fmt.Sprintf("Item %d of group %q has unknown field %q.", i, ph.Name, field)
			}
			if utf8.RuneCountInString(v) > maxScalarLen {
				return fmt.Sprintf("Field %q of group %q item %d is too long (max 2,000 characters).", field, ph.Name, i)
			}
		}
	}
	return ""
}
