// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"platefront/internal/markdown"
	"platefront/internal/models"
	"platefront/internal/renderer"
	"platefront/internal/store"
)

// updateContentRequest is the payload for PATCH /api/websites/{id}/content.
// FieldPath addresses a scalar placeholder ("tagline") or one field of one
// group item ("menu_items.2.price").
type updateContentRequest struct {
	FieldPath string `json:"field_path"`
	Value     string `json:"value"`
}

// UpdateContent handles the autosave endpoint behind the inline editor. One
// request updates one field, re-renders the site, and persists both
// atomically. Rich fields arrive as markdown and are converted to HTML here,
// so raw operator HTML never reaches the renderer's verbatim path.
func (a *API) UpdateContent(w http.ResponseWriter, r *http.Request) {
	site := a.ownedWebsite(w, r)
	if site == nil {
		return
	}

	var req updateContentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "request body is not valid JSON")
		return
	}

	path, err := models.ParseFieldPath(req.FieldPath)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_field_path", err.Error())
		return
	}

	ct, err := a.templates.Get(site.TemplateID)
	if err != nil {
		respondError(w, err)
		return
	}

	value, msg := a.checkFieldValue(ct.Template, path, req.Value)
	if msg != "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid_value", msg)
		return
	}

	// Optimistic save loop: apply the one field on the snapshot we read,
	// re-render, and write guarded by the snapshot's updated_at. When a
	// concurrent edit to another field wins the race, reload and reapply
	// so neither field's value is lost.
	const maxSaveAttempts = 3
	for attempt := 0; ; attempt++ {
		if err := site.Customization.Set(path, value); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid_field_path", err.Error())
			return
		}

		rendered := renderer.Render(ct, site.Customization)
		err := a.websites.SaveCustomization(site.ID, site.Customization, rendered.Markup, rendered.Style, site.UpdatedAt)
		if err == nil {
			break
		}
		if !errors.Is(err, store.ErrStale) || attempt == maxSaveAttempts-1 {
			respondError(w, err)
			return
		}

		site, err = a.websites.FindByID(site.ID)
		if err != nil {
			respondError(w, err)
			return
		}
		if site == nil {
			writeError(w, http.StatusNotFound, "website_not_found", "no website with that ID exists")
			return
		}
	}
	if a.siteCache != nil {
		a.siteCache.Invalidate(r.Context(), site.Slug)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "saved",
		"field_path": req.FieldPath,
		"value":      value,
	})
}

// checkFieldValue validates the incoming value against the addressed
// placeholder and returns the value to store. Rich markdown is rendered to
// HTML; everything else is stored as given. The second return is a
// human-readable rejection message, empty on success.
func (a *API) checkFieldValue(t *models.Template, path models.FieldPath, value string) (string, string) {
	ph := t.Placeholder(path.Placeholder)
	if ph == nil {
		return "", "No such placeholder in this template."
	}

	if path.Index >= 0 {
		if ph.Kind != models.PlaceholderGroup {
			return "", "Field path addresses a group item but the placeholder is a scalar."
		}
		if ph.Field(path.Field) == nil {
			return "", "No such field in this group."
		}
		if msg := validateGroupItems(ph, []models.GroupItem{{path.Field: value}}); msg != "" {
			return "", msg
		}
		return value, ""
	}

	if ph.Kind == models.PlaceholderGroup {
		return "", "Group placeholders are edited one item field at a time."
	}
	if msg := validateScalar(ph, value); msg != "" {
		return "", msg
	}
	if ph.Kind == models.PlaceholderRich && value != "" {
		html, err := markdown.ToHTML(value)
		if err != nil {
			return "", "The markdown could not be rendered."
		}
		return html, ""
	}
	return value, ""
}
