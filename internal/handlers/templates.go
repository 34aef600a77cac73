// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"platefront/internal/models"
)

// templateView is one template in list responses. The raw skeletons are
// omitted; clients pick a template by name, category and placeholder schema.
type templateView struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Category     string               `json:"category"`
	Placeholders []models.Placeholder `json:"placeholders"`
}

// ListTemplates handles GET /api/templates?category=.
func (a *API) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := a.templates.List(r.URL.Query().Get("category"))
	if err != nil {
		respondError(w, err)
		return
	}

	views := make([]templateView, 0, len(templates))
	for _, t := range templates {
		views = append(views, templateView{
			ID:           t.ID,
			Name:         t.Name,
			Category:     t.Category,
			Placeholders: t.Placeholders,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"templates": views})
}
