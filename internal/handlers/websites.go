// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"platefront/internal/middleware"
	"platefront/internal/models"
	"platefront/internal/renderer"
	"platefront/internal/slug"
)

// createWebsiteRequest is the payload for POST /api/websites.
type createWebsiteRequest struct {
	Name          string               `json:"name"`
	TemplateID    string               `json:"template_id"`
	Customization models.Customization `json:"customization,omitempty"`
}

// websiteDetail augments the website model with the rendered markup/style
// pair, which the JSON encoding of the model deliberately omits.
type websiteDetail struct {
	*models.Website
	Markup string `json:"markup"`
	Style  string `json:"style"`
}

// CreateWebsite handles POST /api/websites. The site is created in draft
// with an initial render of the chosen template, so the editor has markup
// to show before the first generation run.
func (a *API) CreateWebsite(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req createWebsiteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "request body is not valid JSON")
		return
	}
	if msg := validateWebsiteName(req.Name); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid_name", msg)
		return
	}

	ct, err := a.templates.Get(req.TemplateID)
	if err != nil {
		respondError(w, err)
		return
	}
	if req.Customization == nil {
		req.Customization = models.Customization{}
	}
	if msg := validateCustomization(ct.Template, req.Customization); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid_customization", msg)
		return
	}
	if err := renderRichValues(ct.Template, req.Customization); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_customization",
			"A rich text value could not be rendered.")
		return
	}

	siteSlug, err := a.uniqueSlug(req.Name)
	if err != nil {
		respondError(w, err)
		return
	}

	rendered := renderer.Render(ct, req.Customization)
	created, err := a.websites.Create(&models.Website{
		OwnerID:       sess.OperatorID,
		Name:          req.Name,
		Slug:          siteSlug,
		TemplateID:    req.TemplateID,
		Customization: req.Customization,
		Markup:        rendered.Markup,
		Style:         rendered.Style,
		Status:        models.WebsiteStatusDraft,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	slog.Info("website created", "website_id", created.ID, "slug", created.Slug, "template", created.TemplateID)
	writeJSON(w, http.StatusCreated, websiteDetail{Website: created, Markup: created.Markup, Style: created.Style})
}

// ListWebsites handles GET /api/websites, returning the operator's sites.
func (a *API) ListWebsites(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	sites, err := a.websites.ListByOwner(sess.OperatorID)
	if err != nil {
		respondError(w, err)
		return
	}
	if sites == nil {
		sites = []models.Website{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"websites": sites})
}

// GetWebsite handles GET /api/websites/{websiteID}.
func (a *API) GetWebsite(w http.ResponseWriter, r *http.Request) {
	site := a.ownedWebsite(w, r)
	if site == nil {
		return
	}
	writeJSON(w, http.StatusOK, websiteDetail{Website: site, Markup: site.Markup, Style: site.Style})
}

// DeleteWebsite handles DELETE /api/websites/{websiteID}. Job rows cascade
// in the database; the cached public page is invalidated explicitly.
func (a *API) DeleteWebsite(w http.ResponseWriter, r *http.Request) {
	site := a.ownedWebsite(w, r)
	if site == nil {
		return
	}

	deleted, err := a.websites.Delete(site.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	if deleted != nil && a.siteCache != nil {
		a.siteCache.Invalidate(r.Context(), deleted.Slug)
	}

	slog.Info("website deleted", "website_id", site.ID, "slug", site.Slug)
	w.WriteHeader(http.StatusNoContent)
}

// GenerateWebsite handles POST /api/websites/{websiteID}/generate. It
// enqueues an asynchronous generation job and returns it immediately;
// clients poll the job endpoint for progress. A second enqueue while a job
// is queued or running is rejected with 409.
func (a *API) GenerateWebsite(w http.ResponseWriter, r *http.Request) {
	site := a.ownedWebsite(w, r)
	if site == nil {
		return
	}

	var prefs models.GenerationPreferences
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &prefs); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "request body is not valid JSON")
			return
		}
	}

	job, err := a.generator.Enqueue(site, prefs)
	if err != nil {
		respondError(w, err)
		return
	}

	slog.Info("generation enqueued", "website_id", site.ID, "job_id", job.ID)
	writeJSON(w, http.StatusAccepted, job)
}

// ownedWebsite loads the website addressed by the URL and verifies the
// session operator owns it. Foreign and missing websites both answer 404
// so ownership cannot be probed. Returns nil after writing the response.
func (a *API) ownedWebsite(w http.ResponseWriter, r *http.Request) *models.Website {
	id, err := uuid.Parse(chi.URLParam(r, "websiteID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "website_not_found", "no website with that ID exists")
		return nil
	}

	site, err := a.websites.FindByID(id)
	if err != nil {
		respondError(w, err)
		return nil
	}
	sess := middleware.SessionFromCtx(r.Context())
	if site == nil || site.OwnerID != sess.OperatorID {
		writeError(w, http.StatusNotFound, "website_not_found", "no website with that ID exists")
		return nil
	}
	return site
}

// uniqueSlug derives a slug from the website name and suffixes it until it
// is free. After a handful of numeric suffixes it falls back to a random
// one, so pathological name collisions cannot loop forever.
func (a *API) uniqueSlug(name string) (string, error) {
	base := slug.Generate(name)
	if base == "" {
		base = "site"
	}

	candidate := base
	for i := 2; i <= 20; i++ {
		existing, err := a.websites.FindBySlug(candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8]), nil
}
