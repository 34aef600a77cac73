// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"html"
	"net/http"

	"github.com/go-chi/chi/v5"

	"platefront/internal/cache"
	"platefront/internal/models"
	"platefront/internal/store"
)

// Public groups the handlers for visitor-facing pages. It checks the
// Valkey site cache before touching the database and stores assembled
// pages on miss; content edits and deletions invalidate by slug.
type Public struct {
	websites  *store.WebsiteStore
	siteCache *cache.SiteCache
}

// NewPublic creates the public handler group. siteCache may be nil when
// Valkey is not configured; every request then hits the database.
func NewPublic(websites *store.WebsiteStore, siteCache *cache.SiteCache) *Public {
	return &Public{websites: websites, siteCache: siteCache}
}

// Site handles GET /sites/{slug}, serving a restaurant's page to visitors.
// Only ready and published websites are visible; drafts, failed sites and
// sites mid-generation answer 404.
func (p *Public) Site(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	if p.siteCache != nil {
		if cached, ok := p.siteCache.Get(ctx, slug); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	site, err := p.websites.FindBySlug(slug)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if site == nil || !visible(site.Status) {
		http.NotFound(w, r)
		return
	}

	page := assemblePage(site)
	if p.siteCache != nil {
		p.siteCache.Set(ctx, slug, page)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func visible(status models.WebsiteStatus) bool {
	return status == models.WebsiteStatusReady || status == models.WebsiteStatusPublished
}

// assemblePage wraps a website's markup/style pair into a complete HTML
// document. The markup and style are renderer output and already safe to
// embed; only the name needs escaping for the title element.
func assemblePage(site *models.Website) []byte {
	var b bytes.Buffer
	b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>")
	b.WriteString(html.EscapeString(site.Name))
	b.WriteString("</title>\n<style>\n")
	b.WriteString(site.Style)
	b.WriteString("\n</style>\n</head>\n<body>\n")
	b.WriteString(site.Markup)
	b.WriteString("\n</body>\n</html>\n")
	return b.Bytes()
}

// Health is the liveness endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
