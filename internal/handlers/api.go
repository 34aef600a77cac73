// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the operator API and the
// public site endpoints. Operator routes require a session loaded by the
// auth middleware; all API responses are JSON with a uniform error envelope.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"platefront/internal/cache"
	"platefront/internal/generator"
	"platefront/internal/registry"
	"platefront/internal/storage"
	"platefront/internal/store"
)

// API bundles the dependencies shared by the operator API handlers.
type API struct {
	websites  *store.WebsiteStore
	jobs      *store.JobStore
	media     *store.MediaStore
	variants  *store.VariantStore
	templates *registry.Registry

	generator *generator.Orchestrator
	storage   *storage.Client // nil when object storage is not configured
	siteCache *cache.SiteCache

	maxUploadBytes int64
}

// NewAPI creates the API handler set.
func NewAPI(
	websites *store.WebsiteStore,
	jobs *store.JobStore,
	mediaStore *store.MediaStore,
	variants *store.VariantStore,
	templates *registry.Registry,
	gen *generator.Orchestrator,
	storageClient *storage.Client,
	siteCache *cache.SiteCache,
	maxUploadBytes int64,
) *API {
	return &API{
		websites:       websites,
		jobs:           jobs,
		media:          mediaStore,
		variants:       variants,
		templates:      templates,
		generator:      gen,
		storage:        storageClient,
		siteCache:      siteCache,
		maxUploadBytes: maxUploadBytes,
	}
}

// decodeJSON decodes a request body into v, rejecting unknown fields so
// typos in client payloads fail loudly instead of being silently dropped.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
