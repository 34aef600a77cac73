// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chains for the
// PlateFront server: the operator API under /api and the visitor-facing
// site pages under /sites.
package router

import (
	"github.com/go-chi/chi/v5"

	"platefront/internal/handlers"
	"platefront/internal/middleware"
	"platefront/internal/session"
)

// New creates the configured Chi router with all middleware and route
// groups wired up. rateLimiter may be nil to disable rate limiting.
func New(sessionStore *session.Store, rateLimiter *middleware.RateLimiter, api *handlers.API, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	if rateLimiter != nil {
		r.Use(rateLimiter.Middleware)
	}

	// Health check, no session needed.
	r.Get("/health", handlers.Health)

	// Operator API. Every route requires a session; LoadSession only
	// resolves it, RequireOperator enforces it.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LoadSession(sessionStore))
		r.Use(middleware.RequireOperator)

		r.Get("/templates", api.ListTemplates)

		r.Route("/websites", func(r chi.Router) {
			r.Post("/", api.CreateWebsite)
			r.Get("/", api.ListWebsites)

			r.Route("/{websiteID}", func(r chi.Router) {
				r.Get("/", api.GetWebsite)
				r.Delete("/", api.DeleteWebsite)
				r.Patch("/content", api.UpdateContent)
				r.Post("/generate", api.GenerateWebsite)
				r.Get("/jobs", api.ListJobs)
			})
		})

		r.Get("/generation/{jobID}", api.JobStatus)

		r.Route("/media", func(r chi.Router) {
			r.Post("/", api.UploadMedia)
			r.Get("/", api.ListMedia)
			r.Delete("/{mediaID}", api.DeleteMedia)
		})
	})

	// Public restaurant sites.
	r.Get("/sites/{slug}", public.Site)

	return r
}
