// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"platefront/internal/middleware"
	"platefront/internal/models"
)

// JobStatus handles GET /api/generation/{jobID}, the polling endpoint for
// asynchronous generation. The response carries status, progress percentage
// and the current operation label; failed jobs include error detail.
func (a *API) JobStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "job_not_found", "no generation job with that ID exists")
		return
	}

	job, err := a.generator.Progress(id)
	if err != nil {
		respondError(w, err)
		return
	}
	if job == nil {
		writeError(w, http.StatusNotFound, "job_not_found", "no generation job with that ID exists")
		return
	}

	// Jobs are only visible to the owner of the website they ran for.
	site, err := a.websites.FindByID(job.WebsiteID)
	if err != nil {
		respondError(w, err)
		return
	}
	sess := middleware.SessionFromCtx(r.Context())
	if site == nil || site.OwnerID != sess.OperatorID {
		writeError(w, http.StatusNotFound, "job_not_found", "no generation job with that ID exists")
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// ListJobs handles GET /api/websites/{websiteID}/jobs, the generation
// history for one website, newest first.
func (a *API) ListJobs(w http.ResponseWriter, r *http.Request) {
	site := a.ownedWebsite(w, r)
	if site == nil {
		return
	}

	jobs, err := a.jobs.ListByWebsite(site.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	if jobs == nil {
		jobs = []models.GenerationJob{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}
