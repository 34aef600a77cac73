// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"platefront/internal/media"
	"platefront/internal/registry"
	"platefront/internal/store"
)

// errorBody is the JSON error envelope every API failure uses:
//
//	{"error": {"code": "generation_in_progress", "message": "..."}}
//
// Codes are stable strings clients branch on; messages are for humans.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeJSON writes v with the given status. Encoding failures are logged,
// not surfaced; the status line has already gone out.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	var body errorBody
	body.Error.Code = code
	body.Error.Message = message
	writeJSON(w, status, body)
}

// respondError maps a domain error to its HTTP status and envelope code.
// Unknown errors become an opaque 500 so internal details never leak to
// clients; the real cause is logged server-side.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrActiveJob):
		writeError(w, http.StatusConflict, "generation_in_progress",
			"a generation job is already queued or running for this website")
	case errors.Is(err, store.ErrWebsiteLocked):
		writeError(w, http.StatusConflict, "website_locked",
			"the website is being generated and cannot be edited right now")
	case errors.Is(err, store.ErrStale):
		writeError(w, http.StatusConflict, "concurrent_update",
			"the website was modified concurrently; retry the save")
	case errors.Is(err, registry.ErrTemplateNotFound):
		writeError(w, http.StatusNotFound, "template_not_found",
			"no template with that ID exists")
	case errors.Is(err, media.ErrTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "media_too_large",
			"the uploaded file exceeds the size limit")
	case errors.Is(err, media.ErrUnsupportedType):
		writeError(w, http.StatusUnsupportedMediaType, "media_unsupported_type",
			"only JPEG, PNG, WebP and GIF images are accepted")
	case errors.Is(err, media.ErrCorrupt):
		writeError(w, http.StatusUnprocessableEntity, "media_corrupt",
			"the uploaded file could not be decoded as an image")
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error",
			"something went wrong")
	}
}
