package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"platefront/internal/media"
	"platefront/internal/registry"
	"platefront/internal/store"
)

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"active job", store.ErrActiveJob, http.StatusConflict, "generation_in_progress"},
		{"website locked", store.ErrWebsiteLocked, http.StatusConflict, "website_locked"},
		{"template not found", registry.ErrTemplateNotFound, http.StatusNotFound, "template_not_found"},
		{"media too large", media.ErrTooLarge, http.StatusRequestEntityTooLarge, "media_too_large"},
		{"media unsupported", media.ErrUnsupportedType, http.StatusUnsupportedMediaType, "media_unsupported_type"},
		{"media corrupt", media.ErrCorrupt, http.StatusUnprocessableEntity, "media_corrupt"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
		{"wrapped sentinel", fmt.Errorf("enqueue: %w", store.ErrActiveJob), http.StatusConflict, "generation_in_progress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body errorBody
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.wantCode)
			}
			if body.Error.Message == "" {
				t.Error("message is empty")
			}
		})
	}
}

func TestInternalErrorHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, errors.New("pq: connection refused on 10.0.0.3"))

	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if body.Error.Message != "something went wrong" {
		t.Errorf("internal error message leaked detail: %q", body.Error.Message)
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}
