// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"platefront/internal/session"
)

// withSession returns a request whose context carries an operator session,
// as LoadSession would have left it.
func withSession(r *http.Request, data *session.Data) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), SessionKey, data))
}

func TestRequireOperatorAllowsAuthenticated(t *testing.T) {
	var reached bool
	handler := RequireOperator(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		if sess := SessionFromCtx(r.Context()); sess == nil || sess.DisplayName != "Luigi" {
			t.Errorf("session in handler: %+v", sess)
		}
	}))

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/websites", nil), &session.Data{
		OperatorID:  uuid.New(),
		DisplayName: "Luigi",
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !reached {
		t.Fatal("handler not reached")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d", rec.Code)
	}
}

func TestRequireOperatorRejectsAnonymous(t *testing.T) {
	handler := RequireOperator(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without a session")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/websites", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("body is not the JSON error envelope: %v", err)
	}
	if envelope.Error.Code != "unauthorized" {
		t.Errorf("error code: got %q", envelope.Error.Code)
	}
}

func TestSessionFromCtxWithoutSession(t *testing.T) {
	if got := SessionFromCtx(context.Background()); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}
