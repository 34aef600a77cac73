// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"platefront/internal/models"
)

func TestComposeParsesProviderJSON(t *testing.T) {
	mock := &mockProvider{name: "test", response: `{
		"tagline": "Fresh pasta daily",
		"about_markdown": "## Our Story\n\nWe make pasta.",
		"menu_items": [{"name": "Carbonara", "description": "Guanciale, pecorino", "price": "$18"}]
	}`}

	reg := NewRegistry("test", nil)
	reg.Register("test", mock)
	cw := NewCopywriter(reg)

	deck, err := cw.Compose(context.Background(), "Luigi's", models.GenerationPreferences{Cuisine: "italian", Tone: "warm"})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if deck.Tagline != "Fresh pasta daily" {
		t.Errorf("tagline: got %q", deck.Tagline)
	}
	if len(deck.MenuItems) != 1 || deck.MenuItems[0].Name != "Carbonara" {
		t.Errorf("menu items: got %+v", deck.MenuItems)
	}

	// The user prompt must be the machine-readable request.
	mock.mu.Lock()
	defer mock.mu.Unlock()
	var req copyRequest
	if err := json.Unmarshal([]byte(mock.lastUser), &req); err != nil {
		t.Fatalf("user prompt is not JSON: %v", err)
	}
	if req.RestaurantName != "Luigi's" || req.Cuisine != "italian" {
		t.Errorf("request: got %+v", req)
	}
}

func TestComposeStripsCodeFences(t *testing.T) {
	mock := &mockProvider{name: "test", response: "```json\n" + `{
		"tagline": "t", "about_markdown": "a",
		"menu_items": [{"name": "n", "description": "", "price": ""}]
	}` + "\n```"}

	reg := NewRegistry("test", nil)
	reg.Register("test", mock)

	deck, err := NewCopywriter(reg).Compose(context.Background(), "X", models.GenerationPreferences{})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if deck.Tagline != "t" {
		t.Errorf("tagline: got %q", deck.Tagline)
	}
}

func TestComposeRejectsIncompleteDecks(t *testing.T) {
	cases := map[string]string{
		"not json":       "sorry, I can't do that",
		"missing tagline": `{"about_markdown": "a", "menu_items": [{"name": "n"}]}`,
		"empty menu":     `{"tagline": "t", "about_markdown": "a", "menu_items": []}`,
		"unnamed item":   `{"tagline": "t", "about_markdown": "a", "menu_items": [{"name": ""}]}`,
	}

	for name, response := range cases {
		t.Run(name, func(t *testing.T) {
			reg := NewRegistry("test", nil)
			reg.Register("test", &mockProvider{name: "test", response: response})

			_, err := NewCopywriter(reg).Compose(context.Background(), "X", models.GenerationPreferences{})
			if err == nil {
				t.Fatal("expected error for unusable copy")
			}
		})
	}
}

func TestComposeCapsMenuItems(t *testing.T) {
	var items []string
	for i := 0; i < 20; i++ {
		items = append(items, `{"name": "dish", "description": "", "price": ""}`)
	}
	reg := NewRegistry("test", nil)
	reg.Register("test", &mockProvider{name: "test", response: `{"tagline": "t", "about_markdown": "a", "menu_items": [` + strings.Join(items, ",") + `]}`})

	deck, err := NewCopywriter(reg).Compose(context.Background(), "X", models.GenerationPreferences{})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(deck.MenuItems) != maxMenuItems {
		t.Errorf("menu items: got %d, want %d", len(deck.MenuItems), maxMenuItems)
	}
}

func TestComposeWithLocalProvider(t *testing.T) {
	reg := NewRegistry("local", nil)
	cw := NewCopywriter(reg)

	first, err := cw.Compose(context.Background(), "Luigi's", models.GenerationPreferences{Cuisine: "italian", Tone: "warm"})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !strings.Contains(first.About, "Luigi's") {
		t.Errorf("about copy does not mention the restaurant: %q", first.About)
	}
	if len(first.MenuItems) < 3 {
		t.Errorf("expected a usable menu, got %d items", len(first.MenuItems))
	}

	second, err := cw.Compose(context.Background(), "Luigi's", models.GenerationPreferences{Cuisine: "italian", Tone: "warm"})
	if err != nil {
		t.Fatalf("Compose (second): %v", err)
	}
	if first.Tagline != second.Tagline || first.About != second.About {
		t.Error("local provider is not deterministic")
	}
}
