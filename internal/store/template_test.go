// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store_test

import (
	"testing"

	"platefront/internal/models"
	"platefront/internal/store"
)

func TestTemplateStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := store.NewTemplateStore(db)

	id := testTemplateID(t, db)

	found, err := s.FindByID(id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected template, got nil")
	}
	if found.Category != "test" {
		t.Errorf("category: got %q", found.Category)
	}
	if len(found.Placeholders) != 2 {
		t.Fatalf("placeholders: got %d, want 2", len(found.Placeholders))
	}
	if ph := found.Placeholder("restaurant_name"); ph == nil || ph.Default != "Your Restaurant" {
		t.Error("placeholder schema lost through JSONB round trip")
	}

	missing, err := s.FindByID("no-such-template")
	if err != nil {
		t.Fatalf("FindByID missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown template id")
	}
}

func TestTemplateStoreCreateIdempotent(t *testing.T) {
	db := testDB(t)
	s := store.NewTemplateStore(db)
	id := testTemplateID(t, db)

	// Seeding runs on every boot; re-inserting an existing ID must not fail
	// and must not overwrite the published definition.
	inserted, err := s.Create(&models.Template{
		ID: id, Name: "Overwrite Attempt", Category: "test",
		Markup: "<p>new</p>", Style: "",
	})
	if err != nil {
		t.Fatalf("re-Create: %v", err)
	}
	if inserted {
		t.Error("re-Create reported an insert for an existing ID")
	}

	found, _ := s.FindByID(id)
	if found.Name == "Overwrite Attempt" {
		t.Error("published template was overwritten")
	}
}

func TestTemplateStoreListByCategory(t *testing.T) {
	db := testDB(t)
	s := store.NewTemplateStore(db)
	testTemplateID(t, db)

	all, err := s.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) < 1 {
		t.Error("expected at least one template")
	}

	filtered, err := s.List("test")
	if err != nil {
		t.Fatalf("List(test): %v", err)
	}
	for _, tmpl := range filtered {
		if tmpl.Category != "test" {
			t.Errorf("category filter leaked %q", tmpl.Category)
		}
	}

	none, _ := s.List("no-such-category")
	if len(none) != 0 {
		t.Error("expected empty list for unknown category")
	}
}
