// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"testing"
)

func TestParseFieldPathScalar(t *testing.T) {
	p, err := ParseFieldPath("restaurant_name")
	if err != nil {
		t.Fatalf("ParseFieldPath: %v", err)
	}
	if p.Placeholder != "restaurant_name" || p.Index != -1 || p.Field != "" {
		t.Errorf("unexpected path: %+v", p)
	}
}

func TestParseFieldPathGroup(t *testing.T) {
	p, err := ParseFieldPath("menu_items.2.price")
	if err != nil {
		t.Fatalf("ParseFieldPath: %v", err)
	}
	if p.Placeholder != "menu_items" || p.Index != 2 || p.Field != "price" {
		t.Errorf("unexpected path: %+v", p)
	}
}

func TestParseFieldPathRejectsMalformed(t *testing.T) {
	for _, path := range []string{"", "a.b", "a.b.c.d", "menu.-1.name", "menu.x.name", ".0.name", "menu.0."} {
		if _, err := ParseFieldPath(path); err == nil {
			t.Errorf("expected error for %q", path)
		}
	}
}

func TestCustomizationSetScalar(t *testing.T) {
	c := Customization{}
	p, _ := ParseFieldPath("tagline")
	if err := c.Set(p, "Fresh pasta daily"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := c.Scalar("tagline")
	if !ok || got != "Fresh pasta daily" {
		t.Errorf("Scalar: got %q, ok=%v", got, ok)
	}
}

func TestCustomizationSetGroupField(t *testing.T) {
	c := Customization{
		"menu_items": []GroupItem{{"name": "Carbonara", "price": "14"}},
	}

	p, _ := ParseFieldPath("menu_items.0.price")
	if err := c.Set(p, "16"); err != nil {
		t.Fatalf("Set existing: %v", err)
	}

	// Appending exactly one past the end creates a new row.
	p, _ = ParseFieldPath("menu_items.1.name")
	if err := c.Set(p, "Tiramisu"); err != nil {
		t.Fatalf("Set append: %v", err)
	}

	items, _ := c.Group("menu_items")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0]["price"] != "16" || items[1]["name"] != "Tiramisu" {
		t.Errorf("unexpected items: %v", items)
	}

	// A gap index is rejected.
	p, _ = ParseFieldPath("menu_items.5.name")
	if err := c.Set(p, "x"); err == nil {
		t.Error("expected out-of-range error")
	}
}

func TestCustomizationGroupAfterJSONRoundTrip(t *testing.T) {
	src := Customization{
		"menu_items": []GroupItem{
			{"name": "A", "description": "first"},
			{"name": "B", "description": "second"},
		},
	}

	raw, err := json.Marshal(src)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Customization
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	items, ok := decoded.Group("menu_items")
	if !ok {
		t.Fatal("Group failed after round trip")
	}
	if len(items) != 2 || items[0]["name"] != "A" || items[1]["name"] != "B" {
		t.Errorf("order or values lost: %v", items)
	}
}
