// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package renderer

import (
	"strings"
	"testing"

	"platefront/internal/models"
)

// testTemplate returns a small bistro template exercising every
// placeholder kind.
func testTemplate() *models.Template {
	return &models.Template{
		ID:       "test-bistro-1",
		Name:     "Test Bistro",
		Category: "bistro",
		Markup: `<header><h1>{{restaurant_name}}</h1><p>{{tagline}}</p></header>
<section class="about">{{about_html}}</section>
<ul class="menu">{{#menu_items}}<li><span>{{name}}</span><em>{{description}}</em><b>{{price}}</b></li>{{/menu_items}}</ul>`,
		Style: `:root { --primary: {{primary_color}}; }
h1 { color: {{primary_color}}; }`,
		Placeholders: []models.Placeholder{
			{Name: "restaurant_name", Kind: models.PlaceholderText, Default: "Your Restaurant"},
			{Name: "tagline", Kind: models.PlaceholderText, Default: "Good food, good mood"},
			{Name: "about_html", Kind: models.PlaceholderRich},
			{Name: "primary_color", Kind: models.PlaceholderColor, Default: "#7a3b2e"},
			{Name: "menu_items", Kind: models.PlaceholderGroup, Fields: []models.GroupField{
				{Name: "name", Default: "Dish"},
				{Name: "description", Default: ""},
				{Name: "price", Default: "-"},
			}},
		},
	}
}

func compileTest(t *testing.T) *Compiled {
	t.Helper()
	ct, err := Compile(testTemplate())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return ct
}

func TestRenderSubstitutesScalars(t *testing.T) {
	ct := compileTest(t)

	res := Render(ct, models.Customization{
		"restaurant_name": "Luigi's",
		"tagline":         "Pasta since 1962",
	})

	if !strings.Contains(res.Markup, "<h1>Luigi&#39;s</h1>") {
		t.Errorf("restaurant name not substituted: %s", res.Markup)
	}
	if strings.Contains(res.Markup, "{{restaurant_name}}") {
		t.Error("raw token leaked into output")
	}
}

func TestRenderMissingScalarUsesDefault(t *testing.T) {
	ct := compileTest(t)

	res := Render(ct, models.Customization{})

	if strings.Contains(res.Markup, "{{") {
		t.Errorf("raw token syntax leaked: %s", res.Markup)
	}
	if !strings.Contains(res.Markup, "Your Restaurant") {
		t.Error("default text not applied for missing scalar")
	}
}

func TestRenderIdempotent(t *testing.T) {
	ct := compileTest(t)
	c := models.Customization{
		"restaurant_name": "Luigi's",
		"primary_color":   "#aa3322",
		"menu_items": []models.GroupItem{
			{"name": "Carbonara", "description": "guanciale, pecorino", "price": "14"},
		},
	}

	first := Render(ct, c)
	second := Render(ct, c)

	if first.Markup != second.Markup || first.Style != second.Style {
		t.Error("render is not byte-identical across calls")
	}
}

func TestRenderGroupPreservesOrder(t *testing.T) {
	ct := compileTest(t)

	res := Render(ct, models.Customization{
		"menu_items": []models.GroupItem{
			{"name": "Alpha"},
			{"name": "Beta"},
			{"name": "Gamma"},
		},
	})

	a := strings.Index(res.Markup, "Alpha")
	b := strings.Index(res.Markup, "Beta")
	g := strings.Index(res.Markup, "Gamma")
	if a < 0 || b < 0 || g < 0 {
		t.Fatalf("missing fragments: %s", res.Markup)
	}
	if !(a < b && b < g) {
		t.Errorf("fragments out of order: %d %d %d", a, b, g)
	}
}

func TestRenderMissingGroupRendersEmptyList(t *testing.T) {
	ct := compileTest(t)

	res := Render(ct, models.Customization{"restaurant_name": "Solo"})

	if !strings.Contains(res.Markup, `<ul class="menu"></ul>`) {
		t.Errorf("expected empty menu list, got: %s", res.Markup)
	}
}

func TestRenderColorIntoStyleVariables(t *testing.T) {
	ct := compileTest(t)

	res := Render(ct, models.Customization{"primary_color": "#00ff88"})

	if !strings.Contains(res.Style, "--primary: #00ff88") {
		t.Errorf("color not substituted into style variable: %s", res.Style)
	}
	// The same value feeds every themable occurrence.
	if !strings.Contains(res.Style, "color: #00ff88") {
		t.Errorf("second occurrence not substituted: %s", res.Style)
	}
}

func TestRenderInvalidColorFallsBack(t *testing.T) {
	ct := compileTest(t)

	res := Render(ct, models.Customization{"primary_color": "red; } body { display:none"})

	if strings.Contains(res.Style, "display:none") {
		t.Error("unvalidated color value reached the stylesheet")
	}
	if !strings.Contains(res.Style, "#7a3b2e") {
		t.Error("expected default color fallback")
	}
}

func TestRenderEscapesTextValues(t *testing.T) {
	ct := compileTest(t)

	res := Render(ct, models.Customization{
		"restaurant_name": `<script>alert("x")</script>`,
	})

	if strings.Contains(res.Markup, "<script>") {
		t.Error("text value was not escaped")
	}
}

func TestRenderRichValueVerbatim(t *testing.T) {
	ct := compileTest(t)

	res := Render(ct, models.Customization{
		"about_html": "<p>Family owned since <strong>1962</strong>.</p>",
	})

	if !strings.Contains(res.Markup, "<strong>1962</strong>") {
		t.Error("rich fragment was escaped")
	}
}

func TestRenderGroupItemEscapingAndDefaults(t *testing.T) {
	ct := compileTest(t)

	res := Render(ct, models.Customization{
		"menu_items": []models.GroupItem{
			{"name": "<b>Special</b>", "description": ""},
		},
	})

	if strings.Contains(res.Markup, "<b>Special</b>") {
		t.Error("group field value was not escaped")
	}
	// Empty price falls back to the field default.
	if !strings.Contains(res.Markup, "<b>-</b>") {
		t.Errorf("field default not applied: %s", res.Markup)
	}
}

func TestRenderLuigisScenario(t *testing.T) {
	ct := compileTest(t)

	res := Render(ct, models.Customization{"restaurant_name": "Luigi's"})

	if !strings.Contains(res.Markup, "Luigi&#39;s") {
		t.Errorf("expected Luigi's in output, got: %s", res.Markup)
	}
	if strings.Contains(res.Markup, "restaurant_name") {
		t.Error("literal token name present in output")
	}
}
