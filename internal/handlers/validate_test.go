package handlers

import (
	"strings"
	"testing"

	"platefront/internal/models"
)

func schemaTemplate() *models.Template {
	return &models.Template{
		ID: "test-1",
		Placeholders: []models.Placeholder{
			{Name: "restaurant_name", Kind: models.PlaceholderText},
			{Name: "about", Kind: models.PlaceholderRich},
			{Name: "primary_color", Kind: models.PlaceholderColor},
			{Name: "menu_items", Kind: models.PlaceholderGroup, Fields: []models.GroupField{
				{Name: "name"}, {Name: "price"},
			}},
		},
	}
}

func TestValidateWebsiteName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{"normal name", "Luigi's Trattoria", true},
		{"empty", "", false},
		{"only whitespace", "   ", false},
		{"at limit", strings.Repeat("a", 120), true},
		{"over limit", strings.Repeat("a", 121), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateWebsiteName(tt.input)
			if (msg == "") != tt.wantOK {
				t.Errorf("validateWebsiteName(%q) = %q, want ok=%v", tt.input, msg, tt.wantOK)
			}
		})
	}
}

func TestValidateCustomization(t *testing.T) {
	tmpl := schemaTemplate()

	tests := []struct {
		name   string
		c      models.Customization
		wantOK bool
	}{
		{"empty customization", models.Customization{}, true},
		{"valid scalars", models.Customization{
			"restaurant_name": "Luigi's",
			"primary_color":   "#a52a2a",
		}, true},
		{"valid group", models.Customization{
			"menu_items": []models.GroupItem{{"name": "Carbonara", "price": "$18"}},
		}, true},
		{"unknown placeholder", models.Customization{"nope": "x"}, false},
		{"non-string scalar", models.Customization{"restaurant_name": 42}, false},
		{"invalid color", models.Customization{"primary_color": "red"}, false},
		{"empty color allowed", models.Customization{"primary_color": ""}, true},
		{"scalar value for group", models.Customization{"menu_items": "not a list"}, false},
		{"unknown group field", models.Customization{
			"menu_items": []models.GroupItem{{"calories": "900"}},
		}, false},
		{"scalar too long", models.Customization{
			"restaurant_name": strings.Repeat("a", maxScalarLen+1),
		}, false},
		{"rich allows long values", models.Customization{
			"about": strings.Repeat("a", maxScalarLen+1),
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateCustomization(tmpl, tt.c)
			if (msg == "") != tt.wantOK {
				t.Errorf("validateCustomization() = %q, want ok=%v", msg, tt.wantOK)
			}
		})
	}
}

func TestRenderRichValues(t *testing.T) {
	tmpl := schemaTemplate()

	c := models.Customization{
		"about":           "We make **everything** from scratch. <script>alert('x')</script>",
		"restaurant_name": "<b>Luigi's</b>",
	}
	if err := renderRichValues(tmpl, c); err != nil {
		t.Fatalf("renderRichValues: %v", err)
	}

	about, _ := c.Scalar("about")
	if strings.Contains(about, "<script>") {
		t.Errorf("raw script tag survived into the rich value: %q", about)
	}
	if !strings.Contains(about, "<strong>everything</strong>") {
		t.Errorf("markdown not rendered: %q", about)
	}

	// Text placeholders stay as given; the renderer escapes them at
	// substitution time.
	if name, _ := c.Scalar("restaurant_name"); name != "<b>Luigi's</b>" {
		t.Errorf("text value modified: %q", name)
	}
}

func TestValidateGroupItemsCap(t *testing.T) {
	tmpl := schemaTemplate()
	ph := tmpl.Placeholder("menu_items")

	items := make([]models.GroupItem, maxGroupItems+1)
	for i := range items {
		items[i] = models.GroupItem{"name": "x"}
	}
	if msg := validateGroupItems(ph, items); msg == "" {
		t.Error("expected rejection for group over the item cap")
	}
	if msg := validateGroupItems(ph, items[:maxGroupItems]); msg != "" {
		t.Errorf("group at the cap rejected: %s", msg)
	}
}
