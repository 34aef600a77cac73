// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"platefront/internal/models"
)

// MenuItem is one dish in a generated menu.
type MenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// CopyDeck is the structured copy produced for one website: everything the
// content phase of generation needs to fill a template. About is Markdown;
// it is rendered to HTML downstream.
type CopyDeck struct {
	Tagline   string     `json:"tagline"`
	About     string     `json:"about_markdown"`
	MenuItems []MenuItem `json:"menu_items"`
}

// copyRequest is the machine-readable request sent as the user prompt. The
// local provider parses it back instead of interpreting natural language.
type copyRequest struct {
	RestaurantName string `json:"restaurant_name"`
	Cuisine        string `json:"cuisine"`
	Tone           string `json:"tone"`
	Palette        string `json:"palette"`
}

const copySystemPrompt = `You are a copywriter for restaurant websites.
The user message is a JSON object describing the restaurant. Respond with a
single JSON object, no prose and no code fences, with these keys:
  "tagline": a short memorable tagline (under 12 words)
  "about_markdown": 2-3 paragraphs of Markdown telling the restaurant's story
  "menu_items": an array of 4-8 objects with "name", "description", "price"
Prices are strings with a currency symbol. Match the requested tone.`

// maxMenuItems caps how many dishes a deck may carry regardless of what the
// model returns.
const maxMenuItems = 12

// Copywriter turns generation preferences into a CopyDeck using the active
// provider of a Registry.
type Copywriter struct {
	registry *Registry
}

// NewCopywriter creates a Copywriter backed by the given registry.
func NewCopywriter(registry *Registry) *Copywriter {
	return &Copywriter{registry: registry}
}

// Compose asks the active provider for website copy. The response must be a
// JSON CopyDeck; malformed or incomplete responses return an error so the
// caller can retry.
func (c *Copywriter) Compose(ctx context.Context, restaurantName string, prefs models.GenerationPreferences) (*CopyDeck, error) {
	req := copyRequest{
		RestaurantName: restaurantName,
		Cuisine:        prefs.Cuisine,
		Tone:           prefs.Tone,
		Palette:        prefs.Palette,
	}
	userPrompt, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("ai: encode copy request: %w", err)
	}

	raw, err := c.registry.Generate(ctx, copySystemPrompt, string(userPrompt))
	if err != nil {
		return nil, err
	}

	deck, err := parseDeck(raw)
	if err != nil {
		return nil, fmt.Errorf("ai: %s returned unusable copy: %w", c.registry.ActiveName(), err)
	}
	return deck, nil
}

// parseDeck decodes a provider response into a CopyDeck. Models sometimes
// wrap JSON in Markdown code fences despite instructions, so those are
// stripped first.
func parseDeck(raw string) (*CopyDeck, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
		raw = strings.TrimSpace(raw)
	}

	var deck CopyDeck
	if err := json.Unmarshal([]byte(raw), &deck); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}

	if deck.Tagline == "" {
		return nil, fmt.Errorf("deck missing tagline")
	}
	if deck.About == "" {
		return nil, fmt.Errorf("deck missing about copy")
	}
	if len(deck.MenuItems) == 0 {
		return nil, fmt.Errorf("deck missing menu items")
	}
	if len(deck.MenuItems) > maxMenuItems {
		deck.MenuItems = deck.MenuItems[:maxMenuItems]
	}
	for i, item := range deck.MenuItems {
		if item.Name == "" {
			return nil, fmt.Errorf("menu item %d missing name", i)
		}
	}
	return &deck, nil
}
