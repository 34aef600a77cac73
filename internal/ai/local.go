// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
)

// localProvider generates copy without any network calls. It parses the
// JSON copy request from the user prompt and assembles a deck from canned
// cuisine material. Output is deterministic for a given restaurant, so
// regeneration is reproducible and tests need no fixtures.
type localProvider struct{}

func newLocal() *localProvider { return &localProvider{} }

func (p *localProvider) Name() string { return "local" }

func (p *localProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var req copyRequest
	if err := json.Unmarshal([]byte(userPrompt), &req); err != nil {
		return "", fmt.Errorf("local provider: decode request: %w", err)
	}
	if req.RestaurantName == "" {
		req.RestaurantName = "Our Restaurant"
	}

	kitchen := kitchenFor(req.Cuisine)
	seed := hashString(req.RestaurantName)

	tagline := kitchen.taglines[seed%uint32(len(kitchen.taglines))]
	if req.Tone == "playful" {
		tagline = tagline + " (bring your appetite)"
	}

	about := fmt.Sprintf(
		"## About %s\n\n%s\n\nEvery plate that leaves our kitchen carries the same promise: honest ingredients, treated with care. %s",
		req.RestaurantName, kitchen.story, toneClose(req.Tone),
	)

	deck := CopyDeck{
		Tagline:   tagline,
		About:     about,
		MenuItems: kitchen.menu,
	}

	out, err := json.Marshal(deck)
	if err != nil {
		return "", fmt.Errorf("local provider: encode deck: %w", err)
	}
	return string(out), nil
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

func toneClose(tone string) string {
	switch tone {
	case "playful":
		return "Come hungry, leave happy."
	case "upscale":
		return "We look forward to hosting you."
	default:
		return "Pull up a chair."
	}
}

// kitchen is one cuisine's canned material.
type kitchen struct {
	taglines []string
	story    string
	menu     []MenuItem
}

func kitchenFor(cuisine string) kitchen {
	if k, ok := kitchens[strings.ToLower(strings.TrimSpace(cuisine))]; ok {
		return k
	}
	return kitchens["default"]
}

var kitchens = map[string]kitchen{
	"italian": {
		taglines: []string{
			"Handmade pasta, every single day",
			"From our nonna's kitchen to your table",
			"Where the sauce simmers all afternoon",
		},
		story: "We started with a single wood-fired oven and a family recipe book. The pasta is rolled each morning, the tomatoes arrive by the crate, and the olive oil comes from a grove we visit every year.",
		menu: []MenuItem{
			{Name: "Tagliatelle al Ragù", Description: "Slow-braised beef and pork ragù over fresh egg pasta", Price: "$19"},
			{Name: "Margherita", Description: "San Marzano tomatoes, fior di latte, basil", Price: "$15"},
			{Name: "Burrata e Prosciutto", Description: "Creamy burrata, 24-month prosciutto, grilled bread", Price: "$14"},
			{Name: "Tiramisù", Description: "Espresso-soaked savoiardi, mascarpone cream", Price: "$9"},
		},
	},
	"mexican": {
		taglines: []string{
			"Tortillas pressed to order",
			"Bold flavors, family recipes",
			"Salsa made while you watch",
		},
		story: "Our kitchen runs on masa ground in-house and chiles toasted on the comal. The recipes come from three generations of cooks who never wrote anything down, so we learned by standing at the stove.",
		menu: []MenuItem{
			{Name: "Tacos al Pastor", Description: "Spit-roasted pork, pineapple, cilantro, onion", Price: "$12"},
			{Name: "Mole Poblano", Description: "Chicken in a 20-ingredient mole, sesame, rice", Price: "$18"},
			{Name: "Elote Callejero", Description: "Grilled corn, crema, cotija, chile-lime", Price: "$7"},
			{Name: "Churros", Description: "Cinnamon sugar, dark chocolate for dipping", Price: "$8"},
		},
	},
	"japanese": {
		taglines: []string{
			"Precision in every slice",
			"Seasonal fish, quiet craft",
			"The counter is the best seat",
		},
		story: "The fish arrives before sunrise and the rice is seasoned by feel. We keep the menu short so every item gets the attention it deserves, and we change it as the seasons change.",
		menu: []MenuItem{
			{Name: "Chef's Nigiri Set", Description: "Eight pieces, daily selection", Price: "$28"},
			{Name: "Tonkotsu Ramen", Description: "18-hour pork broth, chashu, ajitama", Price: "$16"},
			{Name: "Agedashi Tofu", Description: "Crisp tofu in dashi broth, grated daikon", Price: "$8"},
			{Name: "Matcha Cheesecake", Description: "Baked cheesecake, ceremonial matcha", Price: "$9"},
		},
	},
	"default": {
		taglines: []string{
			"Good food, made from scratch",
			"Cooking for neighbors since day one",
			"Simple ingredients, serious flavor",
		},
		story: "We cook the food we want to eat: seasonal, generous, and made from scratch. The menu changes with the market, but the welcome never does.",
		menu: []MenuItem{
			{Name: "House Burger", Description: "Two smashed patties, aged cheddar, pickles", Price: "$14"},
			{Name: "Market Salad", Description: "Whatever looked best this morning, lemon vinaigrette", Price: "$11"},
			{Name: "Roast Chicken", Description: "Half bird, pan jus, crispy potatoes", Price: "$21"},
			{Name: "Chocolate Pot de Crème", Description: "Dark chocolate custard, flaky salt", Price: "$8"},
		},
	},
}
