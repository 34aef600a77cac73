// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import "platefront/internal/models"

// builtinTemplates are the platform's starter templates. They are inserted
// on startup; the insert is idempotent, so redeploys never duplicate or
// overwrite them. Template IDs are stable — websites reference them by ID.
var builtinTemplates = []models.Template{
	{
		ID:       "casual-dining-1",
		Name:     "Casual Dining",
		Category: "casual",
		Markup: `<header class="hero" style="background-image:url('{{hero_image_url}}')">
  <h1>{{restaurant_name}}</h1>
  <p class="tagline">{{tagline}}</p>
</header>
<section class="about">
  {{about}}
</section>
<section class="menu-section">
  <h2>Our Menu</h2>
  <ul class="menu">
{{#menu_items}}    <li class="menu-item">
      <span class="name">{{name}}</span>
      <span class="description">{{description}}</span>
      <span class="price">{{price}}</span>
    </li>
{{/menu_items}}  </ul>
</section>
<footer class="contact">
  <p>{{address}}</p>
  <p>{{phone}}</p>
  <p>{{hours}}</p>
</footer>`,
		Style: `:root {
  --primary: {{primary_color}};
  --accent: {{accent_color}};
}
body { font-family: "Inter", sans-serif; color: #1f2428; margin: 0; }
.hero { background-size: cover; background-position: center; padding: 6rem 2rem; color: #fff; }
.hero h1 { color: var(--primary); font-size: 3rem; margin: 0; }
.tagline { font-size: 1.25rem; }
.menu-item { display: flex; gap: 1rem; border-bottom: 1px solid var(--accent); padding: 0.75rem 0; }
.price { margin-left: auto; color: var(--primary); }
footer { background: var(--primary); color: #fff; padding: 2rem; }`,
		Placeholders: []models.Placeholder{
			{Name: "restaurant_name", Kind: models.PlaceholderText, Label: "Restaurant name", Default: "Your Restaurant"},
			{Name: "tagline", Kind: models.PlaceholderText, Label: "Tagline", Default: "Good food, good company"},
			{Name: "about", Kind: models.PlaceholderRich, Label: "About", Default: "<p>Tell your guests your story.</p>"},
			{Name: "hero_image_url", Kind: models.PlaceholderText, Label: "Hero image", Default: ""},
			{Name: "address", Kind: models.PlaceholderText, Label: "Address", Default: "123 Main Street"},
			{Name: "phone", Kind: models.PlaceholderText, Label: "Phone", Default: "(000) 000-0000"},
			{Name: "hours", Kind: models.PlaceholderText, Label: "Hours", Default: "Open daily 11am–10pm"},
			{Name: "primary_color", Kind: models.PlaceholderColor, Label: "Primary color", Default: "#b33a3a"},
			{Name: "accent_color", Kind: models.PlaceholderColor, Label: "Accent color", Default: "#e8d8c3"},
			{Name: "menu_items", Kind: models.PlaceholderGroup, Label: "Menu items", Fields: []models.GroupField{
				{Name: "name", Label: "Dish", Default: "Dish"},
				{Name: "description", Label: "Description", Default: ""},
				{Name: "price", Label: "Price", Default: ""},
			}},
		},
	},
	{
		ID:       "bistro-elegant-1",
		Name:     "Elegant Bistro",
		Category: "bistro",
		Markup: `<header class="masthead">
  <h1>{{restaurant_name}}</h1>
  <p class="subtitle">{{tagline}}</p>
</header>
<figure class="hero-photo"><img src="{{hero_image_url}}" alt="{{restaurant_name}}"></figure>
<section class="story">
  {{about}}
</section>
<section class="carte">
  <h2>La Carte</h2>
  <dl class="menu">
{{#menu_items}}    <div class="menu-item">
      <dt>{{name}} <em>{{price}}</em></dt>
      <dd>{{description}}</dd>
    </div>
{{/menu_items}}  </dl>
</section>
<footer>
  <address>{{address}} · {{phone}}</address>
  <p class="hours">{{hours}}</p>
</footer>`,
		Style: `:root {
  --primary: {{primary_color}};
  --accent: {{accent_color}};
}
body { font-family: "Cormorant Garamond", serif; color: #2b2b2b; margin: 0; }
.masthead { text-align: center; padding: 4rem 1rem 2rem; }
.masthead h1 { color: var(--primary); letter-spacing: 0.08em; }
.hero-photo img { width: 100%; height: 420px; object-fit: cover; }
.menu-item dt { font-weight: 600; }
.menu-item em { color: var(--accent); font-style: normal; }
footer { border-top: 2px solid var(--primary); padding: 2rem; text-align: center; }`,
		Placeholders: []models.Placeholder{
			{Name: "restaurant_name", Kind: models.PlaceholderText, Label: "Restaurant name", Default: "Maison"},
			{Name: "tagline", Kind: models.PlaceholderText, Label: "Tagline", Default: "Seasonal cooking, candlelit rooms"},
			{Name: "about", Kind: models.PlaceholderRich, Label: "Our story", Default: "<p>A neighbourhood bistro.</p>"},
			{Name: "hero_image_url", Kind: models.PlaceholderText, Label: "Hero image", Default: ""},
			{Name: "address", Kind: models.PlaceholderText, Label: "Address", Default: "1 Rue Principale"},
			{Name: "phone", Kind: models.PlaceholderText, Label: "Phone", Default: "(000) 000-0000"},
			{Name: "hours", Kind: models.PlaceholderText, Label: "Hours", Default: "Tue–Sun, 6pm–11pm"},
			{Name: "primary_color", Kind: models.PlaceholderColor, Label: "Primary color", Default: "#233a2f"},
			{Name: "accent_color", Kind: models.PlaceholderColor, Label: "Accent color", Default: "#b98e45"},
			{Name: "menu_items", Kind: models.PlaceholderGroup, Label: "Menu items", Fields: []models.GroupField{
				{Name: "name", Label: "Dish", Default: "Plat"},
				{Name: "description", Label: "Description", Default: ""},
				{Name: "price", Label: "Price", Default: ""},
			}},
		},
	},
	{
		ID:       "fast-casual-1",
		Name:     "Fast Casual",
		Category: "fast-casual",
		Markup: `<nav class="topbar"><span class="brand">{{restaurant_name}}</span><span class="phone">{{phone}}</span></nav>
<section class="hero" style="background-image:url('{{hero_image_url}}')">
  <h1>{{tagline}}</h1>
</section>
<section class="board">
  <h2>Menu Board</h2>
  <div class="items">
{{#menu_items}}    <article class="menu-item">
      <h3>{{name}}</h3>
      <p>{{description}}</p>
      <span class="price">{{price}}</span>
    </article>
{{/menu_items}}  </div>
</section>
<section class="about">
  {{about}}
</section>
<footer><p>{{address}}</p><p>{{hours}}</p></footer>`,
		Style: `:root {
  --primary: {{primary_color}};
  --accent: {{accent_color}};
}
body { font-family: "Poppins", sans-serif; margin: 0; }
.topbar { display: flex; justify-content: space-between; background: var(--primary); color: #fff; padding: 1rem 2rem; }
.hero { background-size: cover; padding: 5rem 2rem; }
.hero h1 { background: var(--accent); display: inline-block; padding: 0.5rem 1rem; }
.items { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 1rem; padding: 1rem 2rem; }
.menu-item { border: 2px solid var(--primary); border-radius: 8px; padding: 1rem; }
.price { font-weight: 700; color: var(--primary); }`,
		Placeholders: []models.Placeholder{
			{Name: "restaurant_name", Kind: models.PlaceholderText, Label: "Restaurant name", Default: "Quick Bites"},
			{Name: "tagline", Kind: models.PlaceholderText, Label: "Tagline", Default: "Fresh. Fast. Yours."},
			{Name: "about", Kind: models.PlaceholderRich, Label: "About", Default: "<p>Made to order, every order.</p>"},
			{Name: "hero_image_url", Kind: models.PlaceholderText, Label: "Hero image", Default: ""},
			{Name: "address", Kind: models.PlaceholderText, Label: "Address", Default: "42 Market Square"},
			{Name: "phone", Kind: models.PlaceholderText, Label: "Phone", Default: "(000) 000-0000"},
			{Name: "hours", Kind: models.PlaceholderText, Label: "Hours", Default: "10am–9pm, every day"},
			{Name: "primary_color", Kind: models.PlaceholderColor, Label: "Primary color", Default: "#ff6b35"},
			{Name: "accent_color", Kind: models.PlaceholderColor, Label: "Accent color", Default: "#ffd23f"},
			{Name: "menu_items", Kind: models.PlaceholderGroup, Label: "Menu items", Fields: []models.GroupField{
				{Name: "name", Label: "Item", Default: "Item"},
				{Name: "description", Label: "Description", Default: ""},
				{Name: "price", Label: "Price", Default: ""},
			}},
		},
	},
}
