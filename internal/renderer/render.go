// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package renderer

import (
	"html"
	"regexp"
	"strings"

	"platefront/internal/models"
)

// hexColorRe matches 3- and 6-digit CSS hex colors.
var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Result is the concrete markup/style pair produced for one website.
type Result struct {
	Markup string
	Style  string
}

// Render substitutes a customization record into a compiled template.
// It is a pure function: identical inputs always yield byte-identical
// output. Missing scalar values fall back to the placeholder's declared
// default so a half-filled customization never leaks raw token syntax;
// missing repeating groups expand to zero fragments.
func Render(ct *Compiled, c models.Customization) Result {
	var markup, style strings.Builder
	renderSegments(&markup, ct.markup, ct.Template, c)
	renderSegments(&style, ct.style, ct.Template, c)
	return Result{Markup: markup.String(), Style: style.String()}
}

func renderSegments(out *strings.Builder, segs []segment, t *models.Template, c models.Customization) {
	for _, seg := range segs {
		switch seg.kind {
		case segLiteral:
			out.WriteString(seg.text)

		case segToken:
			out.WriteString(scalarValue(t.Placeholder(seg.name), c))

		case segSection:
			ph := t.Placeholder(seg.name)
			items, _ := c.Group(seg.name)
			for _, item := range items {
				renderItem(out, seg.inner, ph, item)
			}
		}
	}
}

// renderItem expands one group item through the section's per-item fragment.
func renderItem(out *strings.Builder, segs []segment, ph *models.Placeholder, item models.GroupItem) {
	for _, seg := range segs {
		switch seg.kind {
		case segLiteral:
			out.WriteString(seg.text)
		case segToken:
			field := ph.Field(seg.name)
			v, ok := item[seg.name]
			if !ok || v == "" {
				out.WriteString(field.Default)
				continue
			}
			out.WriteString(html.EscapeString(v))
		}
	}
}

// scalarValue resolves one scalar placeholder against the customization,
// applying the kind's safety rules. Declared defaults are maintainer-
// authored and inserted verbatim; operator values are escaped (text),
// validated (color), or pre-sanitized upstream (rich).
func scalarValue(ph *models.Placeholder, c models.Customization) string {
	v, ok := c.Scalar(ph.Name)
	if !ok || v == "" {
		return ph.Default
	}

	switch ph.Kind {
	case models.PlaceholderColor:
		if !hexColorRe.MatchString(v) {
			return ph.Default
		}
		return v
	case models.PlaceholderRich:
		// Rich values are produced by the markdown pipeline, which never
		// passes raw HTML through.
		return v
	default:
		return html.EscapeString(v)
	}
}

// ValidColor reports whether v is an acceptable value for a color
// placeholder. Exported for field-update validation.
func ValidColor(v string) bool {
	return hexColorRe.MatchString(v)
}
