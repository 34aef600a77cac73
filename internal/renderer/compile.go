// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package renderer turns a template skeleton plus a customization record
// into concrete markup and style. Skeletons are compiled once into a typed
// segment list validated against the template's declared placeholder
// schema, so an unknown or misspelled token is a compile-time error rather
// than a raw token leaking into published HTML.
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"platefront/internal/models"
)

// Token syntax: {{name}} substitutes a scalar, {{#name}}...{{/name}}
// delimits the per-item fragment of a repeating group. Inside a section,
// bare tokens resolve against the group's declared fields.
var tokenNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

type segmentKind int

const (
	segLiteral segmentKind = iota
	segToken
	segSection
)

// segment is one node of a compiled skeleton.
type segment struct {
	kind  segmentKind
	text  string    // segLiteral: verbatim output
	name  string    // segToken/segSection: placeholder (or group field) name
	inner []segment // segSection: per-item fragment
}

// Compiled is a template whose markup and style skeletons have been parsed
// and schema-checked. Compiled values are immutable and safe for concurrent
// renders.
type Compiled struct {
	Template *models.Template

	markup []segment
	style  []segment
}

// Compile parses the template's markup and style skeletons and validates
// every token against the declared placeholder schema.
func Compile(t *models.Template) (*Compiled, error) {
	markup, err := parse(t.Markup, t, true)
	if err != nil {
		return nil, fmt.Errorf("compile %s markup: %w", t.ID, err)
	}

	// Style skeletons may only reference scalar placeholders — a repeating
	// group has no meaning inside a stylesheet.
	style, err := parse(t.Style, t, false)
	if err != nil {
		return nil, fmt.Errorf("compile %s style: %w", t.ID, err)
	}

	return &Compiled{Template: t, markup: markup, style: style}, nil
}

// parse scans a skeleton into segments. allowSections permits repeating
// group sections (markup only).
func parse(src string, t *models.Template, allowSections bool) ([]segment, error) {
	segs, rest, err := parseUntil(src, t, nil, allowSections, "")
	if err != nil {
		return nil, err
	}
	if rest != "" {
		// Only a stray close tag leaves input unconsumed at top level.
		return nil, fmt.Errorf("unexpected close tag near %q", truncate(rest, 30))
	}
	return segs, nil
}

// parseUntil consumes segments until the close tag for section (or end of
// input when section is empty). group is non-nil inside a section body and
// scopes bare tokens to the group's fields.
func parseUntil(src string, t *models.Template, group *models.Placeholder, allowSections bool, section string) ([]segment, string, error) {
	var segs []segment

	for {
		open := strings.Index(src, "{{")
		if open < 0 {
			if section != "" {
				return nil, "", fmt.Errorf("section %q is never closed", section)
			}
			if src != "" {
				segs = append(segs, segment{kind: segLiteral, text: src})
			}
			return segs, "", nil
		}

		if open > 0 {
			segs = append(segs, segment{kind: segLiteral, text: src[:open]})
		}
		src = src[open+2:]

		end := strings.Index(src, "}}")
		if end < 0 {
			return nil, "", fmt.Errorf("unterminated token near %q", truncate(src, 30))
		}
		tag := strings.TrimSpace(src[:end])
		src = src[end+2:]

		switch {
		case strings.HasPrefix(tag, "/"):
			name := tag[1:]
			if name != section {
				return nil, "", fmt.Errorf("close tag %q does not match open section %q", name, section)
			}
			return segs, src, nil

		case strings.HasPrefix(tag, "#"):
			name := tag[1:]
			if !allowSections {
				return nil, "", fmt.Errorf("section %q not allowed here", name)
			}
			if group != nil {
				return nil, "", fmt.Errorf("section %q nested inside section %q", name, section)
			}
			ph := t.Placeholder(name)
			if ph == nil || ph.Kind != models.PlaceholderGroup {
				return nil, "", fmt.Errorf("section %q does not name a declared group placeholder", name)
			}
			inner, rest, err := parseUntil(src, t, ph, false, name)
			if err != nil {
				return nil, "", err
			}
			src = rest
			segs = append(segs, segment{kind: segSection, name: name, inner: inner})

		default:
			if !tokenNameRe.MatchString(tag) {
				return nil, "", fmt.Errorf("invalid token name %q", tag)
			}
			if group != nil {
				if group.Field(tag) == nil {
					return nil, "", fmt.Errorf("token %q is not a declared field of group %q", tag, group.Name)
				}
			} else {
				ph := t.Placeholder(tag)
				if ph == nil {
					return nil, "", fmt.Errorf("token %q is not a declared placeholder", tag)
				}
				if !ph.Scalar() {
					return nil, "", fmt.Errorf("group placeholder %q used as a scalar token", tag)
				}
			}
			segs = append(segs, segment{kind: segToken, name: tag})
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
