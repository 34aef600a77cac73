// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts Markdown copy into HTML using goldmark. It is
// used for long-form website copy (the "about" story produced by the AI
// content phase, or typed by the operator). Raw HTML embedded in the
// source is escaped, not passed through — rendered fragments go into rich
// template placeholders verbatim, so this is the injection barrier.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,          // tables, strikethrough, autolinks
		extension.Typographer,  // smart quotes and dashes
	),
)

// ToHTML converts Markdown source into an HTML fragment. The result is
// deterministic for a given source, so re-rendering a website stays
// byte-identical.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
