// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTMLBasic(t *testing.T) {
	out, err := ToHTML("# Our Story\n\nFresh pasta, made **daily**.")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<strong>daily</strong>") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestToHTMLEscapesRawHTML(t *testing.T) {
	out, err := ToHTML("hello <script>alert(1)</script>")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("raw HTML passed through: %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("raw HTML not escaped: %q", out)
	}
}

func TestToHTMLDeterministic(t *testing.T) {
	src := "A *family* trattoria since 1998.\n\n- Pasta\n- Wine"
	first, err := ToHTML(src)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	second, err := ToHTML(src)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if first != second {
		t.Fatalf("output not deterministic:\n%q\n%q", first, second)
	}
}
