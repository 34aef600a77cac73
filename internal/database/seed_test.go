// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"testing"

	"platefront/internal/renderer"
)

// Every built-in template must compile against its own placeholder schema,
// otherwise website creation would fail at runtime for a shipped template.
func TestBuiltinTemplatesCompile(t *testing.T) {
	if len(builtinTemplates) == 0 {
		t.Fatal("no built-in templates defined")
	}

	seen := map[string]bool{}
	for i := range builtinTemplates {
		tmpl := &builtinTemplates[i]
		if seen[tmpl.ID] {
			t.Errorf("duplicate template ID %q", tmpl.ID)
		}
		seen[tmpl.ID] = true

		if _, err := renderer.Compile(tmpl); err != nil {
			t.Errorf("template %s does not compile: %v", tmpl.ID, err)
		}
	}

	for _, required := range []string{"casual-dining-1", "bistro-elegant-1", "fast-casual-1"} {
		if !seen[required] {
			t.Errorf("missing built-in template %q", required)
		}
	}
}
