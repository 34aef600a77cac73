// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"platefront/internal/store"
)

// Seed installs the built-in templates. Existing rows are left untouched,
// so running Seed on every startup is safe.
func Seed(db *sql.DB) error {
	templates := store.NewTemplateStore(db)

	inserted := 0
	for i := range builtinTemplates {
		ok, err := templates.Create(&builtinTemplates[i])
		if err != nil {
			return fmt.Errorf("seed template %s: %w", builtinTemplates[i].ID, err)
		}
		if ok {
			inserted++
		}
	}

	if inserted > 0 {
		slog.Info("seeded built-in templates", "inserted", inserted)
	}
	return nil
}
