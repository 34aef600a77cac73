// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store_test

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"platefront/internal/database"
	"platefront/internal/models"
	"platefront/internal/store"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "platefront")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "platefront")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testTemplateID inserts a throwaway template and returns its ID. The
// template is removed when the test finishes, cascading nothing (websites
// referencing it must be cleaned up first by their own cleanups).
func testTemplateID(t *testing.T, db *sql.DB) string {
	t.Helper()

	id := "test-tmpl-" + uuid.NewString()[:8]
	s := store.NewTemplateStore(db)
	_, err := s.Create(&models.Template{
		ID:       id,
		Name:     "Test Template",
		Category: "test",
		Markup:   `<h1>{{restaurant_name}}</h1>`,
		Style:    `h1 { color: {{accent}}; }`,
		Placeholders: []models.Placeholder{
			{Name: "restaurant_name", Kind: models.PlaceholderText, Default: "Your Restaurant"},
			{Name: "accent", Kind: models.PlaceholderColor, Default: "#333333"},
		},
	})
	if err != nil {
		t.Fatalf("create test template: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM templates WHERE id = $1", id)
	})
	return id
}

// testWebsite inserts a throwaway website bound to a fresh test template.
func testWebsite(t *testing.T, db *sql.DB) *models.Website {
	t.Helper()

	tmplID := testTemplateID(t, db)
	s := store.NewWebsiteStore(db)
	w, err := s.Create(&models.Website{
		OwnerID:       uuid.New(),
		Name:          "Test Site",
		Slug:          "test-site-" + uuid.NewString()[:8],
		TemplateID:    tmplID,
		Customization: models.Customization{},
		Status:        models.WebsiteStatusDraft,
	})
	if err != nil {
		t.Fatalf("create test website: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM websites WHERE id = $1", w.ID)
	})
	return w
}
