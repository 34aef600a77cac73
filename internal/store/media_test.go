// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store_test

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"platefront/internal/models"
	"platefront/internal/store"
)

func testMedia(t *testing.T, db *sql.DB, owner uuid.UUID) *models.Media {
	t.Helper()
	s := store.NewMediaStore(db)
	m, err := s.Create(&models.Media{
		OwnerID:      owner,
		Type:         models.ImageTypeHero,
		Filename:     uuid.NewString() + ".jpg",
		OriginalName: "kitchen.jpg",
		ContentType:  "image/jpeg",
		SizeBytes:    2048,
		Bucket:       "platefront-media",
		S3Key:        "media/2026/08/" + uuid.NewString() + ".jpg",
	})
	if err != nil {
		t.Fatalf("create media: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM media WHERE id = $1", m.ID) })
	return m
}

func TestMediaStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := store.NewMediaStore(db)
	owner := uuid.New()

	m := testMedia(t, db, owner)

	found, err := s.FindByID(m.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.Type != models.ImageTypeHero {
		t.Errorf("unexpected media: %+v", found)
	}

	missing, _ := s.FindByID(uuid.New())
	if missing != nil {
		t.Error("expected nil for unknown media id")
	}
}

func TestMediaStoreDeleteCascadesVariants(t *testing.T) {
	db := testDB(t)
	media := store.NewMediaStore(db)
	variants := store.NewVariantStore(db)
	owner := uuid.New()

	m := testMedia(t, db, owner)
	err := variants.CreateBatch([]models.MediaVariant{
		{MediaID: m.ID, Name: "thumb", Width: 320, Height: 200, S3Key: m.S3Key + "_thumb.jpg", ContentType: "image/jpeg", SizeBytes: 100},
		{MediaID: m.ID, Name: "sm", Width: 640, Height: 400, S3Key: m.S3Key + "_sm.jpg", ContentType: "image/jpeg", SizeBytes: 200},
	})
	if err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	deleted, err := media.Delete(m.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted == nil {
		t.Fatal("expected deleted row")
	}

	remaining, err := variants.FindByMediaID(m.ID)
	if err != nil {
		t.Fatalf("FindByMediaID: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("variants survived cascade: %d", len(remaining))
	}
}

func TestVariantStoreCreateBatchIdempotent(t *testing.T) {
	db := testDB(t)
	variants := store.NewVariantStore(db)
	m := testMedia(t, db, uuid.New())

	batch := []models.MediaVariant{
		{MediaID: m.ID, Name: "thumb", Width: 320, Height: 200, S3Key: m.S3Key + "_thumb.jpg", ContentType: "image/jpeg", SizeBytes: 100},
	}
	if err := variants.CreateBatch(batch); err != nil {
		t.Fatalf("first CreateBatch: %v", err)
	}
	// Re-deriving the same variant set is a no-op.
	if err := variants.CreateBatch(batch); err != nil {
		t.Fatalf("second CreateBatch: %v", err)
	}

	rows, _ := variants.FindByMediaID(m.ID)
	if len(rows) != 1 {
		t.Errorf("expected 1 variant, got %d", len(rows))
	}
}

func TestMediaStoreListByOwnerFiltersType(t *testing.T) {
	db := testDB(t)
	s := store.NewMediaStore(db)
	owner := uuid.New()
	testMedia(t, db, owner)

	heroes, err := s.ListByOwner(owner, models.ImageTypeHero, 10, 0)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(heroes) != 1 {
		t.Errorf("expected 1 hero image, got %d", len(heroes))
	}

	logos, _ := s.ListByOwner(owner, models.ImageTypeLogo, 10, 0)
	if len(logos) != 0 {
		t.Error("type filter leaked")
	}
}
