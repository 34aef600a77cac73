// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"platefront/internal/models"
	"platefront/internal/store"
)

func TestJobStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := store.NewJobStore(db)
	w := testWebsite(t, db)

	j, err := s.Create(w.ID, models.GenerationPreferences{Cuisine: "italian"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if j.Status != models.JobStatusQueued {
		t.Errorf("status: got %s, want queued", j.Status)
	}
	if j.Progress != 0 {
		t.Errorf("progress: got %d, want 0", j.Progress)
	}

	found, err := s.FindByID(j.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.ID != j.ID {
		t.Fatal("expected to find created job")
	}
	if found.Preferences.Cuisine != "italian" {
		t.Errorf("preferences lost: %+v", found.Preferences)
	}

	// Unknown ID returns nil, not an error.
	missing, err := s.FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID unknown: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown job id")
	}
}

func TestJobStoreSingleActiveJob(t *testing.T) {
	db := testDB(t)
	s := store.NewJobStore(db)
	w := testWebsite(t, db)

	first, err := s.Create(w.ID, models.GenerationPreferences{})
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}

	// Second create while the first is queued must conflict.
	_, err = s.Create(w.ID, models.GenerationPreferences{})
	if !errors.Is(err, store.ErrActiveJob) {
		t.Errorf("expected store.ErrActiveJob, got %v", err)
	}

	// Still conflicting after the job starts running.
	claimed, err := s.ClaimNextQueued()
	if err != nil {
		t.Fatalf("ClaimNextQueued: %v", err)
	}
	if claimed == nil || claimed.ID != first.ID {
		t.Fatal("expected to claim the queued job")
	}
	if _, err := s.Create(w.ID, models.GenerationPreferences{}); !errors.Is(err, store.ErrActiveJob) {
		t.Errorf("expected store.ErrActiveJob while running, got %v", err)
	}

	// Once terminal, a new job is allowed.
	if err := s.Fail(first.ID, "provider unreachable"); err != nil {
		t.Fatalf("Fail: %v", err)
	}
	if _, err := s.Create(w.ID, models.GenerationPreferences{}); err != nil {
		t.Errorf("expected create to succeed after terminal job, got %v", err)
	}
}

func TestJobStoreProgressMonotonic(t *testing.T) {
	db := testDB(t)
	s := store.NewJobStore(db)
	w := testWebsite(t, db)

	j, _ := s.Create(w.ID, models.GenerationPreferences{})
	claimed, _ := s.ClaimNextQueued()
	if claimed == nil {
		t.Fatal("claim failed")
	}

	if err := s.UpdateProgress(j.ID, 40, "composing layout"); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	// A lower report must not move progress backwards.
	if err := s.UpdateProgress(j.ID, 10, "gathering content"); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}

	found, _ := s.FindByID(j.ID)
	if found.Progress != 40 {
		t.Errorf("progress regressed: got %d, want 40", found.Progress)
	}

	if err := s.Complete(j.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	found, _ = s.FindByID(j.ID)
	if found.Progress != 100 {
		t.Errorf("completed progress: got %d, want 100", found.Progress)
	}
	if found.Status != models.JobStatusCompleted {
		t.Errorf("status: got %s, want completed", found.Status)
	}
}

func TestJobStoreTerminalImmutable(t *testing.T) {
	db := testDB(t)
	s := store.NewJobStore(db)
	w := testWebsite(t, db)

	j, _ := s.Create(w.ID, models.GenerationPreferences{})
	s.ClaimNextQueued()
	if err := s.Complete(j.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if err := s.Fail(j.ID, "late failure"); !errors.Is(err, store.ErrTerminalJob) {
		t.Errorf("expected store.ErrTerminalJob failing a completed job, got %v", err)
	}
	if err := s.Complete(j.ID); !errors.Is(err, store.ErrTerminalJob) {
		t.Errorf("expected store.ErrTerminalJob re-completing, got %v", err)
	}

	// Progress updates on terminal jobs are silently ignored.
	if err := s.UpdateProgress(j.ID, 5, "ghost"); err != nil {
		t.Fatalf("UpdateProgress after terminal: %v", err)
	}
	found, _ := s.FindByID(j.ID)
	if found.Progress != 100 || found.Status != models.JobStatusCompleted {
		t.Error("terminal job was mutated")
	}
}

func TestJobStoreFailRecordsDetail(t *testing.T) {
	db := testDB(t)
	s := store.NewJobStore(db)
	w := testWebsite(t, db)

	j, _ := s.Create(w.ID, models.GenerationPreferences{})
	s.ClaimNextQueued()
	if err := s.Fail(j.ID, "image provider timed out"); err != nil {
		t.Fatalf("Fail: %v", err)
	}

	found, _ := s.FindByID(j.ID)
	if found.Status != models.JobStatusFailed {
		t.Errorf("status: got %s, want failed", found.Status)
	}
	if found.ErrorDetail == nil || *found.ErrorDetail != "image provider timed out" {
		t.Errorf("error detail not retained: %v", found.ErrorDetail)
	}
}

func TestJobStoreFindActiveByWebsite(t *testing.T) {
	db := testDB(t)
	s := store.NewJobStore(db)
	w := testWebsite(t, db)

	active, err := s.FindActiveByWebsite(w.ID)
	if err != nil {
		t.Fatalf("FindActiveByWebsite: %v", err)
	}
	if active != nil {
		t.Error("expected no active job initially")
	}

	j, _ := s.Create(w.ID, models.GenerationPreferences{})
	active, _ = s.FindActiveByWebsite(w.ID)
	if active == nil || active.ID != j.ID {
		t.Error("expected the queued job to be active")
	}
}

func TestJobStoreClaimOrder(t *testing.T) {
	db := testDB(t)
	s := store.NewJobStore(db)

	// Two websites, two queued jobs; claim returns the older first.
	w1 := testWebsite(t, db)
	w2 := testWebsite(t, db)
	j1, _ := s.Create(w1.ID, models.GenerationPreferences{})
	j2, _ := s.Create(w2.ID, models.GenerationPreferences{})

	first, _ := s.ClaimNextQueued()
	second, _ := s.ClaimNextQueued()
	if first == nil || second == nil {
		t.Fatal("expected two claims")
	}
	if first.ID != j1.ID || second.ID != j2.ID {
		t.Errorf("claims out of order: %s then %s", first.ID, second.ID)
	}

	// Queue drained.
	third, err := s.ClaimNextQueued()
	if err != nil {
		t.Fatalf("ClaimNextQueued empty: %v", err)
	}
	if third != nil {
		t.Error("expected nil on empty queue")
	}

	s.Fail(j1.ID, "cleanup")
	s.Fail(j2.ID, "cleanup")
}
