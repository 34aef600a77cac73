// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"platefront/internal/models"
)

// JobStore handles all generation-job database operations. Jobs are
// append-only from the API's perspective: only the worker mutates them,
// and terminal rows are immutable.
type JobStore struct {
	db *sql.DB
}

// NewJobStore creates a new JobStore with the given database connection.
func NewJobStore(db *sql.DB) *JobStore {
	return &JobStore{db: db}
}

const jobColumns = `id, website_id, status, progress, current_operation,
	preferences, error_detail, created_at, updated_at`

func scanJob(scanner interface{ Scan(...any) error }) (*models.GenerationJob, error) {
	var j models.GenerationJob
	var preferences []byte
	err := scanner.Scan(
		&j.ID, &j.WebsiteID, &j.Status, &j.Progress, &j.CurrentOperation,
		&preferences, &j.ErrorDetail, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(preferences, &j.Preferences); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	return &j, nil
}

// uniqueViolation is the PostgreSQL error code raised when an insert
// breaks a unique index — here, the partial index that allows at most one
// queued/running job per website.
const uniqueViolation = "23505"

// Create inserts a new job in queued status. Returns ErrActiveJob when the
// website already has an active job, enforced by the partial unique index
// so the check-and-insert is a single atomic statement.
func (s *JobStore) Create(websiteID uuid.UUID, prefs models.GenerationPreferences) (*models.GenerationJob, error) {
	preferences, err := json.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("encode preferences: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO generation_jobs (website_id, status, preferences)
		VALUES ($1, $2, $3)
		RETURNING `+jobColumns,
		websiteID, models.JobStatusQueued, preferences,
	)
	j, err := scanJob(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrActiveJob
		}
		return nil, fmt.Errorf("create job: %w", err)
	}
	return j, nil
}

// FindByID retrieves a single job by its UUID. Returns nil if not found.
// This backs the progress-polling endpoint and must stay cheap and
// side-effect-free.
func (s *JobStore) FindByID(id uuid.UUID) (*models.GenerationJob, error) {
	row := s.db.QueryRow(`SELECT `+jobColumns+` FROM generation_jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find job by id: %w", err)
	}
	return j, nil
}

// ClaimNextQueued atomically claims the oldest queued job, moving it to
// running. Returns nil when the queue is empty. SKIP LOCKED keeps multiple
// workers (or a worker racing a sweep) from claiming the same row.
func (s *JobStore) ClaimNextQueued() (*models.GenerationJob, error) {
	row := s.db.QueryRow(`
		UPDATE generation_jobs SET status = $1, updated_at = NOW()
		WHERE id = (
			SELECT id FROM generation_jobs
			WHERE status = $2
			ORDER BY created_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING `+jobColumns,
		models.JobStatusRunning, models.JobStatusQueued,
	)
	j, err := scanJob(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("claim queued job: %w", err)
	}
	return j, nil
}

// UpdateProgress records phase progress for a running job. GREATEST keeps
// the stored percentage monotonically non-decreasing even if phases report
// out of order.
func (s *JobStore) UpdateProgress(id uuid.UUID, progress int, operation string) error {
	_, err := s.db.Exec(`
		UPDATE generation_jobs SET
			progress = GREATEST(progress, $1),
			current_operation = $2,
			updated_at = NOW()
		WHERE id = $3 AND status = $4
	`, progress, operation, id, models.JobStatusRunning)
	if err != nil {
		return fmt.Errorf("update job progress: %w", err)
	}
	return nil
}

// Complete moves a running job to completed with progress pinned at 100.
// Terminal rows are left untouched.
func (s *JobStore) Complete(id uuid.UUID) error {
	result, err := s.db.Exec(`
		UPDATE generation_jobs SET
			status = $1, progress = 100, current_operation = 'done', updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, models.JobStatusCompleted, id, models.JobStatusRunning)
	if err != nil {
		return fmt.Errorf("complete job: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrTerminalJob
	}
	return nil
}

// Fail moves a job to failed and records the error detail. Progress is
// left where the last phase reported it; it never reaches 100 on failure.
func (s *JobStore) Fail(id uuid.UUID, detail string) error {
	result, err := s.db.Exec(`
		UPDATE generation_jobs SET
			status = $1, error_detail = $2, updated_at = NOW()
		WHERE id = $3 AND status IN ($4, $5)
	`, models.JobStatusFailed, detail, id, models.JobStatusQueued, models.JobStatusRunning)
	if err != nil {
		return fmt.Errorf("fail job: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrTerminalJob
	}
	return nil
}

// FindActiveByWebsite returns the queued or running job for a website, or
// nil when none exists.
func (s *JobStore) FindActiveByWebsite(websiteID uuid.UUID) (*models.GenerationJob, error) {
	row := s.db.QueryRow(`
		SELECT `+jobColumns+` FROM generation_jobs
		WHERE website_id = $1 AND status IN ($2, $3)
		LIMIT 1
	`, websiteID, models.JobStatusQueued, models.JobStatusRunning)
	j, err := scanJob(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active job: %w", err)
	}
	return j, nil
}

// ListByWebsite returns a website's job history, newest first. Terminal
// jobs are retained for audit.
func (s *JobStore) ListByWebsite(websiteID uuid.UUID) ([]models.GenerationJob, error) {
	rows, err := s.db.Query(`
		SELECT `+jobColumns+` FROM generation_jobs
		WHERE website_id = $1
		ORDER BY created_at DESC
	`, websiteID)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.GenerationJob
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}
