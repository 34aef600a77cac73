// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is the state of an asynchronous generation job.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Terminal reports whether no further transition can occur from this status.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Active reports whether the job still occupies its website's single
// active-job slot.
func (s JobStatus) Active() bool {
	return s == JobStatusQueued || s == JobStatusRunning
}

// GenerationPreferences steer the content phase of a generation job.
// All fields are optional; empty values fall back to template defaults.
type GenerationPreferences struct {
	Cuisine string `json:"cuisine,omitempty"`
	Tone    string `json:"tone,omitempty"`
	Palette string `json:"palette,omitempty"`
}

// GenerationJob tracks one asynchronous run that turns a template plus
// AI-produced copy into a ready website. Jobs are mutated only by the
// worker executing them, are immutable once terminal, and are retained
// after completion for audit.
type GenerationJob struct {
	ID               uuid.UUID             `json:"id"`
	WebsiteID        uuid.UUID             `json:"website_id"`
	Status           JobStatus             `json:"status"`
	Progress         int                   `json:"progress"`
	CurrentOperation string                `json:"current_operation"`
	Preferences      GenerationPreferences `json:"preferences"`
	ErrorDetail      *string               `json:"error_detail,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}
