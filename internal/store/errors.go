// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "errors"

var (
	// ErrActiveJob is returned when a generation job is requested for a
	// website that already has a queued or running job.
	ErrActiveJob = errors.New("an active generation job already exists for this website")

	// ErrWebsiteLocked is returned when a content write is attempted while
	// the website is in generating status.
	ErrWebsiteLocked = errors.New("website is locked by a running generation job")

	// ErrTerminalJob is returned when a mutation targets a job that has
	// already completed or failed.
	ErrTerminalJob = errors.New("generation job is already in a terminal state")

	// ErrStale is returned when an optimistic write loses a race: the row
	// changed after the caller read it. Callers reload and retry.
	ErrStale = errors.New("website was modified concurrently")
)
