// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// WebsiteStatus is the lifecycle state of an operator's website. It is the
// single source of truth for which operations are currently valid.
type WebsiteStatus string

const (
	WebsiteStatusDraft      WebsiteStatus = "draft"
	WebsiteStatusGenerating WebsiteStatus = "generating"
	WebsiteStatusReady      WebsiteStatus = "ready"
	WebsiteStatusPublished  WebsiteStatus = "published"
	WebsiteStatusFailed     WebsiteStatus = "failed"
)

// Editable reports whether inline content edits are accepted in this state.
// A generating website rejects edits so a running job cannot race field
// updates it is about to overwrite.
func (s WebsiteStatus) Editable() bool {
	return s != WebsiteStatusGenerating
}

// Website is an operator's restaurant site: the chosen template, the
// customization values filled into it, and the generated markup/style pair
// produced by the renderer.
type Website struct {
	ID            uuid.UUID     `json:"id"`
	OwnerID       uuid.UUID     `json:"owner_id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	TemplateID    string        `json:"template_id"`
	Customization Customization `json:"customization"`
	Markup        string        `json:"-"`
	Style         string        `json:"-"`
	Status        WebsiteStatus `json:"status"`
	HeroImageID   *uuid.UUID    `json:"hero_image_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
