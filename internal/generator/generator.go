// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator runs the asynchronous website generation pipeline.
// Jobs are queued in PostgreSQL and drained by a single background worker
// per process; the queue itself serialises work, so running several
// processes needs no extra coordination (claiming uses SKIP LOCKED).
//
// A job moves through three phases — gathering content, composing layout,
// finalizing assets — each reported through the job row so clients can
// poll progress. Transient phase failures are retried with exponential
// backoff before the job is failed.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"platefront/internal/ai"
	"platefront/internal/cache"
	"platefront/internal/markdown"
	"platefront/internal/models"
	"platefront/internal/registry"
	"platefront/internal/renderer"
	"platefront/internal/storage"
	"platefront/internal/store"
)

// Progress percentages reported at the start of each phase. Completion
// pins 100 in the store.
const (
	progressContent = 10
	progressLayout  = 45
	progressAssets  = 80
)

// Orchestrator owns the generation queue: it enqueues jobs, runs the
// background worker, and exposes progress lookups.
type Orchestrator struct {
	jobs       *store.JobStore
	websites   *store.WebsiteStore
	mediaStore *store.MediaStore
	variants   *store.VariantStore
	registry   *registry.Registry
	copywriter *ai.Copywriter
	storage    *storage.Client  // nil when object storage is unconfigured
	siteCache  *cache.SiteCache // nil when Valkey is unconfigured

	sweepInterval time.Duration
	phaseTimeout  time.Duration

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
}

// New creates an orchestrator. Call Start to launch the worker.
func New(
	jobs *store.JobStore,
	websites *store.WebsiteStore,
	mediaStore *store.MediaStore,
	variants *store.VariantStore,
	reg *registry.Registry,
	copywriter *ai.Copywriter,
	storageClient *storage.Client,
	siteCache *cache.SiteCache,
	sweepInterval, phaseTimeout time.Duration,
) *Orchestrator {
	return &Orchestrator{
		jobs:          jobs,
		websites:      websites,
		mediaStore:    mediaStore,
		variants:      variants,
		registry:      reg,
		copywriter:    copywriter,
		storage:       storageClient,
		siteCache:     siteCache,
		sweepInterval: sweepInterval,
		phaseTimeout:  phaseTimeout,
		wake:          make(chan struct{}, 1),
		quit:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start launches the background worker goroutine.
func (o *Orchestrator) Start() {
	go o.worker()
}

// Stop signals the worker to exit and waits for the in-flight job (if any)
// to finish its current phase writes.
func (o *Orchestrator) Stop() {
	close(o.quit)
	<-o.done
}

// Enqueue creates a queued job for the website and moves the website to
// generating. Returns store.ErrActiveJob when a queued or running job
// already exists for this website — the single-active-job rule is enforced
// atomically by the database.
func (o *Orchestrator) Enqueue(website *models.Website, prefs models.GenerationPreferences) (*models.GenerationJob, error) {
	job, err := o.jobs.Create(website.ID, prefs)
	if err != nil {
		return nil, err
	}

	if err := o.websites.UpdateStatus(website.ID, models.WebsiteStatusGenerating); err != nil {
		// The job row exists; the worker will still pick it up and set the
		// status again, so log and continue.
		slog.Error("enqueue: mark website generating", "website", website.ID, "error", err)
	}

	// Nudge the worker; the buffered channel makes this a no-op when a
	// wake-up is already pending, and the sweep ticker is the backstop.
	select {
	case o.wake <- struct{}{}:
	default:
	}

	return job, nil
}

// Progress returns the current job row for polling. Nil when the job does
// not exist.
func (o *Orchestrator) Progress(jobID uuid.UUID) (*models.GenerationJob, error) {
	return o.jobs.FindByID(jobID)
}

// worker drains the queue whenever woken, and sweeps on an interval to
// catch jobs enqueued by other processes or left queued across a restart.
func (o *Orchestrator) worker() {
	defer close(o.done)

	ticker := time.NewTicker(o.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-o.quit:
			return
		case <-o.wake:
		case <-ticker.C:
		}
		o.drain()
	}
}

// drain claims and runs queued jobs until the queue is empty or shutdown
// is requested.
func (o *Orchestrator) drain() {
	for {
		select {
		case <-o.quit:
			return
		default:
		}

		job, err := o.jobs.ClaimNextQueued()
		if err != nil {
			slog.Error("claim queued job", "error", err)
			return
		}
		if job == nil {
			return
		}
		o.run(job)
	}
}

// run executes one claimed job through all phases.
func (o *Orchestrator) run(job *models.GenerationJob) {
	log := slog.With("job", job.ID, "website", job.WebsiteID)
	started := time.Now()

	website, err := o.websites.FindByID(job.WebsiteID)
	if err != nil {
		o.fail(job, log, fmt.Errorf("load website: %w", err))
		return
	}
	if website == nil {
		o.fail(job, log, fmt.Errorf("website no longer exists"))
		return
	}

	// Jobs claimed after a restart may belong to a website that was never
	// marked generating; make the lock visible either way.
	if website.Status != models.WebsiteStatusGenerating {
		if err := o.websites.UpdateStatus(website.ID, models.WebsiteStatusGenerating); err != nil {
			o.fail(job, log, fmt.Errorf("mark website generating: %w", err))
			return
		}
	}

	// Phase 1: gather content.
	o.report(job, progressContent, "gathering content")
	var deck *ai.CopyDeck
	err = o.phase(func(ctx context.Context) error {
		var perr error
		deck, perr = o.copywriter.Compose(ctx, website.Name, job.Preferences)
		return perr
	})
	if err != nil {
		o.fail(job, log, fmt.Errorf("gathering content: %w", err))
		return
	}

	aboutHTML, err := markdown.ToHTML(deck.About)
	if err != nil {
		o.fail(job, log, fmt.Errorf("gathering content: render copy: %w", err))
		return
	}

	// Phase 2: compose layout.
	o.report(job, progressLayout, "composing layout")
	var compiled *renderer.Compiled
	err = o.phase(func(ctx context.Context) error {
		var perr error
		compiled, perr = o.registry.Get(website.TemplateID)
		return perr
	})
	if err != nil {
		o.fail(job, log, fmt.Errorf("composing layout: %w", err))
		return
	}

	customization := applyDeck(website.Customization, compiled.Template, deck, aboutHTML)

	// Phase 3: finalize assets.
	o.report(job, progressAssets, "finalizing assets")
	heroImageID := o.attachHero(website, compiled.Template, customization, log)

	result := renderer.Render(compiled, customization)

	if err := o.websites.SaveGenerated(website.ID, customization, result.Markup, result.Style, heroImageID); err != nil {
		o.fail(job, log, fmt.Errorf("finalizing assets: %w", err))
		return
	}

	if err := o.jobs.Complete(job.ID); err != nil {
		log.Error("complete job", "error", err)
		return
	}
	o.invalidate(website.Slug)
	log.Info("website generated", "duration", time.Since(started).Round(time.Millisecond))
}

// phase runs one unit of retryable work. Each attempt gets its own timeout;
// attempts back off exponentially from 500ms, giving up after three retries.
func (o *Orchestrator) phase(work func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	return retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, o.phaseTimeout)
		defer cancel()
		if err := work(attemptCtx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

// report records phase progress; a lost update only delays what pollers
// see, so errors are logged and the pipeline continues.
func (o *Orchestrator) report(job *models.GenerationJob, progress int, operation string) {
	if err := o.jobs.UpdateProgress(job.ID, progress, operation); err != nil {
		slog.Error("update job progress", "job", job.ID, "error", err)
	}
}

// fail moves the job and its website to failed. The job keeps the phase
// error for the polling client; the website unlocks for further edits or
// another generation attempt.
func (o *Orchestrator) fail(job *models.GenerationJob, log *slog.Logger, cause error) {
	log.Error("generation failed", "error", cause)

	if err := o.jobs.Fail(job.ID, cause.Error()); err != nil {
		log.Error("record job failure", "error", err)
	}
	if err := o.websites.UpdateStatus(job.WebsiteID, models.WebsiteStatusFailed); err != nil {
		log.Error("mark website failed", "error", err)
	}
}

// invalidate drops the cached public page so visitors see the regenerated
// site immediately instead of after the cache TTL.
func (o *Orchestrator) invalidate(slug string) {
	if o.siteCache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	o.siteCache.Invalidate(ctx, slug)
}

// applyDeck folds generated copy into the customization. Values the
// operator already set win over generated ones; generation only fills
// gaps, so regenerating never clobbers manual edits.
func applyDeck(c models.Customization, t *models.Template, deck *ai.CopyDeck, aboutHTML string) models.Customization {
	out := models.Customization{}
	for k, v := range c {
		out[k] = v
	}

	setIfBlank := func(name, value string) {
		if t.Placeholder(name) == nil {
			return
		}
		if existing, ok := out.Scalar(name); ok && existing != "" {
			return
		}
		out[name] = value
	}

	setIfBlank("tagline", deck.Tagline)
	setIfBlank("about", aboutHTML)

	if ph := t.Placeholder("menu_items"); ph != nil && ph.Kind == models.PlaceholderGroup {
		if existing, ok := out.Group("menu_items"); !ok || len(existing) == 0 {
			items := make([]models.GroupItem, 0, len(deck.MenuItems))
			for _, mi := range deck.MenuItems {
				items = append(items, models.GroupItem{
					"name":        mi.Name,
					"description": mi.Description,
					"price":       mi.Price,
				})
			}
			out["menu_items"] = items
		}
	}

	return out
}

// attachHero resolves the operator's most recent hero upload into the
// hero_image_url placeholder, preferring the largest derived variant.
// Returns the media ID to record on the website, or nil when no hero
// image (or no object storage) is available.
func (o *Orchestrator) attachHero(website *models.Website, t *models.Template, c models.Customization, log *slog.Logger) *uuid.UUID {
	if o.storage == nil || t.Placeholder("hero_image_url") == nil {
		return website.HeroImageID
	}
	if existing, ok := c.Scalar("hero_image_url"); ok && existing != "" {
		return website.HeroImageID
	}

	hero := o.heroMedia(website)
	if hero == nil {
		return website.HeroImageID
	}

	url := o.storage.FileURL(hero.S3Key)
	if variants, err := o.variants.FindByMediaID(hero.ID); err == nil && len(variants) > 0 {
		// FindByMediaID orders by width; the last entry is the largest.
		url = o.storage.FileURL(variants[len(variants)-1].S3Key)
	} else if err != nil {
		log.Warn("hero variant lookup failed, using original", "media", hero.ID, "error", err)
	}

	c["hero_image_url"] = url
	id := hero.ID
	return &id
}

// heroMedia returns the explicitly attached hero image when set, falling
// back to the owner's most recent hero-type upload.
func (o *Orchestrator) heroMedia(website *models.Website) *models.Media {
	if website.HeroImageID != nil {
		m, err := o.mediaStore.FindByID(*website.HeroImageID)
		if err == nil && m != nil {
			return m
		}
	}

	list, err := o.mediaStore.ListByOwner(website.OwnerID, models.ImageTypeHero, 1, 0)
	if err != nil || len(list) == 0 {
		return nil
	}
	return &list[0]
}
