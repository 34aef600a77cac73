// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// site.go provides a Valkey-backed full-page HTML cache for public sites.
// When a visitor loads a generated site, the assembled HTML document is
// stored in Valkey keyed by slug, so subsequent requests skip the DB read
// and document assembly entirely. Edits and regeneration invalidate the
// slug; the TTL bounds staleness for anything that slips through.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// siteKeyPrefix namespaces cached site documents in Valkey.
	siteKeyPrefix = "site:"

	// DefaultSiteTTL is how long a rendered site stays cached.
	DefaultSiteTTL = 5 * time.Minute
)

// SiteCache manages full-page HTML caching for published sites.
type SiteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSiteCache creates a site cache backed by the given Valkey client.
func NewSiteCache(client *redis.Client, ttl time.Duration) *SiteCache {
	if ttl == 0 {
		ttl = DefaultSiteTTL
	}
	return &SiteCache{client: client, ttl: ttl}
}

// Get retrieves the cached HTML document for a slug. Returns false on miss.
func (sc *SiteCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	val, err := sc.client.Get(ctx, siteKeyPrefix+slug).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("site cache get error", "slug", slug, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores the rendered HTML document for a slug with the configured TTL.
func (sc *SiteCache) Set(ctx context.Context, slug string, html []byte) {
	if err := sc.client.Set(ctx, siteKeyPrefix+slug, html, sc.ttl).Err(); err != nil {
		slog.Warn("site cache set error", "slug", slug, "error", err)
	}
}

// Invalidate removes a single site from the cache. Called after every
// content save and completed generation so visitors never see stale pages
// longer than one in-flight request.
func (sc *SiteCache) Invalidate(ctx context.Context, slug string) {
	if err := sc.client.Del(ctx, siteKeyPrefix+slug).Err(); err != nil {
		slog.Warn("site cache invalidate error", "slug", slug, "error", err)
	}
}

// InvalidateAll removes every cached site by scanning for the prefix.
// Used by operational tooling after template-affecting deploys.
func (sc *SiteCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := sc.client.Scan(ctx, cursor, siteKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("site cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := sc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("site cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("site cache fully cleared", "deleted", deleted)
	}
}
