// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the PlateFront server. It loads
// configuration, connects to services, starts the generation worker and the
// HTTP server, and shuts both down gracefully.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"platefront/internal/ai"
	"platefront/internal/cache"
	"platefront/internal/config"
	"platefront/internal/database"
	"platefront/internal/generator"
	"platefront/internal/handlers"
	"platefront/internal/middleware"
	"platefront/internal/registry"
	"platefront/internal/router"
	"platefront/internal/session"
	"platefront/internal/storage"
	"platefront/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	// PostgreSQL: connect, migrate, seed the built-in templates. Seeding is
	// idempotent and runs in every environment; templates are platform data.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	if err := database.Seed(db); err != nil {
		slog.Error("failed to seed templates", "error", err)
		os.Exit(1)
	}

	// Valkey backs sessions and the public page cache.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	sessionStore := session.NewStore(valkeyClient)
	siteCache := cache.NewSiteCache(valkeyClient, cache.DefaultSiteTTL)

	// Data stores.
	websiteStore := store.NewWebsiteStore(db)
	jobStore := store.NewJobStore(db)
	templateStore := store.NewTemplateStore(db)
	mediaStore := store.NewMediaStore(db)
	variantStore := store.NewVariantStore(db)

	templateRegistry := registry.New(templateStore)

	// S3-compatible object storage (optional; media uploads and hero
	// attachment are disabled without it).
	var storageClient *storage.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	// AI provider registry. The local provider is always available, so a
	// deployment without API keys still generates (canned) copy.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"openai":  {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
		"mistral": {APIKey: cfg.MistralKey, Model: cfg.MistralModel, BaseURL: cfg.MistralBaseURL},
	})
	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	// Generation worker.
	orchestrator := generator.New(
		jobStore, websiteStore, mediaStore, variantStore, templateRegistry,
		ai.NewCopywriter(aiRegistry), storageClient, siteCache,
		cfg.JobSweepInterval, cfg.PhaseTimeout,
	)
	orchestrator.Start()
	defer orchestrator.Stop()

	// HTTP surface.
	api := handlers.NewAPI(
		websiteStore, jobStore, mediaStore, variantStore, templateRegistry,
		orchestrator, storageClient, siteCache, cfg.MaxUploadBytes,
	)
	public := handlers.NewPublic(websiteStore, siteCache)

	rateLimiter := middleware.NewRateLimiter(300, time.Minute)
	defer rateLimiter.Stop()

	r := router.New(sessionStore, rateLimiter, api, public)

	// WriteTimeout must accommodate media uploads and synchronous renders;
	// generation itself is asynchronous and never holds a request open.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
