// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/animerec/docs" // swagger spec for /swagger/*
	"github.com/tomtom215/animerec/internal/api"
	"github.com/tomtom215/animerec/internal/catalog"
	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/index"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/supervisor"
	"github.com/tomtom215/animerec/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	start := time.Now()

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("catalog_source", cfg.Catalog.Source).
		Str("catalog_path", cfg.Catalog.Path).
		Msg("Starting Animerec")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rec, err := buildRecommender(ctx, cfg)
	if err != nil {
		return err
	}

	handler := api.NewHandler(rec, &recommend.Config{
		DefaultTopN: cfg.Recommend.DefaultTopN,
		MaxTopN:     cfg.Recommend.MaxTopN,
	}, version)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(&cfg.Security))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * time.Minute,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + time.Second,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddSystemService(services.NewUptimeService(start, 15*time.Second))
	tree.AddAPIService(
		services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout).
			OnDrain(func() {
				logging.Info().Msg("Draining HTTP server")
				handler.SetReady(false)
			}),
	)

	logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")

	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Dur("uptime", time.Since(start)).Msg("Application stopped gracefully")
	return nil
}

// buildRecommender loads the catalog and builds the similarity index.
func buildRecommender(ctx context.Context, cfg *config.Config) (*recommend.Recommender, error) {
	src, err := catalog.New(&cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("configure catalog: %w", err)
	}

	items, err := catalog.Load(ctx, src)
	if err != nil {
		return nil, err
	}

	opts := index.DefaultOptions()
	if len(cfg.Index.ExtraStopWords) > 0 {
		opts.StopWords = append(append([]string{}, index.EnglishStopWords...), cfg.Index.ExtraStopWords...)
	}
	if cfg.Index.MinTokenLength > 0 {
		opts.MinTokenLength = cfg.Index.MinTokenLength
	}
	if cfg.Index.Workers > 0 {
		opts.Workers = cfg.Index.Workers
	}

	idx, err := index.Build(ctx, items, opts)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	stats := idx.Stats()
	metrics.RecordIndexBuild(metrics.IndexSnapshot{
		Items:         stats.Items,
		Terms:         stats.Terms,
		ZeroVectors:   stats.ZeroVectors,
		DuplicateRows: stats.DuplicateRows,
		BuildDuration: stats.BuildDuration,
		BuiltAt:       stats.BuiltAt,
	})
	logging.Info().
		Int("items", stats.Items).
		Int("terms", stats.Terms).
		Int("zero_vectors", stats.ZeroVectors).
		Int("duplicate_rows", stats.DuplicateRows).
		Dur("duration", stats.BuildDuration).
		Msg("Similarity index built")

	if stats.DuplicateRows > 0 {
		logging.Warn().
			Int("duplicate_rows", stats.DuplicateRows).
			Msg("Catalog has duplicate names; lookups resolve to the first row")
	}

	rec, err := recommend.New(idx, logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("create recommender: %w", err)
	}
	return rec, nil
}
