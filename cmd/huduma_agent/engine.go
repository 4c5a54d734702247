package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/wanjiru/huduma-guide/internal/catalog"
	"github.com/wanjiru/huduma-guide/internal/config"
	"github.com/wanjiru/huduma-guide/internal/db"
	"github.com/wanjiru/huduma-guide/internal/guide"
	"github.com/wanjiru/huduma-guide/internal/llm"
	"github.com/wanjiru/huduma-guide/internal/narrative"
	"github.com/wanjiru/huduma-guide/internal/portal"
)

// buildEngine assembles an engine from the merged configuration. The
// narrative generator and database are optional: without an API key (the
// config file's api_key, falling back to GEMINI_API_KEY) the engine serves
// baseline guidance, and without a database URL nothing is persisted.
func buildEngine(ctx context.Context, cfg config.Config) (*guide.Engine, func(), error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var cleanups []func()
	cleanup := func() {
		for _, fn := range cleanups {
			fn()
		}
	}

	opts := guide.Options{Verbose: cfg.Verbose}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		cleanups = append(cleanups, func() { _ = client.Close() })
		opts.Generator = narrative.NewGenerator(client, cfg.Verbose)

		ttl := time.Duration(cfg.PortalTTLMin) * time.Minute
		opts.Portals = portal.NewSnapshotter(&portal.Config{
			TTL:        ttl,
			UseBrowser: cfg.UseBrowser,
			Verbose:    cfg.Verbose,
		})
	} else if cfg.Verbose {
		log.Println("No Gemini API key configured; narrative guidance disabled")
	}

	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL != "" {
		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			log.Printf("Warning: failed to connect to database: %v", err)
			log.Println("Continuing without persistence...")
		} else {
			cleanups = append(cleanups, database.Close)
			opts.Database = database
		}
	}

	return guide.NewEngine(cat, opts), cleanup, nil
}

// loadMergedConfig loads the optional JSON config file and merges flag
// values over it.
func loadMergedConfig(path string, flags config.Config) (config.Config, error) {
	if path == "" {
		return flags.MergeWithDefaults(config.Config{}), nil
	}

	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := fileCfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return flags.MergeWithDefaults(*fileCfg), nil
}
