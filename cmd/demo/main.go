// Command demo drives the embedded data service the way a dashboard screen
// would: it logs in, reads KPIs, creates an order and reads it back. Useful
// for eyeballing the dispatcher surface without any UI attached.
package main

import (
	"encoding/json"
	"os"
	"time"

	"depot/internal/config"
	"depot/internal/infra"
	"depot/internal/model"
	"depot/internal/repository"
	"depot/internal/router"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	version := cfg.SchemaVersion
	if version == "" {
		version = model.SchemaVersion
	}
	slots := infra.NewSlotStore(cfg.DataDir, cfg.SlotPrefix, version)
	store := repository.New(slots)
	d := router.New(cfg, store, slots)

	log.Info().
		Str("data_dir", cfg.DataDir).
		Str("schema_version", version).
		Int("latency_ms", cfg.LatencyMs).
		Msg("depot data service ready")

	show(d, router.Create, "/auth/login", map[string]any{"username": "admin", "password": "admin123"})
	show(d, router.Read, "/dashboard/summary", nil)
	show(d, router.Read, "/clients/pricing-tiers", nil)
	show(d, router.Create, "/orders", map[string]any{
		"client_id": 1,
		"items": []any{
			map[string]any{"product_id": 2, "quantity": 10},
			map[string]any{"product_id": 3, "quantity": 5},
		},
	})
	show(d, router.Read, "/orders?status=pending", nil)
	show(d, router.Read, "/reports/financial", nil)
}

func show(d *router.Dispatcher, verb router.Verb, path string, body map[string]any) {
	result, err := d.Dispatch(verb, path, body)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("dispatch failed")
		return
	}
	out, _ := json.MarshalIndent(result, "", "  ")
	log.Info().Str("verb", string(verb)).Str("path", path).Msg(string(out))
}
