package commands

import (
	"context"
	"fmt"
	"net/http"

	hclog "github.com/hashicorp/go-hclog"

	"github.com/balkashynov/brewlog/internal/config"
	"github.com/balkashynov/brewlog/internal/db"
	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/postgres"
	"github.com/balkashynov/brewlog/internal/supabase"
)

// openBackend connects the configured auth + storage provider
func openBackend(ctx context.Context, cfg *config.Config, log hclog.Logger) (gateway.Backend, error) {
	switch cfg.Backend {
	case config.BackendSupabase:
		httpClient := &http.Client{Timeout: 2 * cfg.Timeout}
		return supabase.New(cfg.SupabaseURL, cfg.SupabaseKey, httpClient, log.Named("supabase")), nil

	case config.BackendPostgres:
		ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
		store, err := postgres.Open(ctx, cfg.DatabaseURL, log.Named("postgres"))
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		return store, nil

	case config.BackendSQLite:
		database, err := db.Open(cfg.DBPath, log.Named("sqlite"))
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		return database, nil

	default:
		return nil, &config.Error{Invalid: []string{fmt.Sprintf("%s=%q", config.KeyBackend, cfg.Backend)}}
	}
}
