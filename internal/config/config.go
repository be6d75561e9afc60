// Package config resolves brewlog settings from a local .env file, the
// process environment and, as a fallback, a secrets file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backend names
const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Environment keys
const (
	KeyBackend     = "BREWLOG_BACKEND"
	KeySupabaseURL = "SUPABASE_URL"
	KeySupabaseKey = "SUPABASE_ANON_KEY"
	KeyDatabaseURL = "BREWLOG_DATABASE_URL"
	KeyDBPath      = "BREWLOG_DB_PATH"
	KeyTimeout     = "BREWLOG_TIMEOUT"
	KeyLogFile     = "BREWLOG_LOG_FILE"
	KeyLogLevel    = "BREWLOG_LOG_LEVEL"
	KeySecretsFile = "BREWLOG_SECRETS_FILE"
)

const defaultTimeout = 15 * time.Second

// Config is the resolved application configuration
type Config struct {
	Backend string

	SupabaseURL string
	SupabaseKey string

	DatabaseURL string
	DBPath      string

	Timeout  time.Duration
	LogFile  string
	LogLevel string

	// Sources records where each required key came from, for logging
	Sources map[string]string
}

// Error lists every missing or invalid setting. It is fatal at startup.
type Error struct {
	Missing []string
	Invalid []string
}

func (e *Error) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, fmt.Sprintf("invalid %s", strings.Join(e.Invalid, ", ")))
	}
	return "configuration error: " + strings.Join(parts, "; ") +
		" (set them in .env, the environment, or the secrets file)"
}

// Options controls where Load looks
type Options struct {
	// EnvFile is the dotenv file to load; empty means ".env"
	EnvFile string
	// HomeDir overrides the user home directory
	HomeDir string
	// Getenv overrides os.Getenv
	Getenv func(string) string
}

// Load resolves configuration with the default options
func Load() (*Config, error) {
	return LoadWith(Options{})
}

// LoadWith resolves configuration. Values already in the environment win
// over the .env file; the secrets file is consulted only for keys that are
// still empty.
func LoadWith(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	home := opts.HomeDir
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
	}
	baseDir := filepath.Join(home, ".brewlog")

	secretsPath := getenv(KeySecretsFile)
	if secretsPath == "" {
		secretsPath = filepath.Join(baseDir, "secrets.toml")
	}
	secrets, err := readSecrets(secretsPath)
	if err != nil {
		return nil, err
	}

	r := resolver{getenv: getenv, secrets: secrets, sources: map[string]string{}, secretsPath: secretsPath}

	cfg := &Config{
		Backend:  strings.ToLower(r.get(KeyBackend, BackendSupabase)),
		DBPath:   r.get(KeyDBPath, filepath.Join(baseDir, "brewlog.db")),
		LogFile:  r.get(KeyLogFile, filepath.Join(baseDir, "brewlog.log")),
		LogLevel: r.get(KeyLogLevel, "info"),
		Timeout:  defaultTimeout,
		Sources:  r.sources,
	}

	cfgErr := &Error{}

	if raw := r.get(KeyTimeout, ""); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			cfgErr.Invalid = append(cfgErr.Invalid, KeyTimeout)
		} else {
			cfg.Timeout = timeout
		}
	}

	switch cfg.Backend {
	case BackendSupabase:
		cfg.SupabaseURL = strings.TrimRight(r.require(KeySupabaseURL, cfgErr), "/")
		cfg.SupabaseKey = r.require(KeySupabaseKey, cfgErr)
	case BackendPostgres:
		cfg.DatabaseURL = r.require(KeyDatabaseURL, cfgErr)
	case BackendSQLite:
		// DBPath always has a default
	default:
		cfgErr.Invalid = append(cfgErr.Invalid, fmt.Sprintf("%s=%q", KeyBackend, cfg.Backend))
	}

	if len(cfgErr.Missing) > 0 || len(cfgErr.Invalid) > 0 {
		return nil, cfgErr
	}
	return cfg, nil
}

type resolver struct {
	getenv      func(string) string
	secrets     map[string]string
	secretsPath string
	sources     map[string]string
}

func (r resolver) get(key, fallback string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		r.sources[key] = "env"
		return v
	}
	if v := strings.TrimSpace(r.secrets[key]); v != "" {
		r.sources[key] = r.secretsPath
		return v
	}
	return fallback
}

func (r resolver) require(key string, cfgErr *Error) string {
	v := r.get(key, "")
	if v == "" {
		cfgErr.Missing = append(cfgErr.Missing, key)
	}
	return v
}
