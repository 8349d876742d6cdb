// Package config implements the Configuration ambient component (§4.L):
// a YAML file overlaid by AVNCORE_-prefixed environment variables overlaid
// by CLI flags, grounded on gopkg.in/yaml.v3 for the file layer.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// CacheBackend selects which cache.Backend implementation the pipeline's
// incremental cache (component K) should use.
type CacheBackend string

const (
	CacheSQLite   CacheBackend = "sqlite"
	CachePostgres CacheBackend = "postgres"
	CacheNone     CacheBackend = "none"
)

// ColorMode is a tri-state override for diag.Bag's colorization decision.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Options holds every tunable the pipeline and CLI consult.
type Options struct {
	CacheBackend CacheBackend `yaml:"cache_backend"`
	CacheDSN     string       `yaml:"cache_dsn"`
	LogLevel     string       `yaml:"log_level"`
	Canonicalize bool         `yaml:"canonicalize"`
	Color        ColorMode    `yaml:"color"`
	DisableCache bool         `yaml:"disable_cache"`
}

// Defaults returns the Options a fresh run uses before any file, env, or
// flag overlay is applied.
func Defaults() Options {
	return Options{
		CacheBackend: CacheSQLite,
		CacheDSN:     "",
		LogLevel:     "info",
		Canonicalize: true,
		Color:        ColorAuto,
		DisableCache: false,
	}
}

// Load reads the YAML file at path (if it exists), overlays AVNCORE_-
// prefixed environment variables, and returns the result. A missing file
// is not an error — it is equivalent to an empty overlay over Defaults().
func Load(path string) (*Options, error) {
	opts := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &opts); err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// no file to overlay, fall through to env/defaults
		default:
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	applyEnv(&opts)
	return &opts, nil
}

func applyEnv(opts *Options) {
	if v, ok := lookupEnv("CACHE_BACKEND"); ok {
		opts.CacheBackend = CacheBackend(v)
	}
	if v, ok := lookupEnv("CACHE_DSN"); ok {
		opts.CacheDSN = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		opts.LogLevel = v
	}
	if v, ok := lookupEnv("CANONICALIZE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.Canonicalize = b
		}
	}
	if v, ok := lookupEnv("COLOR"); ok {
		opts.Color = ColorMode(v)
	}
	if v, ok := lookupEnv("DISABLE_CACHE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.DisableCache = b
		}
	}
}

func lookupEnv(suffix string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + suffix)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

const envPrefix = "AVNCORE_"

// ApplyFlags overlays CLI-flag-sourced values onto opts; each parameter is
// a pointer to the flag's destination, nil when the flag was never set, so
// an unset flag never clobbers a file/env-sourced value. This is the
// outermost overlay layer per §4.L's "file, then env, then flags" order.
func ApplyFlags(opts *Options, cacheBackend, cacheDSN, logLevel, color *string, canonicalize, disableCache *bool) {
	if cacheBackend != nil {
		opts.CacheBackend = CacheBackend(*cacheBackend)
	}
	if cacheDSN != nil {
		opts.CacheDSN = *cacheDSN
	}
	if logLevel != nil {
		opts.LogLevel = *logLevel
	}
	if color != nil {
		opts.Color = ColorMode(*color)
	}
	if canonicalize != nil {
		opts.Canonicalize = *canonicalize
	}
	if disableCache != nil {
		opts.DisableCache = *disableCache
	}
}
