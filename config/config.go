// Package config loads rangecover settings from a YAML or JSON file and
// RANGECOVER_* environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/viant/rangecover/coverage"
	"github.com/viant/rangecover/solver"
	"github.com/viant/rangecover/solver/branchbound"
)

// Config contains all rangecover settings.
type Config struct {
	// Search configures the solver.
	Search SearchConfig `json:"search" yaml:"search"`

	// Store configures dataset persistence.
	Store StoreConfig `json:"store" yaml:"store"`

	// Log configures the logger.
	Log LogConfig `json:"log" yaml:"log"`
}

// SearchConfig contains solver settings.
type SearchConfig struct {
	Solver      string        `json:"solver" yaml:"solver"`
	Root        string        `json:"root" yaml:"root"`
	MaxSteps    int           `json:"max_steps" yaml:"max_steps"`
	TimeLimit   time.Duration `json:"time_limit" yaml:"time_limit"`
	Parallelism int           `json:"parallelism" yaml:"parallelism"`
	Incumbent   bool          `json:"incumbent" yaml:"incumbent"`
}

// StoreConfig contains persistence settings.
type StoreConfig struct {
	DSN string `json:"dsn" yaml:"dsn"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Solver:      string(coverage.KindAuto),
			Root:        solver.RootExtents.String(),
			Parallelism: 1,
			Incumbent:   true,
		},
		Store: StoreConfig{DSN: "rangecover.sqlite"},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

// Load merges defaults, the file at path (optional; a missing file is not an
// error) and environment overrides, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}
	return nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv("RANGECOVER_SOLVER"); v != "" {
		cfg.Search.Solver = v
	}
	if v := os.Getenv("RANGECOVER_ROOT"); v != "" {
		cfg.Search.Root = v
	}
	if v := os.Getenv("RANGECOVER_MAX_STEPS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RANGECOVER_MAX_STEPS: %w", err)
		}
		cfg.Search.MaxSteps = i
	}
	if v := os.Getenv("RANGECOVER_TIME_LIMIT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("RANGECOVER_TIME_LIMIT: %w", err)
		}
		cfg.Search.TimeLimit = d
	}
	if v := os.Getenv("RANGECOVER_PARALLELISM"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RANGECOVER_PARALLELISM: %w", err)
		}
		cfg.Search.Parallelism = i
	}
	if v := os.Getenv("RANGECOVER_INCUMBENT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("RANGECOVER_INCUMBENT: %w", err)
		}
		cfg.Search.Incumbent = b
	}
	if v := os.Getenv("RANGECOVER_DSN"); v != "" {
		cfg.Store.DSN = v
	}
	if v := os.Getenv("RANGECOVER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("RANGECOVER_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return nil
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	if _, err := coverage.ParseKind(c.Search.Solver); err != nil {
		return err
	}
	if _, err := solver.ParseRootStrategy(c.Search.Root); err != nil {
		return err
	}
	if c.Search.MaxSteps < 0 {
		return fmt.Errorf("search.max_steps must be >= 0, got %d", c.Search.MaxSteps)
	}
	if c.Search.TimeLimit < 0 {
		return fmt.Errorf("search.time_limit must be >= 0, got %s", c.Search.TimeLimit)
	}
	if c.Search.Parallelism < 1 {
		return fmt.Errorf("search.parallelism must be >= 1, got %d", c.Search.Parallelism)
	}
	if c.Store.DSN == "" {
		return fmt.Errorf("store.dsn must not be empty")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// Options converts the search section into coverage options that log to
// logger.
func (c Config) Options(logger *slog.Logger) coverage.Options {
	kind, _ := coverage.ParseKind(c.Search.Solver)
	root, _ := solver.ParseRootStrategy(c.Search.Root)
	return coverage.Options{
		Kind: kind,
		Root: root,
		BranchBound: []branchbound.Option{
			branchbound.WithMaxSteps(c.Search.MaxSteps),
			branchbound.WithTimeLimit(c.Search.TimeLimit),
			branchbound.WithParallelism(c.Search.Parallelism),
			branchbound.WithIncumbent(c.Search.Incumbent),
			branchbound.WithLogger(logger),
		},
	}
}

// Logger builds a logger writing to w using the log section.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(v string) (slog.Level, error) {
	var level slog.Level
	if v == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
