package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/viant/rangecover/coverage"
	"github.com/viant/rangecover/geom"
	"github.com/viant/rangecover/solver"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if !cfg.Search.Incumbent {
		t.Error("Search.Incumbent should default to true")
	}
	if cfg.Search.Root != "extents" {
		t.Errorf("Search.Root = %s, want extents", cfg.Search.Root)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown solver", func(c *Config) { c.Search.Solver = "annealing" }},
		{"unknown root", func(c *Config) { c.Search.Root = "sphere" }},
		{"negative steps", func(c *Config) { c.Search.MaxSteps = -1 }},
		{"negative time", func(c *Config) { c.Search.TimeLimit = -time.Second }},
		{"zero parallelism", func(c *Config) { c.Search.Parallelism = 0 }},
		{"empty dsn", func(c *Config) { c.Store.DSN = "" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() should fail for %s", tt.name)
			}
		})
	}
}

func TestLoad_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
search:
  solver: branchbound
  root: centers
  max_steps: 500
  time_limit: 2s
  parallelism: 4
  incumbent: false
store:
  dsn: /tmp/ranges.sqlite
log:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Search.Solver != "branchbound" || cfg.Search.Root != "centers" {
		t.Errorf("Search = %+v, want branchbound/centers", cfg.Search)
	}
	if cfg.Search.MaxSteps != 500 || cfg.Search.TimeLimit != 2*time.Second || cfg.Search.Parallelism != 4 {
		t.Errorf("Search budget = %+v", cfg.Search)
	}
	if cfg.Search.Incumbent {
		t.Error("Search.Incumbent should be false from file")
	}
	if cfg.Store.DSN != "/tmp/ranges.sqlite" {
		t.Errorf("Store.DSN = %s", cfg.Store.DSN)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoad_FromJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"search": {"solver": "brute", "parallelism": 2}, "log": {"level": "warn"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Search.Solver != "brute" || cfg.Search.Parallelism != 2 || cfg.Log.Level != "warn" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Store.DSN != Default().Store.DSN {
		t.Errorf("Store.DSN = %s, want default", cfg.Store.DSN)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RANGECOVER_MAX_STEPS", "25")
	t.Setenv("RANGECOVER_TIME_LIMIT", "150ms")
	t.Setenv("RANGECOVER_INCUMBENT", "false")
	t.Setenv("RANGECOVER_DSN", ":memory:")
	t.Setenv("RANGECOVER_LOG_LEVEL", "error")
	t.Setenv("RANGECOVER_PARALLELISM", "3")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Search.MaxSteps != 25 {
		t.Errorf("Search.MaxSteps = %d, want 25", cfg.Search.MaxSteps)
	}
	if cfg.Search.TimeLimit != 150*time.Millisecond {
		t.Errorf("Search.TimeLimit = %s, want 150ms", cfg.Search.TimeLimit)
	}
	if cfg.Search.Incumbent {
		t.Error("Search.Incumbent should be false from env")
	}
	if cfg.Search.Parallelism != 3 {
		t.Errorf("Search.Parallelism = %d, want 3", cfg.Search.Parallelism)
	}
	if cfg.Store.DSN != ":memory:" || cfg.Log.Level != "error" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_MalformedEnv(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"RANGECOVER_MAX_STEPS", "ten"},
		{"RANGECOVER_TIME_LIMIT", "5 minutes"},
		{"RANGECOVER_PARALLELISM", "not-a-number"},
		{"RANGECOVER_INCUMBENT", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			if err == nil {
				t.Fatalf("Load() should fail for %s=%q", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("Load() error = %v, want it to name %s", err, tt.key)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("Load() should not error for missing file: %v", err)
	}
	if cfg.Search.Parallelism != 1 {
		t.Errorf("Should return default Parallelism=1, got %d", cfg.Search.Parallelism)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("not: valid: yaml: content:::"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should error for invalid file")
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := Default()
	cfg.Search.Solver = "branchbound"
	cfg.Search.MaxSteps = 1
	cfg.Search.Incumbent = true

	var buf bytes.Buffer
	cfg.Log.Level = "debug"
	logger := cfg.Logger(&buf)

	opts := cfg.Options(logger)
	if opts.Kind != coverage.KindBranchBound || opts.Root != solver.RootExtents {
		t.Fatalf("Options = %+v", opts)
	}
	ranges := []geom.Range{
		{Center: geom.Coord{10, 12, 12}, Radius: 2},
		{Center: geom.Coord{12, 14, 12}, Radius: 2},
		{Center: geom.Coord{16, 12, 12}, Radius: 4},
		{Center: geom.Coord{14, 14, 14}, Radius: 6},
	}
	res, err := coverage.Solve(context.Background(), ranges, opts)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.Proven || res.Stats.ExhaustedBy != "steps" {
		t.Fatalf("Solve with max_steps=1 = %v (exhausted by %q), want unproven by steps", res, res.Stats.ExhaustedBy)
	}
	if !strings.Contains(buf.String(), "level=DEBUG") {
		t.Errorf("expected debug log output, got %q", buf.String())
	}
}
