package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"cinelog/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected no config file to exist")
	}
	if cfg.Search.FuzzyThreshold != 80 {
		t.Fatalf("expected default fuzzy threshold 80, got %d", cfg.Search.FuzzyThreshold)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.OMDB.BaseURL == "" {
		t.Fatal("expected OMDb base URL default")
	}
}

func TestLoadParsesFileAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"

[omdb]
api_key = "abc123"

[search]
fuzzy_threshold = 70
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %s, got %s (exists=%v)", path, resolved, exists)
	}
	if cfg.Paths.DataDir != filepath.Join(dir, "data") {
		t.Fatalf("unexpected data dir: %s", cfg.Paths.DataDir)
	}
	if cfg.OMDB.APIKey != "abc123" {
		t.Fatalf("unexpected api key: %q", cfg.OMDB.APIKey)
	}
	if cfg.Search.FuzzyThreshold != 70 {
		t.Fatalf("unexpected threshold: %d", cfg.Search.FuzzyThreshold)
	}
	if cfg.DatabasePath() != filepath.Join(cfg.Paths.DataDir, "movies.db") {
		t.Fatalf("unexpected database path: %s", cfg.DatabasePath())
	}
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[search]\nfuzzy_threshold = 150\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for threshold above 100")
	}
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for unknown log level")
	}
}

func TestEnvOverridesAPIKey(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "env-key")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OMDB.APIKey != "env-key" {
		t.Fatalf("expected env override, got %q", cfg.OMDB.APIKey)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	if _, _, exists, err := config.Load(target); err != nil || !exists {
		t.Fatalf("sample config should load cleanly (exists=%v): %v", exists, err)
	}
}
