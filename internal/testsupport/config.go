package testsupport

import (
	"path/filepath"
	"testing"

	"cinelog/internal/config"
)

// NewConfig returns a Config rooted in a per-test temporary directory.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.WebsiteDir = filepath.Join(base, "website")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	return &cfg
}
