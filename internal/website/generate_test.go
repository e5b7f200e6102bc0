package website_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cinelog/internal/library"
	"cinelog/internal/website"
)

func TestGenerateWritesIndex(t *testing.T) {
	dir := t.TempDir()
	snap := library.Snapshot{
		"Inception": {Year: 2010, Rating: 8.8, PosterURL: "https://img.example/inception.jpg"},
		"Alien":     {Year: 1979, Rating: 8.5},
	}

	target, err := website.Generate(snap, dir, "my movie shelf")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if target != filepath.Join(dir, "index.html") {
		t.Fatalf("unexpected target path: %s", target)
	}

	raw, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read generated page: %v", err)
	}
	page := string(raw)

	if !strings.Contains(page, "My Movie Shelf") {
		t.Fatalf("site title not cased into heading:\n%s", page)
	}
	if !strings.Contains(page, "Inception") || !strings.Contains(page, "2010") {
		t.Fatal("movie entry missing from page")
	}
	if !strings.Contains(page, "https://img.example/inception.jpg") {
		t.Fatal("poster URL missing from page")
	}
	// Alien has no poster; its entry must omit the img tag rather than
	// render a broken one.
	alienIdx := strings.Index(page, "Alien")
	inceptionIdx := strings.Index(page, "Inception")
	if alienIdx == -1 || inceptionIdx == -1 || alienIdx > inceptionIdx {
		t.Fatal("movies should be listed alphabetically")
	}
}

func TestGenerateEmptyCollection(t *testing.T) {
	dir := t.TempDir()
	target, err := website.Generate(library.Snapshot{}, dir, "")
	if err != nil {
		t.Fatalf("Generate failed on empty snapshot: %v", err)
	}
	raw, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read generated page: %v", err)
	}
	if !strings.Contains(string(raw), website.DefaultTitle) {
		t.Fatal("default title missing")
	}
}

func TestGenerateEscapesMarkup(t *testing.T) {
	dir := t.TempDir()
	snap := library.Snapshot{
		"<script>alert(1)</script>": {Year: 2000},
	}
	target, err := website.Generate(snap, dir, "safe")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	raw, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read generated page: %v", err)
	}
	if strings.Contains(string(raw), "<script>alert(1)</script>") {
		t.Fatal("movie title must be HTML-escaped")
	}
}
