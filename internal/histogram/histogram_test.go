package histogram_test

import (
	"strings"
	"testing"

	"cinelog/internal/histogram"
	"cinelog/internal/library"
)

func TestBuildBucketsRatings(t *testing.T) {
	snap := library.Snapshot{
		"Low":     {Rating: 0.5},
		"MidOne":  {Rating: 7.2},
		"MidTwo":  {Rating: 7.9},
		"Perfect": {Rating: 10},
	}

	buckets := histogram.Build(snap)
	if len(buckets) != 10 {
		t.Fatalf("expected 10 buckets, got %d", len(buckets))
	}
	if buckets[0].Count != 1 {
		t.Fatalf("bucket 0-1 count = %d, want 1", buckets[0].Count)
	}
	if buckets[7].Count != 2 {
		t.Fatalf("bucket 7-8 count = %d, want 2", buckets[7].Count)
	}
	if buckets[9].Count != 1 {
		t.Fatalf("rating 10 must land in the last bucket, got %d", buckets[9].Count)
	}
}

func TestRenderPlainOutput(t *testing.T) {
	snap := library.Snapshot{
		"A": {Rating: 8.1},
		"B": {Rating: 8.4},
		"C": {Rating: 2.0},
	}

	out := histogram.Render(histogram.Build(snap), false)
	if !strings.Contains(out, "8-9") || !strings.Contains(out, "2-3") {
		t.Fatalf("missing bucket labels in output:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("plain render must not contain ANSI escapes")
	}
	if !strings.Contains(out, "█") {
		t.Fatal("expected at least one bar")
	}
}

func TestRenderEmptySnapshot(t *testing.T) {
	out := histogram.Render(histogram.Build(library.Snapshot{}), false)
	if strings.Contains(out, "█") {
		t.Fatalf("empty snapshot must render no bars:\n%s", out)
	}
}
