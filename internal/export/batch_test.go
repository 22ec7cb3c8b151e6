package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/topograph/internal/config"
	"github.com/san-kum/topograph/internal/graph"
)

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()

	jobs := []Job{
		{Path: filepath.Join(dir, "a.svg"), Payload: graph.Sample()},
		{Path: filepath.Join(dir, "b.png"), Payload: graph.Sample()},
		{Path: filepath.Join(dir, "c.gif"), Payload: graph.Sample()},
	}
	results := Batch(context.Background(), jobs, cfg, nil)

	if len(results) != len(jobs) {
		t.Fatalf("expected %d results, got %d", len(jobs), len(results))
	}
	for i, r := range results[:2] {
		if r.Err != nil {
			t.Errorf("job %d: %v", i, r.Err)
		}
		if r.Path != jobs[i].Path {
			t.Errorf("job %d: results out of order", i)
		}
		if _, err := os.Stat(r.Path); err != nil {
			t.Errorf("job %d: %v", i, err)
		}
	}
	if !errors.Is(results[2].Err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", results[2].Err)
	}
	if results[0].Ticks != results[1].Ticks {
		t.Error("same payload and seed should settle in the same number of ticks")
	}
}

func TestOutputFor(t *testing.T) {
	tests := []struct {
		output, payload, want string
	}{
		{"out.png", "graphs/a.yaml", "out-a.png"},
		{"dir/out.svg", "b.json", "dir/out-b.svg"},
	}
	for _, tt := range tests {
		if got := OutputFor(tt.output, tt.payload); got != tt.want {
			t.Errorf("OutputFor(%q, %q) = %q, want %q", tt.output, tt.payload, got, tt.want)
		}
	}
}
