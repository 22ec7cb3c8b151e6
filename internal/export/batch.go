package export

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/san-kum/topograph/internal/config"
	"github.com/san-kum/topograph/internal/graph"
)

type Job struct {
	Path    string
	Payload graph.Payload
}

type Result struct {
	Path  string
	Ticks int
	Err   error
}

// Batch snapshots every job concurrently. Results keep the job order.
func Batch(ctx context.Context, jobs []Job, cfg *config.Config, logger *log.Logger) []Result {
	results := make([]Result, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(idx int, job Job) {
			defer wg.Done()
			ticks, err := Snapshot(ctx, job.Path, cfg, job.Payload, logger)
			results[idx] = Result{Path: job.Path, Ticks: ticks, Err: err}
		}(i, job)
	}

	wg.Wait()
	return results
}

// OutputFor names the snapshot of payload when several are rendered to
// one output pattern: out.png and graphs/a.yaml give out-a.png.
func OutputFor(output, payload string) string {
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(filepath.Base(payload), filepath.Ext(payload))
	return strings.TrimSuffix(output, ext) + "-" + base + ext
}
