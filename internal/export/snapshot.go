package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/san-kum/topograph/internal/config"
	"github.com/san-kum/topograph/internal/graph"
	"github.com/san-kum/topograph/internal/layout"
	"github.com/san-kum/topograph/internal/render"
	"github.com/san-kum/topograph/internal/topology"
)

var ErrUnknownFormat = errors.New("export: unknown output format")

// Target is a surface that can be written out as a file.
type Target interface {
	render.Surface
	io.WriterTo
}

// NewTarget picks the surface for path by its extension.
func NewTarget(path string, v render.View) (Target, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return NewPNG(v), nil
	case ".svg":
		return NewSVG(v.Width, v.Height), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
}

// Snapshot settles the layout of p headlessly and writes the final frame
// to path. It returns the number of ticks the layout took.
func Snapshot(ctx context.Context, path string, cfg *config.Config, p graph.Payload, logger *log.Logger) (int, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	target, err := NewTarget(path, cfg.View())
	if err != nil {
		return 0, err
	}

	opts := topology.OptionsFromConfig(cfg)
	opts.Surface = target
	opts.Logger = logger
	top, err := topology.New(opts)
	if err != nil {
		return 0, err
	}
	top.Init(p, topology.Hooks{})

	ticks, err := top.Settle(ctx, cfg.MaxTicks)
	switch {
	case errors.Is(err, layout.ErrTickLimit):
		logger.Warn("layout did not come to rest", "ticks", ticks)
	case err != nil:
		return ticks, err
	}
	top.Redraw()

	f, err := os.Create(path)
	if err != nil {
		return ticks, err
	}
	if _, err := target.WriteTo(f); err != nil {
		f.Close()
		return ticks, fmt.Errorf("write %s: %w", path, err)
	}
	logger.Info("snapshot written", "path", path, "ticks", ticks)
	return ticks, f.Close()
}
