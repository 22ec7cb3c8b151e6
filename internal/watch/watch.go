// Package watch reloads a payload file when it changes on disk.
package watch

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/san-kum/topograph/internal/graph"
)

const DefaultDebounce = 200 * time.Millisecond

// Watcher sends the freshly loaded payload after each burst of writes to
// the watched file. Payloads that fail to load are logged and skipped.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *log.Logger
	fs       *fsnotify.Watcher
	changes  chan graph.Payload

	once sync.Once
	done chan struct{}
}

// New watches path. The parent directory is watched so that editors which
// replace the file on save are still seen.
func New(path string, debounce time.Duration, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		logger:   logger,
		fs:       fsw,
		changes:  make(chan graph.Payload, 1),
		done:     make(chan struct{}),
	}
	go w.loop()
	logger.Debug("watching payload", "path", abs)
	return w, nil
}

// Changes delivers reloaded payloads. Only the latest is kept when the
// reader falls behind.
func (w *Watcher) Changes() <-chan graph.Payload { return w.changes }

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.reload)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", "err", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	p, err := graph.Load(w.path)
	if err != nil {
		w.logger.Warn("payload changed but cannot be loaded", "err", err)
		return
	}
	w.logger.Info("payload reloaded", "path", w.path, "nodes", len(p.Nodes), "links", len(p.Links))

	// Drop a payload nobody has read yet; the new one supersedes it.
	select {
	case <-w.changes:
	default:
	}
	select {
	case w.changes <- p:
	case <-w.done:
	}
}
