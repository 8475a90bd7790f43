// Package watch re-runs an action whenever a token document changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/tokensmith/internal/document"
	"github.com/alexisbeaulieu97/tokensmith/internal/export"
	"github.com/alexisbeaulieu97/tokensmith/internal/logger"
	"github.com/alexisbeaulieu97/tokensmith/internal/strategy"
	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
)

// DefaultDebounce is used when Options.Debounce is not positive.
const DefaultDebounce = 100 * time.Millisecond

// ErrNotRegularFile is returned when the watched path is a directory.
var ErrNotRegularFile = errors.New("watch path is not a regular file")

// Handler receives every successfully loaded version of the document.
type Handler func(ctx context.Context, g tokens.Graph) error

// Options configures Watch.
type Options struct {
	Path     string
	Debounce time.Duration
	Logger   *logger.Logger
}

// Watch loads the document at opts.Path, calls h, and repeats after every
// burst of changes until ctx is cancelled. The parent directory is watched
// so editors that save by renaming are seen. Load and handler failures are
// logged and watching continues; only setup failures are returned.
func Watch(ctx context.Context, opts Options, h Handler) error {
	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", opts.Path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	log := opts.Logger.With("path", path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	run(ctx, path, h, log)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(event, path) {
				continue
			}
			log.Debug("change detected: " + event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "watcher error")
		case <-fire:
			fire = nil
			run(ctx, path, h, log)
		}
	}
}

func relevant(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func run(ctx context.Context, path string, h Handler, log *logger.Logger) {
	g, err := document.Load(path)
	if err != nil {
		log.Error(err, "failed to load token document")
		return
	}
	if err := h(ctx, g); err != nil {
		log.Error(err, "handler failed")
		return
	}
	log.Debug("handler completed")
}

// ExportTo returns a Handler that renders each graph in format and writes it
// atomically to out.
func ExportTo(format export.Format, out string, bp strategy.Blueprint, log *logger.Logger) Handler {
	return func(_ context.Context, g tokens.Graph) error {
		rendered, err := export.Export(g, &bp, format)
		if err != nil {
			return err
		}
		if err := document.WriteFile(out, []byte(rendered)); err != nil {
			return err
		}
		log.WithFields(map[string]any{"format": string(format), "output": out}).Info("exported")
		return nil
	}
}
