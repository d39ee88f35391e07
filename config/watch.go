package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file with ReadFile whenever it is written or
// replaced and hands each valid result to a callback.
type Watcher[T any] struct {
	watcher  *fsnotify.Watcher
	path     string
	logger   *slog.Logger
	onChange func(*T)
}

// NewWatcher starts watching the directory holding path, so that editors
// that replace the file on save are noticed too. Call Run to process events.
func NewWatcher[T any](path string, logger *slog.Logger, onChange func(*T)) (*Watcher[T], error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	clean := filepath.Clean(path)
	if err := w.Add(filepath.Dir(clean)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	return &Watcher[T]{watcher: w, path: clean, logger: logger, onChange: onChange}, nil
}

// Run processes file events until ctx is done, then releases the watcher.
// A file that fails to load or validate is logged and the previous
// configuration stays in effect.
func (w *Watcher[T]) Run(ctx context.Context) {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			w.reload(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.ErrorContext(ctx, "config watcher error", "error", err)
		}
	}
}

func (w *Watcher[T]) reload(ctx context.Context, event fsnotify.Event) {
	cfg := new(T)
	if err := ReadFile(w.path, cfg); err != nil {
		w.logger.WarnContext(ctx, "config reload rejected", "file", w.path, "op", event.Op.String(), "error", err)
		return
	}
	w.logger.InfoContext(ctx, "config reloaded", "file", w.path, "op", event.Op.String())
	w.onChange(cfg)
}
