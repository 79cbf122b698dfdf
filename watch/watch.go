package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is the polling period when fsnotify is unavailable.
const DefaultPollInterval = 250 * time.Millisecond

// Func receives the full contents of the watched file.
// A non-nil error stops the watch and is returned by File.
type Func func(ctx context.Context, content string) error

// Option configures File.
type Option func(*watcher)

// WithPollInterval sets the polling period used by the fallback.
func WithPollInterval(d time.Duration) Option {
	return func(w *watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithPolling skips fsnotify and polls from the start.
func WithPolling() Option {
	return func(w *watcher) {
		w.forcePoll = true
	}
}

type watcher struct {
	path      string
	fn        Func
	interval  time.Duration
	forcePoll bool
	last      string
	delivered bool
}

// File calls fn with the current contents of path, then again each time the
// contents change, until ctx is done. Writes that leave the contents
// unchanged, or empty the file, are not delivered.
//
// fsnotify watches the parent directory so editors that replace the file
// are followed. When fsnotify is unavailable File falls back to polling.
func File(ctx context.Context, path string, fn Func, opts ...Option) error {
	w := &watcher{
		path:     path,
		fn:       fn,
		interval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(w)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := w.deliver(ctx, string(content)); err != nil {
		return err
	}

	if w.forcePoll {
		return w.poll(ctx)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Debug("fsnotify unavailable, polling", slog.String("path", path), slog.Any("error", err))
		return w.poll(ctx)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(path)); err != nil {
		slog.Debug("watch directory failed, polling", slog.String("path", path), slog.Any("error", err))
		return w.poll(ctx)
	}
	return w.notify(ctx, fw)
}

func (w *watcher) notify(ctx context.Context, fw *fsnotify.Watcher) error {
	baseName := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := w.reload(ctx); err != nil {
				return err
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watch error", slog.String("path", w.path), slog.Any("error", err))
		}
	}
}

func (w *watcher) poll(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := w.reload(ctx); err != nil {
				return err
			}
		}
	}
}

// reload re-reads the file. A file that is briefly missing or empty while an
// editor rewrites it is skipped.
func (w *watcher) reload(ctx context.Context) error {
	content, err := os.ReadFile(w.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("reread watched file failed", slog.String("path", w.path), slog.Any("error", err))
		}
		return nil
	}
	if len(content) == 0 {
		return nil
	}
	return w.deliver(ctx, string(content))
}

func (w *watcher) deliver(ctx context.Context, content string) error {
	if w.delivered && content == w.last {
		return nil
	}
	w.last = content
	w.delivered = true
	return w.fn(ctx, content)
}
