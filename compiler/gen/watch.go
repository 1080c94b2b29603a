package gen

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period Watch waits after the last
// filesystem event before regenerating.
const DefaultDebounce = 250 * time.Millisecond

// Watch runs fn whenever files under dir change. Bursts of events are
// debounced: fn runs once the directory has been quiet for the debounce
// window (DefaultDebounce when the argument is not positive). Failures
// of fn are logged and watching continues. Watch blocks until ctx is
// canceled and returns its error.
func Watch(ctx context.Context, dir string, debounce time.Duration, fn func(context.Context) error) error {
	if fn == nil {
		return NewConfigError("Watch", nil, "fn cannot be nil")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return NewGenerationError("watch", dir, "create watcher", err)
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return NewGenerationError("watch", dir, "watch directory", err)
	}

	// The timer starts stopped and drained; only an event arms it.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("filterql: schema change detected", "file", ev.Name, "op", ev.Op.String())
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("filterql: watch error", "err", err)
		case <-timer.C:
			if err := fn(ctx); err != nil {
				slog.Error("filterql: regeneration failed", "err", err)
				continue
			}
			slog.Info("filterql: regenerated", "dir", dir)
		}
	}
}
