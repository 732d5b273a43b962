package layout

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch calls fn with the path of every file in paths that changes, until
// ctx is cancelled. Bursts of events for the same file, as produced by
// editors saving through a temporary file, are coalesced into one call once
// the file has been quiet for debounce.
//
// Parent directories are watched rather than the files themselves, so
// files that are replaced by renames keep being watched.
func Watch(ctx context.Context, log *zap.Logger, paths []string, debounce time.Duration, fn func(path string)) error {
	if log == nil {
		log = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	watched := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = p
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
		log.Debug("Watching directory", zap.String("dir", dir))
	}

	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Rename) {
				continue
			}
			orig, ok := watched[filepath.Clean(ev.Name)]
			if !ok {
				continue
			}
			log.Debug("File changed", zap.String("path", orig), zap.Stringer("op", ev.Op))
			pending[orig] = true
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error", zap.Error(err))

		case <-timer.C:
			for p := range pending {
				fn(p)
			}
			clear(pending)
		}
	}
}
