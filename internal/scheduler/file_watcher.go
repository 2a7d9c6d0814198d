package scheduler

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ecosystem-ai/footer/internal/logger"
)

// DefaultDebounce collapses bursts of editor writes into one reload.
const DefaultDebounce = 500 * time.Millisecond

// FileWatcher pushes a reload trigger when the menu file changes.
type FileWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	trigger  chan<- struct{}
	debounce time.Duration
	logger   logger.Logger
	stopCh   chan struct{}
	resolved string // symlink target of path, "" if unresolvable
}

// NewFileWatcher creates a watcher for path.
func NewFileWatcher(path string, trigger chan<- struct{}, debounce time.Duration, log logger.Logger) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve menu file path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &FileWatcher{
		path:     absPath,
		watcher:  w,
		trigger:  trigger,
		debounce: debounce,
		logger:   log,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start watches the directory of the file. Events on the file itself cover
// in-place writes and editors that replace it. Any other event in the
// directory re-resolves the file's symlinks, which catches config-map mounts
// where only the ..data link is swapped.
func (fw *FileWatcher) Start(ctx context.Context) error {
	dir := filepath.Dir(fw.path)
	if err := fw.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	fw.resolved = resolve(fw.path)

	fw.logger.Info("watching menu file", logger.String("file", fw.path))
	go fw.loop(ctx)
	return nil
}

// Stop stops watching.
func (fw *FileWatcher) Stop() {
	close(fw.stopCh)
	if err := fw.watcher.Close(); err != nil {
		fw.logger.Warn("failed to close file watcher", logger.Error(err))
	}
}

func (fw *FileWatcher) loop(ctx context.Context) {
	name := filepath.Base(fw.path)
	timer := time.NewTimer(fw.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-fw.stopCh:
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				if target := resolve(fw.path); target != fw.resolved {
					fw.logger.Debug("menu file target changed",
						logger.String("from", fw.resolved),
						logger.String("to", target))
					fw.resolved = target
					if target != "" {
						timer.Reset(fw.debounce)
					}
				}
				continue
			}
			if event.Has(fsnotify.Remove) {
				fw.logger.Warn("menu file removed, keeping live snapshot",
					logger.String("file", event.Name))
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				fw.logger.Debug("menu file change detected",
					logger.String("file", event.Name),
					logger.String("op", event.Op.String()))
				timer.Reset(fw.debounce)
			}

		case <-timer.C:
			select {
			case fw.trigger <- struct{}{}:
			default:
				fw.logger.Debug("menu reload already pending")
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Error("menu file watcher error", logger.Error(err))
		}
	}
}

// resolve follows the symlinks of path, returning "" when it does not exist.
func resolve(path string) string {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return ""
	}
	return target
}
