package config

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a configuration file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself so editors
// that save by renaming a temp file over the original are still seen.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	updates chan ShooterConfig
	logger  *log.Logger
}

// NewWatcher starts watching path. A nil logger discards messages.
func NewWatcher(path string, logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", path, err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Watcher{
		path:    abs,
		fs:      fs,
		updates: make(chan ShooterConfig, 1),
		logger:  logger,
	}, nil
}

// Updates delivers each successfully reloaded configuration. Only the
// newest pending value is kept.
func (w *Watcher) Updates() <-chan ShooterConfig {
	return w.updates
}

// Run processes file events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fs.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher", "err", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := ReadFile(w.path)
	if err != nil {
		// Half-written files are common while saving; keep the last good value.
		w.logger.Warn("config reload skipped", "path", w.path, "err", err)
		return
	}
	w.logger.Info("config reloaded", "path", w.path)
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}
