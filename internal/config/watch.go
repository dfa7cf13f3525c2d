package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchProfile monitors path and calls onChange with the freshly loaded
// Profile each time the file is written. It blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file, so editors that save
// by renaming a temporary file over path keep triggering reloads.
//
// A reload that fails to parse or validate is logged and skipped; the caller
// keeps whatever profile it already had.
func WatchProfile(ctx context.Context, path string, onChange func(*Profile)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrProfileWatch, err)
	}
	defer func() { _ = watcher.Close() }()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("%s: %w", ErrProfileWatch, err)
	}

	log := slog.With(LogKeyComponent, CompConfig, LogKeyPath, path)
	log.Info(MsgProfileWatching)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			// A rename onto path arrives as Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			p, err := LoadProfile(path)
			if err != nil {
				log.Error(MsgProfileKeep, LogKeyError, err)
				continue
			}

			log.Info(MsgProfileReloaded)
			onChange(p)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(ErrProfileWatch, LogKeyError, err)
		}
	}
}
