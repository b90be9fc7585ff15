// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/gridrect/logging"
)

// watchDebounce coalesces the burst of events a single save produces.
const watchDebounce = 50 * time.Millisecond

// watchFile calls run once, then again after every write to path, until ctx
// is done. Errors from run are logged and do not stop the watch.
func watchFile(ctx context.Context, path string, log *logging.Logger, run func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch its directory.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	log = log.With("input", path)

	rerun := func() {
		if err := run(); err != nil {
			log.Error("decompose failed", "error", err)
		}
	}
	rerun()

	debounce := time.NewTimer(0)
	<-debounce.C

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounce.Reset(watchDebounce)

		case <-debounce.C:
			log.Debug("input changed")
			rerun()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)
		}
	}
}
