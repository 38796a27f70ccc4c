package commands

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce batches rapid file events from a build writing many
// symtypes files into a single re-comparison.
const watchDebounce = 250 * time.Millisecond

// watchAndCompare re-runs the comparison whenever a symtypes file in
// either tree changes. Runs until the command context is cancelled.
func watchAndCompare(cmd *cobra.Command, cmdCtx *CommandContext, dirA, dirB string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, dir := range []string{dirA, dirB} {
		if err := watchDir(watcher, dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	cmdCtx.Logger.Info("watching for changes", "a", dirA, "b", dirB)

	ctx := cmd.Context()
	var debounce *time.Timer
	rerun := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-rerun:
			if err := compareOnce(cmdCtx, dirA, dirB); err != nil {
				// Keep watching; a build may be mid-write.
				cmdCtx.Logger.Error("comparison failed", "error", err)
			}
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New subdirectories need their own watch.
			if event.Op&fsnotify.Create != 0 {
				_ = watchDir(watcher, event.Name)
			}
			if !strings.HasSuffix(event.Name, cmdCtx.Cfg.Suffix) {
				continue
			}
			cmdCtx.Logger.Debug("change detected", "path", event.Name)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmdCtx.Logger.Error("watch error", "error", err)
		}
	}
}

// watchDir recursively adds a directory tree to the watcher.
func watchDir(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// The path may already be gone again.
			return nil
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
