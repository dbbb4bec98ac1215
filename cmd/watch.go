// Copyright © 2026 The escope authors

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/estools-go/escope/lint"
)

const watchDebounce = 250 * time.Millisecond

// watchAndCheck runs the checks once, then re-runs them whenever one of
// the documents changes, until interrupted.
func watchAndCheck(l *lint.Linter, paths []string, format string) {
	run := func() {
		diags, err := checkFiles(l, paths)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if len(diags) == 0 {
			fmt.Fprintf(os.Stderr, "escope: %d document(s) clean\n", len(paths))
			return
		}
		if err := writeDiagnostics(diags, format); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	run()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	onChange := func() {
		fmt.Fprintf(os.Stderr, "\nescope: change detected at %s\n", time.Now().Format("15:04:05"))
		run()
	}
	if err := watchFiles(ctx, paths, watchDebounce, onChange); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// watchFiles blocks watching the given files, calling onChange after
// events settle for the debounce interval. It returns when ctx is done
// or the watcher fails.
func watchFiles(ctx context.Context, paths []string, debounce time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[filepath.Clean(abs)] = true
		dirs[filepath.Dir(abs)] = true
	}
	// Watch the containing directories rather than the files themselves,
	// so editors that replace files on save stay visible.
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if pending {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}
			timer.Reset(debounce)
			pending = true
		case <-timer.C:
			if pending {
				pending = false
				onChange()
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return watchErr
		}
	}
}
