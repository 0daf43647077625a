package build

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/lo"
	"github.com/scholarpage/scholarpage/log"
)

// Watch rebuilds whenever one of the inputs changes, until ctx is done.
// onBuild is called after the initial build and after every rebuild.
//
// Directories rather than files are watched, because editors commonly
// replace a file by renaming a new one over it.
func Watch(ctx context.Context, opts Options, debounce time.Duration, onBuild func(*Result, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	inputs := watchedFiles(opts)
	for _, dir := range lo.Uniq(lo.Map(inputs, func(f string, _ int) string { return filepath.Dir(f) })) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		log.WithField("dir", dir).Debug("watching")
	}

	onBuild(Run(ctx, opts))

	var (
		timer   = time.NewTimer(debounce)
		pending bool
	)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, inputs) {
				continue
			}
			log.WithField("file", event.Name).Debugf("change: %s", event.Op)
			if pending {
				timer.Stop()
			}
			timer.Reset(debounce)
			pending = true
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(err)
		case <-timer.C:
			pending = false
			onBuild(Run(ctx, opts))
		}
	}
}

// watchedFiles lists the absolute paths of every input of opts.
func watchedFiles(opts Options) []string {
	files := []string{opts.Publications}
	if opts.SiteFile != "" {
		files = append(files, opts.SiteFile)
	}
	if opts.ShowTalks {
		files = append(files, opts.Talks)
	}

	return lo.Map(files, func(f string, _ int) string {
		if abs, err := filepath.Abs(f); err == nil {
			return abs
		}
		return filepath.Clean(f)
	})
}

func relevant(event fsnotify.Event, inputs []string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		name = filepath.Clean(event.Name)
	}
	return lo.Contains(inputs, name)
}
