package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/deco/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports"
	"go.trai.ch/zerr"
)

const defaultDebounceWindow = watcher.DefaultDebounceWindow

// Watch scans the matched files once and then re-processes them whenever they change.
// Caching is on unless disabled, so unchanged files are answered from the cache.
// It returns when ctx is canceled.
func (a *App) Watch(ctx context.Context, patterns []string, opts RunOptions) error {
	if !opts.NoCache {
		opts.Cache = true
	}

	resolved, err := a.resolveOptions(opts)
	if err != nil {
		return err
	}

	sess, err := a.newSession(resolved)
	if err != nil {
		return err
	}

	root := opts.dir()

	paths, err := a.resolver.ResolveInputs(patterns, root, resolved.Extensions.Matches)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve inputs")
	}

	a.runPass(ctx, sess, paths)

	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info(fmt.Sprintf("watching %s for changes", root))

	var passMu sync.Mutex
	debouncer := watcher.NewDebouncer(a.debounceWindow, func(changed []string) {
		passMu.Lock()
		defer passMu.Unlock()

		if ctx.Err() != nil {
			return
		}

		affected := a.affected(patterns, root, resolved.Extensions, changed)
		if len(affected) == 0 {
			return
		}
		a.runPass(ctx, sess, affected)
	})

	for event := range a.watcher.Events() {
		if event.Operation != ports.OpWrite && event.Operation != ports.OpCreate {
			continue
		}
		if !resolved.Extensions.Matches(event.Path) {
			continue
		}
		debouncer.Add(event.Path)
	}

	if ctx.Err() == nil {
		debouncer.Flush()
	}

	return nil
}

// runPass processes paths and logs the outcome. Failures are logged, never returned,
// so watch mode keeps running.
func (a *App) runPass(ctx context.Context, sess *session, paths []string) {
	start := time.Now()

	reports, err := a.process(ctx, sess, paths)
	if err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}

	s := summarize(reports)
	a.logger.Info(fmt.Sprintf(
		"processed %d files in %s: %d replaced, %d unchanged, %d cached, %d failed",
		s.Total(), time.Since(start).Round(time.Millisecond), s.Replaced, s.Unchanged, s.Cached, s.Failed,
	))
	if sess.opts.CachingEnabled {
		a.logStats()
	}
}

// affected returns the changed paths that the watch patterns select.
func (a *App) affected(patterns []string, root string, ext domain.ExtensionFilter, changed []string) []string {
	matched, err := a.resolver.ResolveInputs(patterns, root, ext.Matches)
	if err != nil {
		a.logger.Debug("no inputs matched after change")
		return nil
	}

	selected := make(map[string]string, len(matched))
	for _, p := range matched {
		selected[cleanAbs(p)] = p
	}

	var out []string
	for _, p := range changed {
		if path, ok := selected[cleanAbs(p)]; ok {
			out = append(out, path)
		}
	}
	return out
}

func cleanAbs(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
