package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// ScanOptions configures the Scan command.
type ScanOptions struct {
	RunOptions
	// OutDir receives the replaced files, mirroring their paths. Empty means no output.
	OutDir string
}

// Summary counts the files of a pass by status.
type Summary struct {
	Replaced  int
	Unchanged int
	Cached    int
	Skipped   int
	Failed    int
}

// Total returns the number of files in the pass.
func (s Summary) Total() int {
	return s.Replaced + s.Unchanged + s.Cached + s.Skipped + s.Failed
}

func summarize(reports []scheduler.Report) Summary {
	var s Summary
	for _, r := range reports {
		switch r.Status {
		case domain.FileStatusReplaced:
			s.Replaced++
		case domain.FileStatusUnchanged:
			s.Unchanged++
		case domain.FileStatusCached:
			s.Cached++
		case domain.FileStatusSkipped:
			s.Skipped++
		case domain.FileStatusFailed:
			s.Failed++
		}
	}
	return s
}

// Scan runs every file matched by patterns through the pipeline once.
func (a *App) Scan(ctx context.Context, patterns []string, opts ScanOptions) (Summary, error) {
	resolved, err := a.resolveOptions(opts.RunOptions)
	if err != nil {
		return Summary{}, err
	}

	sess, err := a.newSession(resolved)
	if err != nil {
		return Summary{}, err
	}

	paths, err := a.resolver.ResolveInputs(patterns, opts.dir(), resolved.Extensions.Matches)
	if err != nil {
		return Summary{}, zerr.Wrap(err, "failed to resolve inputs")
	}

	reports, runErr := a.process(ctx, sess, paths)

	var writeErr error
	if opts.OutDir != "" {
		writeErr = a.writeOutputs(opts.OutDir, opts.dir(), reports)
	}

	summary := summarize(reports)
	a.logger.Info(fmt.Sprintf(
		"scanned %d files: %d replaced, %d unchanged, %d cached, %d skipped, %d failed",
		summary.Total(), summary.Replaced, summary.Unchanged, summary.Cached, summary.Skipped, summary.Failed,
	))
	if resolved.CachingEnabled {
		a.logStats()
	}

	return summary, errors.Join(joinFailure(domain.ErrScanFailed, runErr), writeErr)
}

// process runs paths through the scheduler, or skips them when the precondition does not hold.
func (a *App) process(ctx context.Context, sess *session, paths []string) ([]scheduler.Report, error) {
	if !sess.enabled {
		return a.scheduler.Skip(paths), nil
	}

	reports, err := a.scheduler.Run(ctx, sess.loader, paths, sess.opts.Parallelism, sess.opts.CachingEnabled)
	for _, r := range reports {
		a.reportFile(r.Path, r.Status)
	}
	return reports, err
}

func (a *App) writeOutputs(outDir, root string, reports []scheduler.Report) error {
	var errs error
	for _, r := range reports {
		if r.Result.Kind != domain.ResultReplace {
			continue
		}
		target, err := a.writer.Write(outDir, root, r.Path, r.Result.Text)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		a.logger.Debug("wrote " + target)
	}
	return errs
}
