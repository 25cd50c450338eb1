// Package scheduler runs batches of source files through the pipeline in parallel.
package scheduler

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// FileLoader processes a single file by path.
type FileLoader interface {
	Load(ctx context.Context, path string, cachingEnabled bool) domain.Result
}

// Report is the outcome of one file in a batch.
type Report struct {
	Path   string
	Result domain.Result
	Status domain.FileStatus
}

// Scheduler manages the processing of a batch of files.
type Scheduler struct {
	telemetry ports.Telemetry

	mu         sync.RWMutex
	fileStatus map[domain.FileID]domain.FileStatus
}

// NewScheduler creates a new Scheduler with the given dependencies.
func NewScheduler(telemetry ports.Telemetry) *Scheduler {
	return &Scheduler{
		telemetry:  telemetry,
		fileStatus: make(map[domain.FileID]domain.FileStatus),
	}
}

// initFileStatuses initializes the status of every path to Pending.
func (s *Scheduler) initFileStatuses(paths []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range paths {
		s.fileStatus[domain.NewFileID(p)] = domain.FileStatusPending
	}
}

// updateStatus updates the status of a file.
func (s *Scheduler) updateStatus(id domain.FileID, status domain.FileStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fileStatus[id] = status
}

// Status returns the last known status of path.
func (s *Scheduler) Status(path string) domain.FileStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if status, ok := s.fileStatus[domain.NewFileID(path)]; ok {
		return status
	}
	return domain.FileStatusPending
}

// Skip marks every path as skipped and returns the matching reports.
// It is used when the scan precondition does not hold.
func (s *Scheduler) Skip(paths []string) []Report {
	reports := make([]Report, len(paths))
	for i, p := range paths {
		s.updateStatus(domain.NewFileID(p), domain.FileStatusSkipped)
		reports[i] = Report{Path: p, Result: domain.NoAction(), Status: domain.FileStatusSkipped}
	}
	return reports
}

// Run processes paths with at most parallelism files in flight. A parallelism of zero
// or less uses runtime.NumCPU().
//
// A failing file never stops the others. The returned reports keep the order of paths;
// the error joins every file failure and any context cancellation.
func (s *Scheduler) Run(
	ctx context.Context,
	loader FileLoader,
	paths []string,
	parallelism int,
	cachingEnabled bool,
) ([]Report, error) {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	s.initFileStatuses(paths)

	reports := make([]Report, len(paths))
	for i, p := range paths {
		reports[i] = Report{Path: p, Status: domain.FileStatusPending}
	}

	var g errgroup.Group
	g.SetLimit(parallelism)

	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			reports[i] = s.processFile(ctx, loader, path, cachingEnabled)
			return nil
		})
	}

	_ = g.Wait()

	var errs error
	for _, r := range reports {
		if r.Result.Kind == domain.ResultFailure {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(r.Result.Err, "file processing failed"), "path", r.Path))
		}
	}

	if ctx.Err() != nil {
		errs = errors.Join(errs, ctx.Err())
	}

	return reports, errs
}

func (s *Scheduler) processFile(
	ctx context.Context,
	loader FileLoader,
	path string,
	cachingEnabled bool,
) Report {
	id := domain.NewFileID(path)

	if ctx.Err() != nil {
		return Report{Path: path, Status: domain.FileStatusPending}
	}

	s.updateStatus(id, domain.FileStatusRunning)

	ctx, vertex := s.telemetry.Record(ctx, path)
	result := loader.Load(ctx, path, cachingEnabled)
	vertex.Complete(result.Err)

	status := domain.StatusFromResult(result)
	s.updateStatus(id, status)

	return Report{Path: path, Result: result, Status: status}
}
