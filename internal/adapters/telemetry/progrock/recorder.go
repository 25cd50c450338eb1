// Package progrock records pipeline progress on a vito/progrock tape.
//
// Every source file is one vertex, grouped under the directory that holds it.
// Failed files also leave an error message on the tape naming the file.
package progrock

import (
	"context"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/deco/internal/core/ports"
)

// Recorder implements ports.Telemetry on top of a progrock.Writer.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder writing to a fresh tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts the vertex of the source file at path.
func (r *Recorder) Record(ctx context.Context, path string) (context.Context, ports.Vertex) {
	dir := r.rec.WithGroup(filepath.Dir(path), progrock.Weak())
	vertex := &Vertex{
		path:   path,
		vertex: dir.Vertex(FileDigest(path), path),
		tape:   r.rec,
	}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close completes every directory group and closes the writer.
func (r *Recorder) Close() error {
	r.rec.Complete()
	return r.rec.Close()
}

// FileDigest derives the vertex identifier of a source file. It depends on the path
// only, so re-processing a file in watch mode updates the same vertex.
func FileDigest(path string) digest.Digest {
	return digest.FromString("deco:file:" + filepath.ToSlash(path))
}
