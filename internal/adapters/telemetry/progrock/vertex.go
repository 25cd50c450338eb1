package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/deco/internal/core/domain"
)

// Vertex is the ports.Vertex of one source file.
type Vertex struct {
	path   string
	vertex *progrock.VertexRecorder
	tape   *progrock.Recorder
}

// Stdout returns the output stream of the file's vertex.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Log writes msg to the vertex. Warnings and errors go to its stderr stream.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", level, msg)
}

// Cached marks the file as answered by the result cache.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}

// Complete finishes the file's vertex. A failure is also reported as a tape message
// labelled with the file path.
func (v *Vertex) Complete(err error) {
	if err != nil {
		v.tape.Error("failed to process "+v.path,
			progrock.WithMessageLabels(progrock.Labelf("path", "%s", v.path), progrock.ErrorLabel(err)))
	}
	v.vertex.Done(err)
}
