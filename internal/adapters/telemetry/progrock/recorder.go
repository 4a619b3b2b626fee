// Package progrock records resolution stages as progrock vertices.
package progrock

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/core/ports"
)

// Recorder implements ports.Observer. Each stage entered becomes a vertex; steps and
// restarts are written to the vertex of the stage they happen in.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu      sync.Mutex
	seq     int
	current *Vertex
}

var _ ports.Observer = (*Recorder)(nil)

// New creates a Recorder writing to an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// OnStage completes the running stage vertex and starts one for stage.
func (r *Recorder) OnStage(stage domain.Stage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.finish(nil)
	r.seq++
	name := "stage " + string(stage)
	d := digest.FromString(strconv.Itoa(r.seq) + "/" + name)
	r.current = &Vertex{vertex: r.rec.Vertex(d, name)}
}

// OnStep logs the decided resolvent on the running stage vertex.
func (r *Recorder) OnStep(res domain.Resolvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil {
		r.current.Log("decided " + res.String())
	}
}

// OnRestart fails the running stage vertex with the resolvent that forced the restart.
func (r *Recorder) OnRestart(attempt int, res domain.Resolvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.finish(fmt.Errorf("restart %d: %s", attempt, res))
}

// Close completes the running vertex and closes the writer if it can be closed.
func (r *Recorder) Close() error {
	r.mu.Lock()
	r.finish(nil)
	r.mu.Unlock()

	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// finish must be called with mu held.
func (r *Recorder) finish(err error) {
	if r.current == nil {
		return
	}
	r.current.Complete(err)
	r.current = nil
}
