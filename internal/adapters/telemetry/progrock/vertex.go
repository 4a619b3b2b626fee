package progrock

import (
	"fmt"

	"github.com/vito/progrock"
)

// Vertex wraps a *progrock.VertexRecorder for one stage.
type Vertex struct {
	vertex *progrock.VertexRecorder
	steps  int
}

// Log writes msg to the vertex output.
func (v *Vertex) Log(msg string) {
	v.steps++
	_, _ = fmt.Fprintln(v.vertex.Stdout(), msg)
}

// Complete marks the vertex as finished. A stage that decided nothing is reported as cached.
func (v *Vertex) Complete(err error) {
	if err == nil && v.steps == 0 {
		v.vertex.Cached()
	}
	v.vertex.Done(err)
}
