package progrock

import (
	"io"

	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex on a progrock vertex.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stderr returns a writer whose data is recorded as the vertex's stderr log.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Complete marks the vertex done, failed when err is not nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
