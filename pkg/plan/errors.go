package plan

import "errors"

// Input-shape sentinels. Callers match these with errors.Is to map bad
// requests to client errors before any geometry runs.
var (
	// ErrTooFewVertices is returned when the flattened vertex array
	// describes fewer than three vertices.
	ErrTooFewVertices = errors.New("plan: at least three vertices are required")

	// ErrVertexStride is returned when the flattened vertex array length
	// is not a multiple of three.
	ErrVertexStride = errors.New("plan: vertex array length must be a multiple of three")

	// ErrInternal wraps a recovered panic from the generation pipeline.
	ErrInternal = errors.New("plan: internal failure")
)

// checkVertexShape guards every operation that accepts a flattened
// vertex array. Stride is checked before count so a malformed array is
// never mistaken for a short one.
func checkVertexShape(vertices []float64) error {
	if len(vertices)%3 != 0 {
		return ErrVertexStride
	}
	if len(vertices) < 9 {
		return ErrTooFewVertices
	}
	return nil
}
