package geo

import "math"

// OffsetOutcome tags the result of an inset attempt.
type OffsetOutcome int

// Inset outcomes, ordered by degradation: the primary strategy succeeded,
// the fallback strategy had to run, or no strategy produced a boundary.
const (
	OffsetOK OffsetOutcome = iota
	OffsetDegenerate
	OffsetFailed
)

// String returns the lowercase name of the outcome.
func (o OffsetOutcome) String() string {
	switch o {
	case OffsetOK:
		return "ok"
	case OffsetDegenerate:
		return "degenerate"
	default:
		return "failed"
	}
}

// OffsetMethod names the strategy that produced an inset boundary.
type OffsetMethod string

// Inset strategies in the order they are tried.
const (
	MethodVertexOffset OffsetMethod = "vertex_offset"
	MethodScaleInset   OffsetMethod = "scale_inset"
)

// OffsetPolygon displaces every vertex of a closed polygon toward its
// centroid by distance, or away from it when distance is negative. This is
// an approximation, not a mitered offset: vertices whose centroid distance
// is at most the requested offset are dropped rather than pushed through
// the center. Fails when the input is not a closed ring of at least four
// stored vertices or when fewer than three vertices survive the drop.
// Displacement happens in the XY plane; vertex Z values are preserved. The
// returned ring is re-closed.
func OffsetPolygon(p Polyline, distance float64) (Polyline, bool) {
	if len(p.Points) < 4 || !p.Closed(DefaultTolerance) {
		return Polyline{}, false
	}
	c := p.Centroid()
	ring := p.Points[:len(p.Points)-1]
	out := make([]Point, 0, len(ring))
	for _, v := range ring {
		dx, dy := c.X-v.X, c.Y-v.Y
		d := math.Hypot(dx, dy)
		if d <= distance || d < 1e-12 {
			continue
		}
		out = append(out, Point{
			X: v.X + dx/d*distance,
			Y: v.Y + dy/d*distance,
			Z: v.Z,
		})
	}
	if len(out) < 3 {
		return Polyline{}, false
	}
	out = append(out, out[0])
	return Polyline{Points: out}, true
}

// InsetByScale shrinks a polygon uniformly about its centroid so that the
// mean vertex radius contracts by distance (expands when distance is
// negative). Unlike OffsetPolygon it never drops a vertex, which makes it
// the fallback for polygons the uniform-distance offset degenerates on.
// Fails when the shrink factor reaches zero or below, or when the polygon
// has no usable radius. Scaling happens in the XY plane; Z is preserved.
func InsetByScale(p Polyline, distance float64) (Polyline, bool) {
	if len(p.Points) < 3 {
		return Polyline{}, false
	}
	c := p.Centroid()
	mean := 0.0
	for _, v := range p.Points {
		mean += math.Hypot(v.X-c.X, v.Y-c.Y)
	}
	mean /= float64(len(p.Points))
	if mean < 1e-12 {
		return Polyline{}, false
	}
	factor := 1 - distance/mean
	if factor <= 0 {
		return Polyline{}, false
	}
	out := make([]Point, len(p.Points))
	for i, v := range p.Points {
		out[i] = Point{
			X: c.X + (v.X-c.X)*factor,
			Y: c.Y + (v.Y-c.Y)*factor,
			Z: v.Z,
		}
	}
	return Polyline{Points: out}, true
}

// Inset is the tagged result of InsetBoundary.
type Inset struct {
	Boundary Polyline
	Outcome  OffsetOutcome
	Method   OffsetMethod
}

// InsetBoundary runs the inset strategies in order: the vertex offset first,
// the scale inset as fallback. The outcome records which tier produced the
// boundary so callers can branch without re-deriving the failure mode.
func InsetBoundary(p Polyline, distance float64) Inset {
	if off, ok := OffsetPolygon(p, distance); ok {
		return Inset{Boundary: off, Outcome: OffsetOK, Method: MethodVertexOffset}
	}
	if ins, ok := InsetByScale(p, distance); ok {
		return Inset{Boundary: ins, Outcome: OffsetDegenerate, Method: MethodScaleInset}
	}
	return Inset{Outcome: OffsetFailed}
}
