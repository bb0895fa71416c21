package geo

import "math"

// Containment classifies a point against a closed boundary.
type Containment int

// Containment states. A point within tolerance of the boundary is
// Coincident, never folded into Inside or Outside.
const (
	Outside Containment = iota
	Inside
	Coincident
)

// String returns the lowercase name of the containment state.
func (c Containment) String() string {
	switch c {
	case Inside:
		return "inside"
	case Coincident:
		return "coincident"
	default:
		return "outside"
	}
}

// LineIntersection is a line/line intersection point together with the
// parameters T along the first line and U along the second.
type LineIntersection struct {
	Point Point   `json:"point"`
	T     float64 `json:"t"`
	U     float64 `json:"u"`
}

// IntersectLines intersects two lines in the XY projection by solving the
// 2x2 linear system for both parameters. Returns false when either segment
// is degenerate or the determinant is within tol of zero (parallel or
// collinear lines). The intersection point interpolates along the first
// line, so its Z follows the first line.
func IntersectLines(a, b Line, tol float64) (LineIntersection, bool) {
	d1 := a.Direction()
	d2 := b.Direction()
	if math.Hypot(d1.X, d1.Y) < tol || math.Hypot(d2.X, d2.Y) < tol {
		return LineIntersection{}, false
	}
	det := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(det) < tol {
		return LineIntersection{}, false
	}
	wx := b.Start.X - a.Start.X
	wy := b.Start.Y - a.Start.Y
	t := (wx*d2.Y - wy*d2.X) / det
	u := (wx*d1.Y - wy*d1.X) / det
	return LineIntersection{Point: a.PointAt(t), T: t, U: u}, true
}

// IntersectLinePolyline tests the line against every consecutive edge and
// returns the true segment/segment intersections, keeping only hits where
// both parameters fall in [0,1].
func IntersectLinePolyline(l Line, p Polyline, tol float64) []LineIntersection {
	var hits []LineIntersection
	for i := 0; i+1 < len(p.Points); i++ {
		hit, ok := IntersectLines(l, Ln(p.Points[i], p.Points[i+1]), tol)
		if !ok {
			continue
		}
		if hit.T >= 0 && hit.T <= 1 && hit.U >= 0 && hit.U <= 1 {
			hits = append(hits, hit)
		}
	}
	return hits
}

// SelfIntersects reports whether any two non-adjacent edges cross. Immediate
// neighbor edges are skipped, as is the first/last edge pair when the
// polyline is closed, since those share the closing vertex. Returns on the
// first confirmed crossing without enumerating the rest.
func (p Polyline) SelfIntersects(tol float64) bool {
	n := len(p.Points)
	if n < 4 {
		return false
	}
	edges := n - 1
	closed := p.Closed(tol)
	for i := 0; i < edges; i++ {
		for j := i + 2; j < edges; j++ {
			if closed && i == 0 && j == edges-1 {
				continue
			}
			a := Ln(p.Points[i], p.Points[i+1])
			b := Ln(p.Points[j], p.Points[j+1])
			hit, ok := IntersectLines(a, b, tol)
			if ok && hit.T >= 0 && hit.T <= 1 && hit.U >= 0 && hit.U <= 1 {
				return true
			}
		}
	}
	return false
}

// Contains reports whether pt is inside the boundary using the ray-casting
// parity test in the XY projection. Points on the boundary land on either
// side depending on rounding; use Locate when that distinction matters.
func (p Polyline) Contains(pt Point) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Points[i]
		vj := p.Points[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Locate classifies pt against the boundary. A point within tol of any edge
// (by the segment-limited closest-point test) is Coincident; otherwise the
// ray-casting parity test decides Inside or Outside.
func (p Polyline) Locate(pt Point, tol float64) Containment {
	n := len(p.Points)
	if n < 3 {
		return Outside
	}
	for i := 0; i+1 < n; i++ {
		if Ln(p.Points[i], p.Points[i+1]).DistanceToPoint(pt) <= tol {
			return Coincident
		}
	}
	// The implicit closing edge, when no duplicate vertex is stored.
	if p.Points[0].DistanceTo(p.Points[n-1]) > 0 {
		if Ln(p.Points[n-1], p.Points[0]).DistanceToPoint(pt) <= tol {
			return Coincident
		}
	}
	if p.Contains(pt) {
		return Inside
	}
	return Outside
}
