package geo

import "math"

// Box is an axis-aligned bounding box.
type Box struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Center returns the box center.
func (b Box) Center() Point {
	return MidPoint(b.Min, b.Max)
}

// Size returns the box extents along each axis.
func (b Box) Size() Vector {
	return b.Max.Sub(b.Min)
}

// Polyline is an ordered sequence of points, the central aggregate of the
// kernel. Points are kept in insertion order; when a polyline is closed the
// duplicate closing vertex is stored explicitly.
type Polyline struct {
	Points []Point
}

// NewPolyline creates a polyline from a list of points.
func NewPolyline(pts ...Point) Polyline {
	return Polyline{Points: pts}
}

// PolylineFromFlat builds a polyline from consecutive (x, y, z) triples.
// Values beyond the last complete triple are ignored; callers that need
// strict stride validation perform it before constructing.
func PolylineFromFlat(coords []float64) Polyline {
	pts := make([]Point, 0, len(coords)/3)
	for i := 0; i+2 < len(coords); i += 3 {
		pts = append(pts, Point{coords[i], coords[i+1], coords[i+2]})
	}
	return Polyline{Points: pts}
}

// Flatten returns the vertices as consecutive (x, y, z) triples.
func (p Polyline) Flatten() []float64 {
	out := make([]float64, 0, len(p.Points)*3)
	for _, pt := range p.Points {
		out = append(out, pt.X, pt.Y, pt.Z)
	}
	return out
}

// Len returns the number of stored vertices.
func (p Polyline) Len() int {
	return len(p.Points)
}

// Closed reports whether the first and last vertices coincide within tol.
func (p Polyline) Closed(tol float64) bool {
	if len(p.Points) < 3 {
		return false
	}
	return p.Points[0].Equals(p.Points[len(p.Points)-1], tol)
}

// MakeClosed is the closure gate for every area and centroid computation.
// When the first and last vertices already coincide exactly, the polyline is
// left unchanged and MakeClosed returns true. When the gap is nonzero but
// within tol, an exact duplicate of the first vertex is appended and
// MakeClosed returns true. A gap beyond tol is a caller error: the polyline
// is left open and MakeClosed returns false, never patching closure across
// an excessive gap.
func (p *Polyline) MakeClosed(tol float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	gap := p.Points[0].DistanceTo(p.Points[n-1])
	if gap > tol {
		return false
	}
	if gap > 0 {
		p.Points = append(p.Points, p.Points[0])
	}
	return true
}

// Area returns the unsigned area enclosed by a closed polyline, computed
// with the shoelace formula on the polygon's dominant 2D projection. An
// open polyline encloses nothing and reports 0, as does a degenerate
// (collinear) one.
func (p Polyline) Area() float64 {
	if !p.Closed(DefaultTolerance) {
		return 0
	}
	plane, ok := p.FitPlane()
	if !ok {
		return 0
	}
	drop := dominantAxis(plane.Normal)
	n := len(p.Points)
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		ui, vi := project2D(p.Points[i], drop)
		uj, vj := project2D(p.Points[j], drop)
		area += ui*vj - uj*vi
	}
	return math.Abs(area) / 2
}

// Centroid returns the arithmetic mean of the distinct vertices. This is a
// vertex average, not the area-weighted centroid; it is adequate for layout
// placement but skewed by uneven vertex spacing.
func (p Polyline) Centroid() Point {
	distinct := p.distinctVertices()
	if len(distinct) == 0 {
		return Point{}
	}
	var cx, cy, cz float64
	for _, pt := range distinct {
		cx += pt.X
		cy += pt.Y
		cz += pt.Z
	}
	f := 1.0 / float64(len(distinct))
	return Point{cx * f, cy * f, cz * f}
}

// BoundingBox returns the axis-aligned bounding box of the vertices.
func (p Polyline) BoundingBox() Box {
	if len(p.Points) == 0 {
		return Box{}
	}
	b := Box{Min: p.Points[0], Max: p.Points[0]}
	for _, v := range p.Points[1:] {
		if v.X < b.Min.X {
			b.Min.X = v.X
		}
		if v.Y < b.Min.Y {
			b.Min.Y = v.Y
		}
		if v.Z < b.Min.Z {
			b.Min.Z = v.Z
		}
		if v.X > b.Max.X {
			b.Max.X = v.X
		}
		if v.Y > b.Max.Y {
			b.Max.Y = v.Y
		}
		if v.Z > b.Max.Z {
			b.Max.Z = v.Z
		}
	}
	return b
}

// Length returns the sum of the segment lengths. The closing segment is
// included when the closing duplicate is stored.
func (p Polyline) Length() float64 {
	total := 0.0
	for i := 0; i+1 < len(p.Points); i++ {
		total += p.Points[i].DistanceTo(p.Points[i+1])
	}
	return total
}

// IsValid reports whether the polyline has at least three distinct vertices
// and no zero-length consecutive segments.
func (p Polyline) IsValid() bool {
	for i := 0; i+1 < len(p.Points); i++ {
		if p.Points[i].DistanceTo(p.Points[i+1]) <= DefaultTolerance {
			return false
		}
	}
	return len(p.distinctVertices()) >= 3
}

// FitPlane finds the plane through the polyline by scanning forward from the
// first edge for the first vertex whose cross product with it exceeds a
// 1e-6 length threshold. Returns false when every vertex is collinear within
// that threshold; callers treat false as "not planar", not as an error.
func (p Polyline) FitPlane() (Plane, bool) {
	if len(p.Points) < 3 {
		return Plane{}, false
	}
	v1 := p.Points[1].Sub(p.Points[0])
	for _, pt := range p.Points[2:] {
		n := v1.Cross(pt.Sub(p.Points[0]))
		if n.Length() > 1e-6 {
			return NewPlane(p.Points[0], n), true
		}
	}
	return Plane{}, false
}

// MainOrientation returns the XY angle in radians of the longest edge.
// Ties keep the first occurrence.
func (p Polyline) MainOrientation() float64 {
	best := 0.0
	maxLen := 0.0
	for i := 0; i+1 < len(p.Points); i++ {
		d := p.Points[i+1].Sub(p.Points[i])
		l := math.Hypot(d.X, d.Y)
		if l > maxLen {
			maxLen = l
			best = d.AngleXY()
		}
	}
	return best
}

// distinctVertices returns the vertices with tolerance-coincident duplicates
// removed, first occurrence kept.
func (p Polyline) distinctVertices() []Point {
	out := make([]Point, 0, len(p.Points))
	for _, pt := range p.Points {
		dup := false
		for _, q := range out {
			if pt.Equals(q, DefaultTolerance) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, pt)
		}
	}
	return out
}

// dominantAxis returns the index (0 for X, 1 for Y, 2 for Z) of the largest
// magnitude component of the normal.
func dominantAxis(n Vector) int {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case az >= ax && az >= ay:
		return 2
	case ay >= ax:
		return 1
	default:
		return 0
	}
}

// project2D drops the given axis and returns the remaining two coordinates.
func project2D(p Point, drop int) (float64, float64) {
	switch drop {
	case 0:
		return p.Y, p.Z
	case 1:
		return p.X, p.Z
	default:
		return p.X, p.Y
	}
}
