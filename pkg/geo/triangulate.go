package geo

// Triangle is a single triangle in 3D space.
type Triangle struct {
	A Point `json:"a"`
	B Point `json:"b"`
	C Point `json:"c"`
}

// Area returns the triangle area.
func (t Triangle) Area() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Length() / 2
}

// Triangulation is the result of ear-clipping a polygon. ForcedClips counts
// the forced-progress clips taken when a full pass found no ear; a nonzero
// count means the input was numerically degenerate or self-intersecting and
// the triangle set is best-effort.
type Triangulation struct {
	Triangles   []Triangle
	ForcedClips int
}

// Triangulate ear-clips a polygon into len-2 triangles. The closing
// duplicate vertex is stripped first. Each iteration clips the first vertex
// whose neighbor triangle contains no other remaining vertex; when a full
// pass finds no such ear, the first three remaining vertices are emitted as
// a triangle and the middle one removed. Either way the remaining count
// strictly decreases, so the loop always terminates.
func Triangulate(p Polyline) Triangulation {
	remaining := append([]Point(nil), p.Points...)
	if n := len(remaining); n >= 2 && remaining[0].Equals(remaining[n-1], DefaultTolerance) {
		remaining = remaining[:n-1]
	}
	var out Triangulation
	if len(remaining) < 3 {
		return out
	}
	for len(remaining) > 3 {
		clipped := false
		m := len(remaining)
		for i := 0; i < m; i++ {
			prev := remaining[(i-1+m)%m]
			cur := remaining[i]
			next := remaining[(i+1)%m]
			if earBlocked(remaining, i, prev, cur, next) {
				continue
			}
			out.Triangles = append(out.Triangles, Triangle{A: prev, B: cur, C: next})
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			out.Triangles = append(out.Triangles, Triangle{A: remaining[0], B: remaining[1], C: remaining[2]})
			remaining = append(remaining[:1], remaining[2:]...)
			out.ForcedClips++
		}
	}
	out.Triangles = append(out.Triangles, Triangle{A: remaining[0], B: remaining[1], C: remaining[2]})
	return out
}

// earBlocked reports whether any remaining vertex other than the candidate
// and its two neighbors falls inside the candidate ear triangle.
func earBlocked(remaining []Point, i int, a, b, c Point) bool {
	m := len(remaining)
	tri := NewPolyline(a, b, c)
	for k := 0; k < m; k++ {
		if k == i || k == (i-1+m)%m || k == (i+1)%m {
			continue
		}
		if tri.Contains(remaining[k]) {
			return true
		}
	}
	return false
}
