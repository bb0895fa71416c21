package geo

// Difference approximates the polygon difference a minus b using vertex
// containment only: when every vertex of b lies inside a the result is
// empty, otherwise a is returned unmodified. No edge clipping is performed,
// so the result is unsuitable for geometrically rigorous boolean
// composition.
func Difference(a, b Polyline) Polyline {
	if len(b.Points) == 0 {
		return a
	}
	for _, v := range b.Points {
		if !a.Contains(v) {
			return a
		}
	}
	return Polyline{}
}

// Intersection approximates the polygon intersection of a and b as the set
// of vertices of each polygon lying inside the other. The result is a point
// set, not a polygon boundary; like Difference it performs no edge clipping
// and must not be used for rigorous boolean composition.
func Intersection(a, b Polyline) []Point {
	var pts []Point
	for _, v := range a.Points {
		if b.Contains(v) {
			pts = append(pts, v)
		}
	}
	for _, v := range b.Points {
		if a.Contains(v) {
			pts = append(pts, v)
		}
	}
	return pts
}
