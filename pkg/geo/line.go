package geo

// Line is a finite directed segment from Start to End, parametrized as
// Start + t*(End-Start) with t in [0,1] inside the segment.
type Line struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Ln is a shorthand constructor for Line.
func Ln(start, end Point) Line {
	return Line{Start: start, End: end}
}

// Direction returns the unnormalized displacement from Start to End.
func (l Line) Direction() Vector {
	return l.End.Sub(l.Start)
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return l.Start.DistanceTo(l.End)
}

// PointAt returns the point at parameter t along the line.
func (l Line) PointAt(t float64) Point {
	return l.Start.Lerp(l.End, t)
}

// ClosestParam returns the parameter of the perpendicular foot from q onto
// the infinite line. When limitToSegment is true the parameter is clamped to
// [0,1] before use. A degenerate segment yields parameter 0.
func (l Line) ClosestParam(q Point, limitToSegment bool) float64 {
	d := l.Direction()
	den := d.Dot(d)
	if den < 1e-12 {
		return 0
	}
	t := q.Sub(l.Start).Dot(d) / den
	if limitToSegment {
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return t
}

// ClosestPoint returns the point on the line closest to q, restricted to the
// segment when limitToSegment is true.
func (l Line) ClosestPoint(q Point, limitToSegment bool) Point {
	return l.PointAt(l.ClosestParam(q, limitToSegment))
}

// DistanceToPoint returns the distance from q to the segment.
func (l Line) DistanceToPoint(q Point) float64 {
	return q.DistanceTo(l.ClosestPoint(q, true))
}
