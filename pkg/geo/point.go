package geo

import "math"

// DefaultTolerance is used by geometric comparisons when the caller does not
// supply a tolerance. The kernel behaves sensibly for tolerances roughly
// between 1e-10 and 1e-3.
const DefaultTolerance = 1e-6

// Point is a location in 3D space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Origin is the zero point.
var Origin = Point{0, 0, 0}

// Pt is a shorthand constructor for Point.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns p displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// DistanceTo returns the Euclidean distance from p to q.
func (p Point) DistanceTo(q Point) float64 {
	return p.Sub(q).Length()
}

// DistanceXY returns the distance from p to q in the XY plane.
func (p Point) DistanceXY(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Equals reports whether p and q coincide within tol. Coordinates are never
// compared exactly.
func (p Point) Equals(q Point, tol float64) bool {
	return p.DistanceTo(q) <= tol
}

// Lerp returns the linear interpolation between p and q at t in [0,1].
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// RotateAroundXY returns p rotated by angle radians around center in the XY
// plane. Z is unchanged.
func (p Point) RotateAroundXY(center Point, angle float64) Point {
	c, s := math.Cos(angle), math.Sin(angle)
	dx, dy := p.X-center.X, p.Y-center.Y
	return Point{
		X: center.X + dx*c - dy*s,
		Y: center.Y + dx*s + dy*c,
		Z: p.Z,
	}
}

// MidPoint returns the midpoint between p and q.
func MidPoint(p, q Point) Point {
	return p.Lerp(q, 0.5)
}

// Vector is a displacement in 3D space.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec is a shorthand constructor for Vector.
func Vec(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// LengthSq returns the squared length of the vector.
func (v Vector) LengthSq() float64 {
	return v.Dot(v)
}

// Normalize returns the unit vector in the same direction.
// Returns the zero vector when the length is near zero; callers must treat
// that as "no defined direction".
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l < 1e-12 {
		return Vector{}
	}
	return Vector{v.X / l, v.Y / l, v.Z / l}
}

// IsZero reports whether the vector length is within tol of zero.
func (v Vector) IsZero(tol float64) bool {
	return v.Length() <= tol
}

// AngleXY returns the angle of the vector's XY projection from the positive
// X axis in radians.
func (v Vector) AngleXY() float64 {
	return math.Atan2(v.Y, v.X)
}
