package geo

// Plane is an infinite plane through Origin with unit normal Normal.
type Plane struct {
	Origin Point  `json:"origin"`
	Normal Vector `json:"normal"`
}

// NewPlane creates a plane from an origin and a normal direction. The normal
// is normalized on construction; a near-zero normal collapses to the zero
// sentinel and the resulting plane reports distance 0 to every point.
func NewPlane(origin Point, normal Vector) Plane {
	return Plane{Origin: origin, Normal: normal.Normalize()}
}

// SignedDistanceTo returns the signed distance from p to the plane, positive
// on the side the normal points toward.
func (pl Plane) SignedDistanceTo(p Point) float64 {
	return p.Sub(pl.Origin).Dot(pl.Normal)
}

// Project returns the orthogonal projection of p onto the plane.
func (pl Plane) Project(p Point) Point {
	return p.Add(pl.Normal.Scale(-pl.SignedDistanceTo(p)))
}
