package layout

import (
	"math"
	"math/rand"

	"github.com/ibtiwahab/urbangen/pkg/geo"
)

// defaultAttemptsPerBuilding bounds scatter rejection sampling so placement
// terminates even when the boundary cannot hold the requested count.
const defaultAttemptsPerBuilding = 200

// ScatterPositions places up to count building centers by rejection
// sampling: candidates are drawn uniformly within the boundary's bounding
// box, inset by half the footprint so the footprint cannot protrude past the
// box. A candidate is kept only when all four footprint corners are
// contained and it clears every accepted position by
// max(width, depth) + minSpacing. The attempt budget is maxAttempts, or 200
// per requested building when maxAttempts <= 0; when the budget runs out,
// fewer positions than requested are returned rather than an error.
func ScatterPositions(boundary geo.Polyline, count int, width, depth, minSpacing float64, maxAttempts int, rng *rand.Rand) []geo.Point {
	if count <= 0 {
		return nil
	}
	box := boundary.BoundingBox()
	minX := box.Min.X + width/2
	maxX := box.Max.X - width/2
	minY := box.Min.Y + depth/2
	maxY := box.Max.Y - depth/2
	if maxX < minX || maxY < minY {
		return nil
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultAttemptsPerBuilding * count
	}
	clearance := math.Max(width, depth) + minSpacing

	var placed []geo.Point
	for attempt := 0; attempt < maxAttempts && len(placed) < count; attempt++ {
		cand := geo.Pt(
			minX+rng.Float64()*(maxX-minX),
			minY+rng.Float64()*(maxY-minY),
			0,
		)
		if !footprintInside(boundary, cand, width, depth) {
			continue
		}
		tooClose := false
		for _, p := range placed {
			if cand.DistanceTo(p) < clearance {
				tooClose = true
				break
			}
		}
		if !tooClose {
			placed = append(placed, cand)
		}
	}
	return placed
}

// GridPositions sweeps the boundary's bounding box at a fixed step of
// footprint plus spacing, keeping every cell whose center and four footprint
// corners are contained. The grid step already enforces separation, so no
// sibling spacing check is needed.
func GridPositions(boundary geo.Polyline, width, depth, spacing float64) []geo.Point {
	box := boundary.BoundingBox()
	var placed []geo.Point
	for x := box.Min.X + width/2; x <= box.Max.X-width/2; x += width + spacing {
		for y := box.Min.Y + depth/2; y <= box.Max.Y-depth/2; y += depth + spacing {
			cand := geo.Pt(x, y, 0)
			if !boundary.Contains(cand) {
				continue
			}
			if !footprintInside(boundary, cand, width, depth) {
				continue
			}
			placed = append(placed, cand)
		}
	}
	return placed
}

// footprintInside reports whether all four corners of a width x depth
// footprint centered at pos lie inside the boundary. Center containment is
// not a safe proxy: a corner can exit the boundary while the center stays
// inside.
func footprintInside(boundary geo.Polyline, pos geo.Point, width, depth float64) bool {
	hw, hd := width/2, depth/2
	corners := [4]geo.Point{
		geo.Pt(pos.X-hw, pos.Y-hd, pos.Z),
		geo.Pt(pos.X+hw, pos.Y-hd, pos.Z),
		geo.Pt(pos.X+hw, pos.Y+hd, pos.Z),
		geo.Pt(pos.X-hw, pos.Y+hd, pos.Z),
	}
	for _, c := range corners {
		if !boundary.Contains(c) {
			return false
		}
	}
	return true
}
