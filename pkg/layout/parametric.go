package layout

import (
	"math"
	"math/rand"

	"github.com/ibtiwahab/urbangen/pkg/geo"
)

// BuildingStyle selects the floor height used for massing.
type BuildingStyle int

// Building styles, matching the wire encoding 0 through 3.
const (
	StyleResidential BuildingStyle = iota
	StyleOffice
	StyleCommercial
	StyleMixed
)

// FloorHeight returns the fixed floor-to-floor height in meters for the
// style. Unknown styles fall back to the residential height.
func (s BuildingStyle) FloorHeight() float64 {
	switch s {
	case StyleOffice:
		return 3.5
	case StyleCommercial:
		return 4.0
	case StyleMixed:
		return 3.2
	default:
		return 3.0
	}
}

// String returns the lowercase style name.
func (s BuildingStyle) String() string {
	switch s {
	case StyleOffice:
		return "office"
	case StyleCommercial:
		return "commercial"
	case StyleMixed:
		return "mixed"
	default:
		return "residential"
	}
}

// PlacementStrategy names the layout strategy the rule engine selected.
type PlacementStrategy string

// Strategies by density band.
const (
	StrategyScatter      PlacementStrategy = "scatter"
	StrategyJitteredGrid PlacementStrategy = "jittered_grid"
	StrategyTightGrid    PlacementStrategy = "tight_grid"
)

// Rule engine limits.
const (
	MaxBuildings = 8  // hard cap on placed buildings
	MinFloors    = 2  // floor count clamp, lower bound
	MaxFloors    = 15 // floor count clamp, upper bound
)

const (
	baseFootprint     = 20.0 // meters, scaled per axis by density
	scatterSpacing    = 15.0 // clearance between scattered buildings (m)
	mediumGridSpacing = 8.0  // grid gap at medium density (m)
	tightGridSpacing  = 5.0  // grid gap at high density (m)
	jitterRange       = 3.0  // uniform jitter half-range at medium density (m)
)

// Density thresholds selecting the placement strategy.
const (
	scatterBelow = 0.3
	tightAbove   = 0.7
)

// DesignParams are the resolved inputs to the rule engine. MixRatio is
// carried for callers but not consumed by any current rule.
type DesignParams struct {
	SiteArea    float64
	Density     float64
	FAR         float64
	MixRatio    float64
	Style       BuildingStyle
	Orientation float64 // radians
}

// Design is the parametric building layout for one site. All buildings
// share the footprint dimensions, floor count, and floor height.
type Design struct {
	Positions      []geo.Point       `json:"positions"`
	Width          float64           `json:"width"`
	Depth          float64           `json:"depth"`
	Floors         int               `json:"floors"`
	FloorHeight    float64           `json:"floor_height"`
	TotalFloorArea float64           `json:"total_floor_area"`
	Strategy       PlacementStrategy `json:"strategy"`
}

// GenerateDesign maps site parameters to a building layout. The mapping is
// deterministic for a fixed rng seed: footprint dimensions, building count,
// and floor count depend only on the parameters, while scatter and jitter
// positions consume the rng.
func GenerateDesign(boundary geo.Polyline, p DesignParams, rng *rand.Rand) Design {
	// 1. Footprint scales linearly with density within fixed bands.
	width := baseFootprint * (0.7 + 0.6*p.Density)
	depth := baseFootprint * (0.6 + 0.5*p.Density)

	// 2. Building count: site area over footprint area with a 2x spacing
	//    factor, scaled by density again. Density enters twice, once in the
	//    sizing and once here.
	count := int(float64(int(p.SiteArea/(width*depth*2))) * p.Density)
	if count < 1 {
		count = 1
	}
	if count > MaxBuildings {
		count = MaxBuildings
	}

	// 3. Floor count from FAR, divided across the buildings.
	floors := int(p.SiteArea * p.FAR / (width * depth) / float64(count))
	if floors < MinFloors {
		floors = MinFloors
	}
	if floors > MaxFloors {
		floors = MaxFloors
	}

	// 4. Placement strategy by density band.
	var positions []geo.Point
	var strategy PlacementStrategy
	switch {
	case p.Density < scatterBelow:
		strategy = StrategyScatter
		positions = ScatterPositions(boundary, count, width, depth, scatterSpacing, 0, rng)
	case p.Density < tightAbove:
		strategy = StrategyJitteredGrid
		positions = GridPositions(boundary, width, depth, mediumGridSpacing)
		if len(positions) > count {
			positions = positions[:count]
		}
		positions = jitterPositions(boundary, positions, rng)
	default:
		strategy = StrategyTightGrid
		positions = GridPositions(boundary, width, depth, tightGridSpacing)
		if len(positions) > count {
			positions = positions[:count]
		}
	}

	// 5. Rotate positions rigidly about the site centroid. Footprint
	//    dimensions are deliberately not rotated with them; containment was
	//    checked on the unrotated footprints.
	if math.Abs(p.Orientation) > 1e-6 {
		c := boundary.Centroid()
		for i, pos := range positions {
			positions[i] = pos.RotateAroundXY(c, p.Orientation)
		}
	}

	return Design{
		Positions:      positions,
		Width:          width,
		Depth:          depth,
		Floors:         floors,
		FloorHeight:    p.Style.FloorHeight(),
		TotalFloorArea: float64(len(positions)) * float64(floors) * width * depth,
		Strategy:       strategy,
	}
}

// jitterPositions displaces each position by a uniform draw from
// [-jitterRange, jitterRange] on each axis. The jittered point is kept only
// when its center stays inside the boundary; otherwise the original grid
// position is kept.
func jitterPositions(boundary geo.Polyline, positions []geo.Point, rng *rand.Rand) []geo.Point {
	out := make([]geo.Point, len(positions))
	for i, pos := range positions {
		dx := (rng.Float64()*2 - 1) * jitterRange
		dy := (rng.Float64()*2 - 1) * jitterRange
		cand := geo.Pt(pos.X+dx, pos.Y+dy, pos.Z)
		if boundary.Contains(cand) {
			out[i] = cand
		} else {
			out[i] = pos
		}
	}
	return out
}
