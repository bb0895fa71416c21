package plan

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ibtiwahab/urbangen/pkg/geo"
	"github.com/ibtiwahab/urbangen/pkg/layout"
	"github.com/ibtiwahab/urbangen/pkg/validation"
)

const (
	baseSetback       = 3.0 // m at density 0
	setbackPerDensity = 2.0 // m added at density 1
	setbackLift       = 0.2 // m the setback ring sits above the site plane
)

// Generate runs the full pipeline for one request: site derivation,
// parameter resolution, parametric design, massing, setback. Degenerate
// geometry degrades into report warnings, never into errors; the error
// return carries only input-shape sentinels and wrapped internal
// failures from recovered panics.
func Generate(req *Request) (result *Result, report *validation.Report, err error) {
	report = validation.NewReport()
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	// 1. Site from the flattened boundary. Shape errors stop here,
	// before any geometry runs.
	site, siteReport, err := NewSite(req.Vertices, geo.DefaultTolerance)
	report.Merge(siteReport)
	if err != nil {
		return nil, report, err
	}

	// 2. Resolve parameters. Invalid overrides warn and fall back to
	// the defaults; the site's dominant-edge angle seeds the rotation.
	params, paramReport := ResolveParameters(req.Parameters, site.Orientation)
	report.Merge(paramReport)

	// 3. Parametric design with a per-request generator.
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	design := layout.GenerateDesign(site.Boundary, layout.DesignParams{
		SiteArea:    site.Area,
		Density:     params.Density,
		FAR:         params.FAR,
		MixRatio:    params.MixRatio,
		Style:       params.Style,
		Orientation: params.Rotation,
	}, rng)

	// 4. Massing per placed building.
	result = &Result{
		BuildingLayersHeights:  make([][]float64, 0, len(design.Positions)),
		BuildingLayersVertices: make([][][]float64, 0, len(design.Positions)),
		SubSiteVertices:        [][]float64{site.Boundary.Flatten()},
		SubSiteSetbackVertices: [][]float64{},
	}
	for _, pos := range design.Positions {
		heights := layout.FloorHeights(design.Floors, design.FloorHeight)
		rings := layout.FootprintRings(pos, design.Width, design.Depth, design.Floors, design.FloorHeight, pos.Z)
		result.BuildingLayersHeights = append(result.BuildingLayersHeights, heights)
		result.BuildingLayersVertices = append(result.BuildingLayersVertices, rings)
	}

	// 5. Setback ring, lifted above the site plane. A collapsed setback
	// is reported and omitted rather than faked.
	dist := baseSetback + setbackPerDensity*params.Density
	inset := geo.InsetBoundary(site.Boundary, dist)
	if inset.Outcome == geo.OffsetFailed {
		report.AddWarning(validation.Result{
			Level:       validation.LevelGeometry,
			Field:       "setback",
			Message:     "setback collapses the boundary; entry omitted",
			ActualValue: dist,
		})
	} else {
		if inset.Outcome == geo.OffsetDegenerate {
			report.AddInfo(validation.Result{
				Level:   validation.LevelGeometry,
				Field:   "setback",
				Message: fmt.Sprintf("vertex offset degenerate; %s used", inset.Method),
			})
		}
		flat := inset.Boundary.Flatten()
		for i := 2; i < len(flat); i += 3 {
			flat[i] += setbackLift
		}
		result.SubSiteSetbackVertices = append(result.SubSiteSetbackVertices, flat)
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelLayout,
		Field:   "buildings",
		Message: fmt.Sprintf("placed %d buildings (%s)", len(design.Positions), design.Strategy),
	})

	return result, report, nil
}
