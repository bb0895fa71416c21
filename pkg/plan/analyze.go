package plan

import (
	"github.com/ibtiwahab/urbangen/pkg/geo"
	"github.com/ibtiwahab/urbangen/pkg/layout"
	"github.com/ibtiwahab/urbangen/pkg/validation"
)

// Analysis summarizes one boundary's geometric properties.
type Analysis struct {
	Area            float64   `json:"area"`
	Perimeter       float64   `json:"perimeter"`
	Closed          bool      `json:"is_closed"`
	Valid           bool      `json:"is_valid"`
	Centroid        []float64 `json:"centroid"`
	MainOrientation float64   `json:"main_orientation"`
	VertexCount     int       `json:"vertex_count"`
}

// Analyze reports the derived properties of a flattened boundary. The
// boundary is closed first when the gap is within tol, so the reported
// vertex count can exceed the input count by the closing duplicate.
func Analyze(vertices []float64, tol float64) (*Analysis, error) {
	if err := checkVertexShape(vertices); err != nil {
		return nil, err
	}

	p := geo.PolylineFromFlat(vertices)
	closed := p.MakeClosed(tol)
	c := p.Centroid()

	return &Analysis{
		Area:            p.Area(),
		Perimeter:       p.Length(),
		Closed:          closed,
		Valid:           p.IsValid(),
		Centroid:        []float64{c.X, c.Y, c.Z},
		MainOrientation: p.MainOrientation(),
		VertexCount:     p.Len(),
	}, nil
}

// CheckOptions selects which geometry checks to run.
type CheckOptions struct {
	Closure          bool `yaml:"check_closure" json:"check_closure"`
	SelfIntersection bool `yaml:"check_self_intersection" json:"check_self_intersection"`
	Planarity        bool `yaml:"check_planarity" json:"check_planarity"`
}

// GeometryCheck reports the outcome of the selected checks. Fields for
// checks that were not requested stay nil and drop out of the JSON.
type GeometryCheck struct {
	Closed         *bool `json:"is_closed,omitempty"`
	SelfIntersects *bool `json:"self_intersects,omitempty"`
	Planar         *bool `json:"is_planar,omitempty"`
	Valid          bool  `json:"is_valid"`
}

// CheckGeometry runs the selected checks on a flattened boundary. Each
// failed check adds a geometry warning to the report; Valid is true when
// every requested check passed.
func CheckGeometry(vertices []float64, opts CheckOptions, tol float64) (*GeometryCheck, *validation.Report, error) {
	report := validation.NewReport()
	if err := checkVertexShape(vertices); err != nil {
		return nil, report, err
	}

	p := geo.PolylineFromFlat(vertices)
	p.MakeClosed(tol)

	check := &GeometryCheck{Valid: true}

	if opts.Closure {
		closed := p.Closed(tol)
		check.Closed = &closed
		if !closed {
			check.Valid = false
			report.AddWarning(validation.Result{
				Level:   validation.LevelGeometry,
				Field:   "closure",
				Message: "boundary does not close within tolerance",
			})
		}
	}

	if opts.SelfIntersection {
		crosses := p.SelfIntersects(tol)
		check.SelfIntersects = &crosses
		if crosses {
			check.Valid = false
			report.AddWarning(validation.Result{
				Level:   validation.LevelGeometry,
				Field:   "self_intersection",
				Message: "boundary edges cross each other",
			})
		}
	}

	if opts.Planarity {
		_, planar := p.FitPlane()
		check.Planar = &planar
		if !planar {
			check.Valid = false
			report.AddWarning(validation.Result{
				Level:   validation.LevelGeometry,
				Field:   "planarity",
				Message: "no plane fits the boundary vertices",
			})
		}
	}

	return check, report, nil
}

// OffsetOutput is the offset operation's response.
type OffsetOutput struct {
	Boundary []float64        `json:"offset_vertices"`
	Outcome  string           `json:"outcome"`
	Method   geo.OffsetMethod `json:"method,omitempty"`
}

// OffsetBoundary insets a flattened boundary by distance, or expands it
// when outward is true. The two-tier strategy from the setback pipeline
// applies; a boundary the strategies collapse comes back with outcome
// "failed" and a warning, not an error.
func OffsetBoundary(vertices []float64, distance float64, outward bool, tol float64) (*OffsetOutput, *validation.Report, error) {
	report := validation.NewReport()
	if err := checkVertexShape(vertices); err != nil {
		return nil, report, err
	}

	p := geo.PolylineFromFlat(vertices)
	p.MakeClosed(tol)

	d := distance
	if outward {
		d = -d
	}

	inset := geo.InsetBoundary(p, d)
	out := &OffsetOutput{Outcome: inset.Outcome.String(), Method: inset.Method}
	if inset.Outcome == geo.OffsetFailed {
		report.AddWarning(validation.Result{
			Level:       validation.LevelGeometry,
			Field:       "offset",
			Message:     "offset collapses the boundary",
			ActualValue: distance,
		})
		return out, report, nil
	}

	out.Boundary = inset.Boundary.Flatten()
	return out, report, nil
}

// IntersectionReport classifies how two boundaries relate.
type IntersectionReport struct {
	Relationship string    `json:"relationship"`
	Points       []float64 `json:"intersection_points"`
	Count        int       `json:"intersection_count"`
}

// ClassifyIntersection classifies the relationship between two flattened
// boundaries: full containment either way, partial overlap, touching
// edges, or separation. Points holds the boundary crossing points found
// by the edge sweep, flattened.
func ClassifyIntersection(aVertices, bVertices []float64, tol float64) (*IntersectionReport, error) {
	if err := checkVertexShape(aVertices); err != nil {
		return nil, err
	}
	if err := checkVertexShape(bVertices); err != nil {
		return nil, err
	}

	a := geo.PolylineFromFlat(aVertices)
	b := geo.PolylineFromFlat(bVertices)
	a.MakeClosed(tol)
	b.MakeClosed(tol)

	aIn := 0
	for _, v := range a.Points {
		if b.Contains(v) {
			aIn++
		}
	}
	bIn := 0
	for _, v := range b.Points {
		if a.Contains(v) {
			bIn++
		}
	}

	var points []float64
	for i := 0; i+1 < len(a.Points); i++ {
		edge := geo.Line{Start: a.Points[i], End: a.Points[i+1]}
		for _, hit := range geo.IntersectLinePolyline(edge, b, tol) {
			points = append(points, hit.Point.X, hit.Point.Y, hit.Point.Z)
		}
	}

	rep := &IntersectionReport{Points: points, Count: len(points) / 3}
	switch {
	case len(a.Points) > 0 && aIn == len(a.Points):
		rep.Relationship = "a_inside_b"
	case len(b.Points) > 0 && bIn == len(b.Points):
		rep.Relationship = "b_inside_a"
	case aIn > 0 || bIn > 0:
		rep.Relationship = "overlap"
	case len(points) > 0:
		rep.Relationship = "edge_intersection"
	default:
		rep.Relationship = "separate"
	}
	return rep, nil
}

// Info is the static capability record for the generation engine.
type Info struct {
	Engine       string   `json:"engine"`
	Version      string   `json:"version"`
	MaxBuildings int      `json:"max_buildings"`
	MinFloors    int      `json:"min_floors"`
	MaxFloors    int      `json:"max_floors"`
	Styles       []string `json:"building_styles"`
	Strategies   []string `json:"placement_strategies"`
	Tolerance    float64  `json:"default_tolerance"`
}

// EngineInfo describes the engine's fixed limits and vocabularies.
func EngineInfo() Info {
	styles := make([]string, 0, 4)
	for s := layout.StyleResidential; s <= layout.StyleMixed; s++ {
		styles = append(styles, s.String())
	}
	return Info{
		Engine:       "urbangen",
		Version:      "0.2.0",
		MaxBuildings: layout.MaxBuildings,
		MinFloors:    layout.MinFloors,
		MaxFloors:    layout.MaxFloors,
		Styles:       styles,
		Strategies: []string{
			string(layout.StrategyScatter),
			string(layout.StrategyJitteredGrid),
			string(layout.StrategyTightGrid),
		},
		Tolerance: geo.DefaultTolerance,
	}
}
