package plan

import (
	"github.com/ibtiwahab/urbangen/pkg/geo"
	"github.com/ibtiwahab/urbangen/pkg/validation"
)

// Site is the per-request view of a boundary: the polyline plus the
// derived quantities the parametric rules consume. It is built from the
// request and discarded with the response.
type Site struct {
	Boundary    geo.Polyline `json:"boundary"`
	Area        float64      `json:"area"`
	Orientation float64      `json:"orientation"`
	Bounds      geo.Box      `json:"bounds"`
	Closed      bool         `json:"closed"`
}

// NewSite builds a site from flattened x,y,z triples. The array shape is
// checked before any geometry runs: the length must be a multiple of
// three and describe at least three vertices. A boundary that fails to
// close within tol is kept as-is with a geometry warning; its area then
// reports as zero and the layout degrades deterministically.
func NewSite(vertices []float64, tol float64) (*Site, *validation.Report, error) {
	report := validation.NewReport()

	if err := checkVertexShape(vertices); err != nil {
		return nil, report, err
	}

	boundary := geo.PolylineFromFlat(vertices)
	closed := boundary.MakeClosed(tol)
	if !closed {
		report.AddWarning(validation.Result{
			Level:   validation.LevelGeometry,
			Field:   "plan_flattened_vertices",
			Message: "boundary does not close within tolerance; area treated as zero",
		})
	}

	return &Site{
		Boundary:    boundary,
		Area:        boundary.Area(),
		Orientation: boundary.MainOrientation(),
		Bounds:      boundary.BoundingBox(),
		Closed:      closed,
	}, report, nil
}
