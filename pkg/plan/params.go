package plan

import (
	"math"

	"github.com/ibtiwahab/urbangen/pkg/layout"
	"github.com/ibtiwahab/urbangen/pkg/validation"
)

// Parameters is the fully-resolved parameter set a generation run uses.
// Values are merged once from defaults and request overrides; after that
// the struct is treated as immutable.
type Parameters struct {
	SiteType int                  `json:"site_type"`
	Density  float64              `json:"density"`
	FAR      float64              `json:"far"`
	MixRatio float64              `json:"mix_ratio"`
	Style    layout.BuildingStyle `json:"building_style"`

	// Rotation is in radians. It defaults to the site's dominant-edge
	// orientation and is replaced by a valid orientation override.
	Rotation float64 `json:"rotation"`
}

// DefaultParameters returns the baseline parameter set. Rotation starts
// at zero; callers seed it from the site before applying overrides.
func DefaultParameters() Parameters {
	return Parameters{
		SiteType: 0,
		Density:  0.5,
		FAR:      1.0,
		MixRatio: 0.0,
		Style:    layout.StyleResidential,
		Rotation: 0,
	}
}

// ResolveParameters merges request overrides onto the defaults.
// Out-of-range overrides are advisory: each one adds a warning to the
// report and the default is kept. The site's dominant-edge orientation
// becomes the rotation unless a valid orientation override (degrees,
// 0 to 180) replaces it.
func ResolveParameters(o *Overrides, siteOrientation float64) (Parameters, *validation.Report) {
	report := validation.NewReport()

	params := DefaultParameters()
	params.Rotation = siteOrientation

	if o == nil {
		return params, report
	}

	if o.SiteType != nil {
		if *o.SiteType < 0 || *o.SiteType > 4 {
			report.AddWarning(validation.Result{
				Level:       validation.LevelInput,
				Field:       "site_type",
				Message:     "site_type out of range; using default",
				ActualValue: *o.SiteType,
				Expected:    "0 to 4",
			})
		} else {
			params.SiteType = *o.SiteType
		}
	}

	if o.Density != nil {
		if *o.Density < 0 || *o.Density > 1 {
			report.AddWarning(validation.Result{
				Level:       validation.LevelInput,
				Field:       "density",
				Message:     "density out of range; using default",
				ActualValue: *o.Density,
				Expected:    "0 to 1",
			})
		} else {
			params.Density = *o.Density
		}
	}

	if o.FAR != nil {
		if *o.FAR < 0 || *o.FAR > 10 {
			report.AddWarning(validation.Result{
				Level:       validation.LevelInput,
				Field:       "far",
				Message:     "far out of range; using default",
				ActualValue: *o.FAR,
				Expected:    "0 to 10",
			})
		} else {
			params.FAR = *o.FAR
		}
	}

	if o.MixRatio != nil {
		if *o.MixRatio < 0 || *o.MixRatio > 1 {
			report.AddWarning(validation.Result{
				Level:       validation.LevelInput,
				Field:       "mix_ratio",
				Message:     "mix_ratio out of range; using default",
				ActualValue: *o.MixRatio,
				Expected:    "0 to 1",
			})
		} else {
			params.MixRatio = *o.MixRatio
		}
	}

	if o.BuildingStyle != nil {
		if *o.BuildingStyle < 0 || *o.BuildingStyle > 3 {
			report.AddWarning(validation.Result{
				Level:       validation.LevelInput,
				Field:       "building_style",
				Message:     "building_style out of range; using default",
				ActualValue: *o.BuildingStyle,
				Expected:    "0 to 3",
			})
		} else {
			params.Style = layout.BuildingStyle(*o.BuildingStyle)
		}
	}

	if o.Orientation != nil {
		if *o.Orientation < 0 || *o.Orientation > 180 {
			report.AddWarning(validation.Result{
				Level:       validation.LevelInput,
				Field:       "orientation",
				Message:     "orientation out of range; using site orientation",
				ActualValue: *o.Orientation,
				Expected:    "0 to 180 degrees",
			})
		} else {
			params.Rotation = *o.Orientation * math.Pi / 180
		}
	}

	return params, report
}
