package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Request is one generation job: a site boundary as flattened x,y,z
// triples plus optional parameter overrides. The wire names match the
// upstream clients, so the same struct serves HTTP bodies and YAML
// request files.
type Request struct {
	Vertices   []float64  `yaml:"plan_flattened_vertices" json:"plan_flattened_vertices"`
	Parameters *Overrides `yaml:"plan_parameters,omitempty" json:"plan_parameters,omitempty"`

	// Seed fixes the placement RNG for reproducible output. Zero means
	// derive a seed from the clock.
	Seed int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// Overrides carries optional parameter values. Pointer fields
// distinguish "absent" from an explicit zero.
type Overrides struct {
	SiteType      *int     `yaml:"site_type,omitempty" json:"site_type,omitempty"`
	Density       *float64 `yaml:"density,omitempty" json:"density,omitempty"`
	FAR           *float64 `yaml:"far,omitempty" json:"far,omitempty"`
	MixRatio      *float64 `yaml:"mix_ratio,omitempty" json:"mix_ratio,omitempty"`
	BuildingStyle *int     `yaml:"building_style,omitempty" json:"building_style,omitempty"`

	// Orientation is in degrees, 0 to 180. A valid value replaces the
	// rotation derived from the site's dominant edge.
	Orientation *float64 `yaml:"orientation,omitempty" json:"orientation,omitempty"`
}

// LoadRequest reads a generation request from a YAML file.
func LoadRequest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}

	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing request YAML: %w", err)
	}

	return &req, nil
}
