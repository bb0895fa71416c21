package layout

import "github.com/ibtiwahab/urbangen/pkg/geo"

// FootprintRings builds the per-floor vertex rings for a rectangular
// footprint centered at center. Each ring is 12 values, four corners as
// (x, y, z) triples at z = baseZ + floor*floorHeight, in the order
// (-w/2,-d/2), (+w/2,-d/2), (+w/2,+d/2), (-w/2,+d/2).
func FootprintRings(center geo.Point, width, depth float64, floors int, floorHeight, baseZ float64) [][]float64 {
	hw, hd := width/2, depth/2
	rings := make([][]float64, 0, floors)
	for f := 0; f < floors; f++ {
		z := baseZ + float64(f)*floorHeight
		rings = append(rings, []float64{
			center.X - hw, center.Y - hd, z,
			center.X + hw, center.Y - hd, z,
			center.X + hw, center.Y + hd, z,
			center.X - hw, center.Y + hd, z,
		})
	}
	return rings
}

// FloorHeights returns the per-floor height list for a building with a
// uniform floor height.
func FloorHeights(floors int, floorHeight float64) []float64 {
	hs := make([]float64, floors)
	for i := range hs {
		hs[i] = floorHeight
	}
	return hs
}

// ExtrudedFloor is one floor of an extruded building: the base outline
// lifted to its Z level.
type ExtrudedFloor struct {
	Vertices []geo.Point `json:"vertices"`
	Height   float64     `json:"height"`
	ZLevel   float64     `json:"z_level"`
}

// ExtrudedBuilding is a building massing built by stacking a base outline.
type ExtrudedBuilding struct {
	Base        []geo.Point     `json:"base"`
	Floors      []ExtrudedFloor `json:"floors"`
	TotalHeight float64         `json:"total_height"`
}

// ExtrudeBuilding stacks the base outline once per entry in floorHeights,
// accumulating Z levels from baseZ. Unlike FootprintRings it accepts any
// outline, not only rectangles, and honors per-floor heights.
func ExtrudeBuilding(base []geo.Point, floorHeights []float64, baseZ float64) ExtrudedBuilding {
	b := ExtrudedBuilding{Base: append([]geo.Point(nil), base...)}
	z := baseZ
	for _, h := range floorHeights {
		fl := ExtrudedFloor{Vertices: make([]geo.Point, len(base)), Height: h, ZLevel: z}
		for i, v := range base {
			fl.Vertices[i] = geo.Pt(v.X, v.Y, z)
		}
		b.Floors = append(b.Floors, fl)
		z += h
	}
	b.TotalHeight = z - baseZ
	return b
}
