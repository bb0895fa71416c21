package plan

// Result is the generation response. The four collections are aligned:
// entry i of BuildingLayersHeights and BuildingLayersVertices describe
// building i. Field names match the upstream clients, camelCase included.
type Result struct {
	// BuildingLayersHeights holds, per building, the height of each floor.
	BuildingLayersHeights [][]float64 `json:"buildingLayersHeights"`

	// BuildingLayersVertices holds, per building, one flattened
	// rectangle ring (12 values) per floor at that floor's base z.
	BuildingLayersVertices [][][]float64 `json:"buildingLayersVertices"`

	// SubSiteVertices holds the flattened site boundaries. The current
	// pipeline emits exactly one.
	SubSiteVertices [][]float64 `json:"subSiteVertices"`

	// SubSiteSetbackVertices holds the flattened setback rings, raised
	// 0.2 above the site plane. Empty when the setback collapses.
	SubSiteSetbackVertices [][]float64 `json:"subSiteSetbackVertices"`
}
