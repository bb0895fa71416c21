package plan

import (
	"testing"

	"github.com/ibtiwahab/urbangen/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatSquare(min, max float64) []float64 {
	return []float64{
		min, min, 0,
		max, min, 0,
		max, max, 0,
		min, max, 0,
		min, min, 0,
	}
}

func TestAnalyzeSquare(t *testing.T) {
	a, err := Analyze(flatSquare(0, 10), 1e-6)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, a.Area, 1e-6)
	assert.InDelta(t, 40.0, a.Perimeter, 1e-6)
	assert.True(t, a.Closed)
	assert.True(t, a.Valid)
	assert.Equal(t, 5, a.VertexCount)
	require.Len(t, a.Centroid, 3)
	assert.InDelta(t, 5.0, a.Centroid[0], 1e-6)
	assert.InDelta(t, 5.0, a.Centroid[1], 1e-6)
	assert.InDelta(t, 0.0, a.MainOrientation, 1e-9)
}

func TestAnalyzeRejectsBadShape(t *testing.T) {
	_, err := Analyze([]float64{0, 0, 0, 1}, 1e-6)
	require.ErrorIs(t, err, ErrVertexStride)

	_, err = Analyze([]float64{0, 0, 0, 1, 1, 1}, 1e-6)
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestCheckGeometryAllPass(t *testing.T) {
	opts := CheckOptions{Closure: true, SelfIntersection: true, Planarity: true}
	check, report, err := CheckGeometry(flatSquare(0, 10), opts, 1e-6)
	require.NoError(t, err)

	assert.True(t, check.Valid)
	require.NotNil(t, check.Closed)
	assert.True(t, *check.Closed)
	require.NotNil(t, check.SelfIntersects)
	assert.False(t, *check.SelfIntersects)
	require.NotNil(t, check.Planar)
	assert.True(t, *check.Planar)
	assert.Empty(t, report.Warnings)
}

func TestCheckGeometryBowtie(t *testing.T) {
	bowtie := []float64{
		0, 0, 0,
		10, 10, 0,
		10, 0, 0,
		0, 10, 0,
		0, 0, 0,
	}
	opts := CheckOptions{SelfIntersection: true}
	check, report, err := CheckGeometry(bowtie, opts, 1e-9)
	require.NoError(t, err)

	assert.False(t, check.Valid)
	require.NotNil(t, check.SelfIntersects)
	assert.True(t, *check.SelfIntersects)
	assert.Len(t, report.Warnings, 1)

	// Unrequested checks stay out of the output.
	assert.Nil(t, check.Closed)
	assert.Nil(t, check.Planar)
}

func TestOffsetBoundaryInward(t *testing.T) {
	out, report, err := OffsetBoundary(flatSquare(0, 10), 1, false, 1e-6)
	require.NoError(t, err)
	require.Empty(t, report.Warnings)

	assert.Equal(t, "ok", out.Outcome)
	assert.Equal(t, geo.MethodVertexOffset, out.Method)

	shrunk := geo.PolylineFromFlat(out.Boundary)
	assert.Less(t, shrunk.Area(), 100.0)
	assert.Greater(t, shrunk.Area(), 0.0)
}

func TestOffsetBoundaryOutward(t *testing.T) {
	out, _, err := OffsetBoundary(flatSquare(0, 10), 1, true, 1e-6)
	require.NoError(t, err)

	grown := geo.PolylineFromFlat(out.Boundary)
	assert.Greater(t, grown.Area(), 100.0)
}

func TestOffsetBoundaryCollapse(t *testing.T) {
	out, report, err := OffsetBoundary(flatSquare(0, 1), 10, false, 1e-6)
	require.NoError(t, err)

	assert.Equal(t, "failed", out.Outcome)
	assert.Empty(t, out.Boundary)
	assert.Len(t, report.Warnings, 1)
}

func TestIntersectionContainment(t *testing.T) {
	inner := flatSquare(2, 8)
	outer := flatSquare(0, 10)

	rep, err := ClassifyIntersection(inner, outer, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, "a_inside_b", rep.Relationship)

	rep, err = ClassifyIntersection(outer, inner, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, "b_inside_a", rep.Relationship)
}

func TestIntersectionOverlap(t *testing.T) {
	a := flatSquare(0, 10)
	b := flatSquare(5, 15)

	rep, err := ClassifyIntersection(a, b, 1e-9)
	require.NoError(t, err)

	assert.Equal(t, "overlap", rep.Relationship)
	assert.Equal(t, 2, rep.Count)
}

func TestIntersectionEdgeOnly(t *testing.T) {
	a := flatSquare(0, 10)
	// A tall thin rectangle through the middle of a: edges cross but no
	// vertex of either boundary lies inside the other.
	b := []float64{
		4, -5, 0,
		6, -5, 0,
		6, 15, 0,
		4, 15, 0,
		4, -5, 0,
	}

	rep, err := ClassifyIntersection(a, b, 1e-9)
	require.NoError(t, err)

	assert.Equal(t, "edge_intersection", rep.Relationship)
	assert.Equal(t, 4, rep.Count)
	assert.Len(t, rep.Points, 12)
}

func TestIntersectionSeparate(t *testing.T) {
	rep, err := ClassifyIntersection(flatSquare(0, 10), flatSquare(20, 30), 1e-9)
	require.NoError(t, err)

	assert.Equal(t, "separate", rep.Relationship)
	assert.Equal(t, 0, rep.Count)
}

func TestEngineInfo(t *testing.T) {
	info := EngineInfo()

	assert.Equal(t, "urbangen", info.Engine)
	assert.Equal(t, 8, info.MaxBuildings)
	assert.Equal(t, 2, info.MinFloors)
	assert.Equal(t, 15, info.MaxFloors)
	assert.Equal(t, []string{"residential", "office", "commercial", "mixed"}, info.Styles)
	assert.Len(t, info.Strategies, 3)
}
