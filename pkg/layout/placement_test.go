package layout

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibtiwahab/urbangen/pkg/geo"
)

func square(side float64) geo.Polyline {
	return geo.NewPolyline(
		geo.Pt(0, 0, 0), geo.Pt(side, 0, 0), geo.Pt(side, side, 0), geo.Pt(0, side, 0), geo.Pt(0, 0, 0),
	)
}

func TestScatterPositionsPlacesRequestedCount(t *testing.T) {
	boundary := square(100)
	got := ScatterPositions(boundary, 5, 10, 10, 5, 0, rand.New(rand.NewSource(1)))
	require.Len(t, got, 5)

	clearance := math.Max(10, 10) + 5
	for i, p := range got {
		assert.True(t, footprintInside(boundary, p, 10, 10), "footprint at %+v exits the boundary", p)
		for j := i + 1; j < len(got); j++ {
			assert.GreaterOrEqual(t, p.DistanceTo(got[j]), clearance)
		}
	}
}

func TestScatterPositionsShortfallTerminates(t *testing.T) {
	// A 15m site cannot hold two 10x12 buildings 15m apart; the attempt
	// budget must run out and return a partial result, not hang.
	got := ScatterPositions(square(15), 5, 10, 12, 15, 0, rand.New(rand.NewSource(7)))
	assert.NotEmpty(t, got)
	assert.Less(t, len(got), 5)
}

func TestScatterPositionsNoRoom(t *testing.T) {
	got := ScatterPositions(square(5), 3, 10, 10, 5, 0, rand.New(rand.NewSource(1)))
	assert.Empty(t, got)
}

func TestScatterPositionsDeterministicWithSeed(t *testing.T) {
	boundary := square(100)
	a := ScatterPositions(boundary, 5, 10, 10, 5, 0, rand.New(rand.NewSource(42)))
	b := ScatterPositions(boundary, 5, 10, 10, 5, 0, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestGridPositionsCount(t *testing.T) {
	boundary := square(100)
	got := GridPositions(boundary, 20, 20, 5)
	// The sweep steps 25m from the 10m inset edge: 10, 35, 60, 85 per axis.
	require.Len(t, got, 16)
	for _, p := range got {
		assert.True(t, footprintInside(boundary, p, 20, 20))
	}
}

func TestGridPositionsRejectsProtrudingCorners(t *testing.T) {
	// L-shaped site: the notch removes cells whose corners poke out even
	// though their centers stay inside.
	l := geo.NewPolyline(
		geo.Pt(0, 0, 0), geo.Pt(40, 0, 0), geo.Pt(40, 20, 0), geo.Pt(20, 20, 0),
		geo.Pt(20, 40, 0), geo.Pt(0, 40, 0), geo.Pt(0, 0, 0),
	)
	got := GridPositions(l, 10, 10, 2)
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.True(t, footprintInside(l, p, 10, 10), "position %+v has a corner outside the L", p)
	}

	bad := geo.Pt(18, 18, 0)
	assert.True(t, l.Contains(bad))
	assert.False(t, footprintInside(l, bad, 10, 10))
}
