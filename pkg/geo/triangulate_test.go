package geo

import "testing"

// --- Triangulation tests ---

func triangleAreaSum(tr Triangulation) float64 {
	sum := 0.0
	for _, t := range tr.Triangles {
		sum += t.Area()
	}
	return sum
}

func TestTriangulateSquare(t *testing.T) {
	tr := Triangulate(unitSquare())
	if len(tr.Triangles) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(tr.Triangles))
	}
	if !approxEqual(triangleAreaSum(tr), 1.0, tolerance) {
		t.Errorf("expected triangle areas to sum to 1.0, got %f", triangleAreaSum(tr))
	}
	if tr.ForcedClips != 0 {
		t.Errorf("expected no forced clips for a square, got %d", tr.ForcedClips)
	}
}

func TestTriangulateLShape(t *testing.T) {
	l := NewPolyline(
		Pt(0, 0, 0), Pt(2, 0, 0), Pt(2, 1, 0), Pt(1, 1, 0), Pt(1, 2, 0), Pt(0, 2, 0),
		Pt(0, 0, 0),
	)
	tr := Triangulate(l)
	if len(tr.Triangles) != 4 {
		t.Fatalf("expected 4 triangles for 6 vertices, got %d", len(tr.Triangles))
	}
	if !approxEqual(triangleAreaSum(tr), l.Area(), tolerance) {
		t.Errorf("expected areas to sum to %f, got %f", l.Area(), triangleAreaSum(tr))
	}
}

func TestTriangulateConvexPentagon(t *testing.T) {
	p := NewPolyline(
		Pt(0, 0, 0), Pt(4, 0, 0), Pt(5, 3, 0), Pt(2, 5, 0), Pt(-1, 3, 0),
		Pt(0, 0, 0),
	)
	tr := Triangulate(p)
	if len(tr.Triangles) != 3 {
		t.Fatalf("expected 3 triangles for 5 vertices, got %d", len(tr.Triangles))
	}
	if !approxEqual(triangleAreaSum(tr), p.Area(), tolerance) {
		t.Errorf("expected areas to sum to %f, got %f", p.Area(), triangleAreaSum(tr))
	}
}

func TestTriangulateTriangle(t *testing.T) {
	tri := NewPolyline(Pt(0, 0, 0), Pt(1, 0, 0), Pt(0, 1, 0), Pt(0, 0, 0))
	tr := Triangulate(tri)
	if len(tr.Triangles) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(tr.Triangles))
	}
	if !approxEqual(tr.Triangles[0].Area(), 0.5, tolerance) {
		t.Errorf("expected area 0.5, got %f", tr.Triangles[0].Area())
	}
}

func TestTriangulateTooFewVertices(t *testing.T) {
	tr := Triangulate(NewPolyline(Pt(0, 0, 0), Pt(1, 0, 0)))
	if len(tr.Triangles) != 0 {
		t.Errorf("expected no triangles, got %d", len(tr.Triangles))
	}
}

func TestTriangulateOctagon(t *testing.T) {
	oct := NewPolyline(
		Pt(1, 0, 0), Pt(2, 0, 0), Pt(3, 1, 0), Pt(3, 2, 0),
		Pt(2, 3, 0), Pt(1, 3, 0), Pt(0, 2, 0), Pt(0, 1, 0),
		Pt(1, 0, 0),
	)
	tr := Triangulate(oct)
	if len(tr.Triangles) != 6 {
		t.Fatalf("expected 6 triangles for 8 vertices, got %d", len(tr.Triangles))
	}
	if !approxEqual(triangleAreaSum(tr), oct.Area(), tolerance) {
		t.Errorf("expected areas to sum to %f, got %f", oct.Area(), triangleAreaSum(tr))
	}
}

func TestTriangulateDegenerateTerminates(t *testing.T) {
	// A self-intersecting ring still terminates with len-2 triangles.
	bowtie := NewPolyline(Pt(0, 0, 0), Pt(1, 1, 0), Pt(1, 0, 0), Pt(0, 1, 0), Pt(0, 0, 0))
	tr := Triangulate(bowtie)
	if len(tr.Triangles) != 2 {
		t.Errorf("expected 2 triangles, got %d", len(tr.Triangles))
	}
}
