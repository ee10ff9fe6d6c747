package geometry

import (
	"testing"

	"sketchroom/internal/shape"
)

func TestLineHit(t *testing.T) {
	seg := &shape.Line{StartX: 0, StartY: 0, EndX: 10, EndY: 0}
	cases := []struct {
		p    shape.Point
		want bool
	}{
		{shape.Point{X: 5, Y: 3}, true},   // within tolerance of the shaft
		{shape.Point{X: 5, Y: 8}, false},  // too far
		{shape.Point{X: 15, Y: 0}, true},  // past the end but within clamp distance
		{shape.Point{X: 16, Y: 0}, false}, // past the end and out of reach
	}
	for _, c := range cases {
		if got := Hit(seg, c.p, DefaultTolerance); got != c.want {
			t.Errorf("Hit(line, %v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestZeroLengthLineDegradesToPointDistance(t *testing.T) {
	seg := &shape.Line{StartX: 3, StartY: 3, EndX: 3, EndY: 3}
	if !Hit(seg, shape.Point{X: 6, Y: 7}, 5) {
		t.Error("point exactly 5px away should hit")
	}
	if Hit(seg, shape.Point{X: 9, Y: 9}, 5) {
		t.Error("point further than tolerance should miss")
	}
}

func TestArrowUsesShaftOnly(t *testing.T) {
	a := &shape.Arrow{StartX: 0, StartY: 0, EndX: 100, EndY: 0}
	if !Hit(a, shape.Point{X: 50, Y: 4}, DefaultTolerance) {
		t.Error("point near shaft should hit")
	}
	// Near where a head segment would be drawn, but off the shaft.
	if Hit(a, shape.Point{X: 93, Y: 7}, DefaultTolerance) {
		t.Error("arrowhead geometry must not be hit-testable")
	}
}

func TestRectNormalizesNegativeExtents(t *testing.T) {
	r := &shape.Rect{X: 10, Y: 10, Width: -10, Height: -10}
	if !Hit(r, shape.Point{X: 5, Y: 5}, DefaultTolerance) {
		t.Error("point inside inverted rect should hit")
	}
	if Hit(r, shape.Point{X: 11, Y: 5}, DefaultTolerance) {
		t.Error("point outside inverted rect should miss")
	}
}

// Diamond hit-testing is deliberately its bounding box: the concave
// corners count.
func TestDiamondHitsBoundingBoxCorner(t *testing.T) {
	d := &shape.Diamond{X: 0, Y: 0, Width: 20, Height: 20}
	if !Hit(d, shape.Point{X: 1, Y: 1}, DefaultTolerance) {
		t.Error("bounding-box corner outside the diamond outline should still hit")
	}
}

func TestCircleHit(t *testing.T) {
	c := &shape.Circle{CenterX: 0, CenterY: 0, Radius: 10}
	if !Hit(c, shape.Point{X: 6, Y: 8}, DefaultTolerance) {
		t.Error("point on the rim should hit")
	}
	if Hit(c, shape.Point{X: 8, Y: 8}, DefaultTolerance) {
		t.Error("point outside the radius should miss")
	}
}

// Pencil hits test recorded points only, not the interpolated path
// between them.
func TestPencilHitsPointsNotPath(t *testing.T) {
	p := &shape.Pencil{Points: []shape.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}}
	if !Hit(p, shape.Point{X: 3, Y: 4}, 5) {
		t.Error("point within tolerance of a recorded point should hit")
	}
	if Hit(p, shape.Point{X: 50, Y: 0}, 5) {
		t.Error("midpoint of the segment between recorded points should miss")
	}
}

func TestUnknownShapeNeverHits(t *testing.T) {
	if Hit(nil, shape.Point{}, DefaultTolerance) {
		t.Error("nil shape should never hit")
	}
}
