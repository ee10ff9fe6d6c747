// Package geometry answers "is this point on that shape" for the
// eraser. The rules are deliberately asymmetric: rect and diamond use
// their whole bounding box, line and arrow only their shaft within a
// tight tolerance, pencil only its recorded points. Changing any of
// them changes erase behavior users can feel.
package geometry

import (
	"math"

	"sketchroom/internal/shape"
)

// DefaultTolerance is the erase slop in pixels.
const DefaultTolerance = 5

// Hit reports whether p lies on s within tol pixels.
func Hit(s shape.Shape, p shape.Point, tol float64) bool {
	switch v := s.(type) {
	case *shape.Rect:
		return inBox(p, v.X, v.Y, v.Width, v.Height)
	case *shape.Diamond:
		// Bounding box on purpose: the concave corners count as part
		// of the diamond for erasing.
		return inBox(p, v.X, v.Y, v.Width, v.Height)
	case *shape.Circle:
		return math.Hypot(p.X-v.CenterX, p.Y-v.CenterY) <= v.Radius
	case *shape.Line:
		return segmentDistance(p, v.StartX, v.StartY, v.EndX, v.EndY) <= tol
	case *shape.Arrow:
		// Shaft only; the head is not hit-testable.
		return segmentDistance(p, v.StartX, v.StartY, v.EndX, v.EndY) <= tol
	case *shape.Pencil:
		for _, q := range v.Points {
			if math.Hypot(p.X-q.X, p.Y-q.Y) <= tol {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// inBox normalizes negative extents before testing, since drags up or
// left of the anchor produce negative width/height.
func inBox(p shape.Point, x, y, w, h float64) bool {
	x0, x1 := x, x+w
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 := y, y+h
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return p.X >= x0 && p.X <= x1 && p.Y >= y0 && p.Y <= y1
}

// segmentDistance is the perpendicular distance from p to the segment
// (x0,y0)-(x1,y1), clamped to the segment ends. A zero-length segment
// degrades to plain point distance.
func segmentDistance(p shape.Point, x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.X-x0, p.Y-y0)
	}
	t := ((p.X-x0)*dx + (p.Y-y0)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(p.X-(x0+t*dx), p.Y-(y0+t*dy))
}
