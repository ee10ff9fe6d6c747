// Package render walks a scene and emits stroke primitives onto a
// Surface. The walk is pure; everything side-effectful (clearing,
// actual painting, the background fill) lives behind the Surface so
// the renderer can be tested against a recorder.
package render

import (
	"math"

	"sketchroom/internal/shape"
)

// Surface is the minimal primitive set a backend must provide. Every
// repaint starts with Clear (which also paints the background) and is
// a full redraw; scenes are small enough that correctness beats frame
// cost. Implementations must accept negative rect extents.
type Surface interface {
	Clear()
	StrokeRect(x, y, w, h float64)
	StrokeCircle(cx, cy, r float64)
	StrokeLine(x0, y0, x1, y1 float64)
}

// Arrowhead geometry: two segments of fixed length at 30 degrees
// either side of the reverse shaft direction, forming a V at the end.
const (
	HeadLength = 10
	headAngle  = math.Pi / 6
)

// Draw repaints the whole scene in order.
func Draw(dst Surface, sc shape.Scene) {
	dst.Clear()
	for _, s := range sc {
		DrawShape(dst, s)
	}
}

// DrawWithPreview repaints the scene, then the in-progress shape on
// top of it, without the preview ever entering the scene.
func DrawWithPreview(dst Surface, sc shape.Scene, preview shape.Shape) {
	dst.Clear()
	for _, s := range sc {
		DrawShape(dst, s)
	}
	if preview != nil {
		DrawShape(dst, preview)
	}
}

// DrawShape strokes a single shape.
func DrawShape(dst Surface, s shape.Shape) {
	switch v := s.(type) {
	case *shape.Rect:
		dst.StrokeRect(v.X, v.Y, v.Width, v.Height)
	case *shape.Circle:
		dst.StrokeCircle(v.CenterX, v.CenterY, v.Radius)
	case *shape.Diamond:
		drawDiamond(dst, v)
	case *shape.Line:
		dst.StrokeLine(v.StartX, v.StartY, v.EndX, v.EndY)
	case *shape.Arrow:
		drawArrow(dst, v)
	case *shape.Pencil:
		drawPencil(dst, v)
	}
}

// drawDiamond connects the midpoints of the bounding box edges.
func drawDiamond(dst Surface, d *shape.Diamond) {
	top := shape.Point{X: d.X + d.Width/2, Y: d.Y}
	right := shape.Point{X: d.X + d.Width, Y: d.Y + d.Height/2}
	bottom := shape.Point{X: d.X + d.Width/2, Y: d.Y + d.Height}
	left := shape.Point{X: d.X, Y: d.Y + d.Height/2}
	dst.StrokeLine(top.X, top.Y, right.X, right.Y)
	dst.StrokeLine(right.X, right.Y, bottom.X, bottom.Y)
	dst.StrokeLine(bottom.X, bottom.Y, left.X, left.Y)
	dst.StrokeLine(left.X, left.Y, top.X, top.Y)
}

func drawArrow(dst Surface, a *shape.Arrow) {
	dst.StrokeLine(a.StartX, a.StartY, a.EndX, a.EndY)
	angle := math.Atan2(a.EndY-a.StartY, a.EndX-a.StartX)
	for _, off := range [2]float64{headAngle, -headAngle} {
		hx := a.EndX - HeadLength*math.Cos(angle+off)
		hy := a.EndY - HeadLength*math.Sin(angle+off)
		dst.StrokeLine(a.EndX, a.EndY, hx, hy)
	}
}

func drawPencil(dst Surface, p *shape.Pencil) {
	if len(p.Points) == 1 {
		// A stroke that never moved still leaves a dot.
		q := p.Points[0]
		dst.StrokeLine(q.X, q.Y, q.X, q.Y)
		return
	}
	for i := 1; i < len(p.Points); i++ {
		a, b := p.Points[i-1], p.Points[i]
		dst.StrokeLine(a.X, a.Y, b.X, b.Y)
	}
}
