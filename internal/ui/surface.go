package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// objectSurface implements render.Surface by accumulating Fyne canvas
// objects. One surface is built per repaint; the widget renderer hands
// the result straight to Fyne.
type objectSurface struct {
	strokeColor color.Color
	strokeWidth float32
	objects     []fyne.CanvasObject
}

func newObjectSurface(strokeWidth float32) *objectSurface {
	return &objectSurface{
		strokeColor: color.Black,
		strokeWidth: strokeWidth,
	}
}

func (s *objectSurface) Clear() {
	s.objects = s.objects[:0]
}

func (s *objectSurface) StrokeRect(x, y, w, h float64) {
	// Fyne rectangles need a non-negative size; a drag up or left of
	// the anchor arrives here with negative extents.
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	r := canvas.NewRectangle(color.Transparent)
	r.StrokeColor = s.strokeColor
	r.StrokeWidth = s.strokeWidth
	r.Move(fyne.NewPos(float32(x), float32(y)))
	r.Resize(fyne.NewSize(float32(w), float32(h)))
	s.objects = append(s.objects, r)
}

func (s *objectSurface) StrokeCircle(cx, cy, r float64) {
	r = math.Abs(r)
	c := canvas.NewCircle(color.Transparent)
	c.StrokeColor = s.strokeColor
	c.StrokeWidth = s.strokeWidth
	c.Position1 = fyne.NewPos(float32(cx-r), float32(cy-r))
	c.Position2 = fyne.NewPos(float32(cx+r), float32(cy+r))
	s.objects = append(s.objects, c)
}

func (s *objectSurface) StrokeLine(x0, y0, x1, y1 float64) {
	l := canvas.NewLine(s.strokeColor)
	l.StrokeWidth = s.strokeWidth
	l.Position1 = fyne.NewPos(float32(x0), float32(y0))
	l.Position2 = fyne.NewPos(float32(x1), float32(y1))
	s.objects = append(s.objects, l)
}
