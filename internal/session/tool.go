package session

import (
	"math"

	"sketchroom/internal/shape"
)

// Tool selects what a pointer gesture produces.
type Tool string

const (
	ToolRect    Tool = "rect"
	ToolCircle  Tool = "circle"
	ToolDiamond Tool = "diamond"
	ToolLine    Tool = "line"
	ToolArrow   Tool = "arrow"
	ToolPencil  Tool = "pencil"
	ToolEraser  Tool = "eraser"
)

// deriveShape builds the committed shape for a two-point gesture from
// the anchor and the release point. Pencil and eraser never come
// through here, and an unknown tool derives nothing.
//
// Width and height are signed; a rect dragged up-left simply has
// negative extents. The circle keeps the signed max(w,h)/2 radius so
// its placement always mirrors the drag direction.
func deriveShape(t Tool, anchor, release shape.Point) shape.Shape {
	w := release.X - anchor.X
	h := release.Y - anchor.Y
	switch t {
	case ToolRect:
		return &shape.Rect{X: anchor.X, Y: anchor.Y, Width: w, Height: h}
	case ToolCircle:
		r := math.Max(w, h) / 2
		return &shape.Circle{CenterX: anchor.X + r, CenterY: anchor.Y + r, Radius: r}
	case ToolDiamond:
		return &shape.Diamond{X: anchor.X, Y: anchor.Y, Width: w, Height: h}
	case ToolLine:
		return &shape.Line{StartX: anchor.X, StartY: anchor.Y, EndX: release.X, EndY: release.Y}
	case ToolArrow:
		return &shape.Arrow{StartX: anchor.X, StartY: anchor.Y, EndX: release.X, EndY: release.Y}
	default:
		return nil
	}
}
