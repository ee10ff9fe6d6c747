// Package ui is the Fyne front of the session engine: a board widget
// that feeds pointer events in and paints the frames the engine asks
// for, plus the toolbar and the app shell.
package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"sketchroom/internal/render"
	"sketchroom/internal/session"
	"sketchroom/internal/shape"
)

// BoardWidget is the drawing surface. All drawing semantics live in
// the engine; the widget only translates Fyne pointer events and
// implements the engine's Renderer by keeping the last frame it was
// asked to paint.
type BoardWidget struct {
	widget.BaseWidget

	mu      sync.RWMutex
	engine  *session.Engine
	scene   shape.Scene
	preview shape.Shape

	strokeWidth float32
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ session.Renderer = (*BoardWidget)(nil)
var _ render.Surface = (*objectSurface)(nil)

func NewBoardWidget(strokeWidth float32) *BoardWidget {
	b := &BoardWidget{strokeWidth: strokeWidth}
	b.ExtendBaseWidget(b)
	return b
}

// SetEngine attaches the session engine once it exists. The engine is
// constructed after the widget because it paints through it.
func (b *BoardWidget) SetEngine(e *session.Engine) {
	b.mu.Lock()
	b.engine = e
	b.mu.Unlock()
}

// Render implements session.Renderer.
func (b *BoardWidget) Render(sc shape.Scene) {
	b.mu.Lock()
	b.scene = sc
	b.preview = nil
	b.mu.Unlock()
	b.Refresh()
}

// RenderPreview implements session.Renderer.
func (b *BoardWidget) RenderPreview(sc shape.Scene, preview shape.Shape) {
	b.mu.Lock()
	b.scene = sc
	b.preview = preview
	b.mu.Unlock()
	b.Refresh()
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if eng := b.getEngine(); eng != nil {
		eng.PointerDown(toPoint(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if eng := b.getEngine(); eng != nil {
		eng.PointerUp(toPoint(e.Position))
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if eng := b.getEngine(); eng != nil {
		eng.PointerMove(toPoint(e.Position))
	}
}

func (b *BoardWidget) DragEnd()                      {}
func (b *BoardWidget) MouseIn(*desktop.MouseEvent)   {}
func (b *BoardWidget) MouseOut()                     {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) getEngine() *session.Engine {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.engine
}

func toPoint(p fyne.Position) shape.Point {
	return shape.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(color.White),
	}
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

// Objects rebuilds the full frame from the last scene the engine
// rendered. Full repaint every time, same as the engine contract.
func (r *boardRenderer) Objects() []fyne.CanvasObject {
	r.board.mu.RLock()
	sc := r.board.scene
	preview := r.board.preview
	width := r.board.strokeWidth
	r.board.mu.RUnlock()

	surface := newObjectSurface(width)
	render.DrawWithPreview(surface, sc, preview)

	objects := make([]fyne.CanvasObject, 0, len(surface.objects)+1)
	objects = append(objects, r.background)
	return append(objects, surface.objects...)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}
