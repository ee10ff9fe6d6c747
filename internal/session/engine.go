// Package session owns the live state of one open room view: the
// canonical shape list, the undo/redo history, the active tool and the
// pointer gesture in flight. Pointer events and inbound room messages
// go in; scene mutations, repaints and outbound broadcasts come out.
//
// The engine is written for one logical event loop. Callers deliver
// pointer events and network messages serially (the UI marshals
// inbound messages onto its event thread); the engine itself takes no
// locks.
package session

import (
	"log"

	"sketchroom/internal/geometry"
	"sketchroom/internal/history"
	"sketchroom/internal/protocol"
	"sketchroom/internal/shape"
)

// Renderer repaints the drawing surface. Render repaints the committed
// scene; RenderPreview additionally overlays an uncommitted shape.
// Both are synchronous full repaints.
type Renderer interface {
	Render(sc shape.Scene)
	RenderPreview(sc shape.Scene, preview shape.Shape)
}

// Broadcaster is the outbound half of the room channel. Send is
// fire-and-forget: no acknowledgment, no retry, no buffering.
type Broadcaster interface {
	Send(msg protocol.Message)
}

// Engine is the drawing session for one room view.
type Engine struct {
	roomID  string
	scene   shape.Scene
	history *history.Stack

	tool        Tool
	pointerDown bool
	anchor      shape.Point
	stroke      *shape.Pencil // in-progress pencil, already in scene

	renderer  Renderer
	channel   Broadcaster
	tolerance float64
	closed    bool
}

// New builds an engine over the room's already-persisted shapes.
// initial is adopted as-is and must not be mutated by the caller
// afterwards. channel may be nil for a board with no transport.
func New(roomID string, initial shape.Scene, r Renderer, ch Broadcaster) *Engine {
	e := &Engine{
		roomID:    roomID,
		scene:     initial,
		history:   history.New(),
		tool:      ToolPencil,
		renderer:  r,
		channel:   ch,
		tolerance: geometry.DefaultTolerance,
	}
	// The startup scene is the floor of the undo stack: undoing all
	// local commits lands here, never on a scene the user has not
	// seen.
	e.history.Push(e.scene)
	e.renderer.Render(e.scene)
	return e
}

// Scene exposes the live shape list for export and rendering. Callers
// must treat it as read-only.
func (e *Engine) Scene() shape.Scene { return e.scene }

// Tool returns the active tool.
func (e *Engine) Tool() Tool { return e.tool }

// SetEraseTolerance overrides the hit-test slop in pixels.
func (e *Engine) SetEraseTolerance(tol float64) {
	if tol > 0 {
		e.tolerance = tol
	}
}

// SetTool switches the active tool. Switching mid-gesture aborts the
// gesture: the following pointer-up will emit nothing, and an
// uncommitted pencil stroke is dropped from the scene.
func (e *Engine) SetTool(t Tool) {
	if e.closed {
		return
	}
	if e.pointerDown {
		e.pointerDown = false
		if e.stroke != nil {
			e.dropStroke()
			e.renderer.Render(e.scene)
		}
	}
	e.tool = t
}

// PointerDown starts a gesture at p.
func (e *Engine) PointerDown(p shape.Point) {
	if e.closed {
		return
	}
	if e.tool == ToolEraser {
		// The eraser commits immediately: one snapshot per gesture,
		// taken here, even when nothing was under the pointer.
		e.eraseAt(p)
		e.history.Push(e.scene)
		e.pointerDown = true
		e.renderer.Render(e.scene)
		return
	}
	e.pointerDown = true
	e.anchor = p
	if e.tool == ToolPencil {
		e.stroke = &shape.Pencil{Points: []shape.Point{p}}
		e.scene = append(e.scene, e.stroke)
		e.renderer.Render(e.scene)
	}
}

// PointerMove extends the gesture to p. Without a registered
// pointer-down it does nothing.
func (e *Engine) PointerMove(p shape.Point) {
	if e.closed || !e.pointerDown {
		return
	}
	switch e.tool {
	case ToolEraser:
		e.eraseAt(p)
		e.renderer.Render(e.scene)
	case ToolPencil:
		if e.stroke != nil {
			e.stroke.Points = append(e.stroke.Points, p)
		}
		e.renderer.Render(e.scene)
	default:
		preview := deriveShape(e.tool, e.anchor, p)
		if preview == nil {
			// Unknown tool: no preview, just the committed scene.
			e.renderer.Render(e.scene)
			return
		}
		e.renderer.RenderPreview(e.scene, preview)
	}
}

// PointerUp ends the gesture at p, committing the resulting shape.
// A pointer-up with no matching pointer-down emits nothing.
func (e *Engine) PointerUp(p shape.Point) {
	if e.closed || !e.pointerDown {
		return
	}
	e.pointerDown = false

	switch e.tool {
	case ToolEraser:
		// Snapshots were taken on down; nothing more to commit.
		e.renderer.Render(e.scene)
		return
	case ToolPencil:
		s := e.stroke
		e.stroke = nil
		if s == nil {
			return
		}
		e.commit(s)
	default:
		s := deriveShape(e.tool, e.anchor, p)
		if s == nil {
			e.renderer.Render(e.scene)
			return
		}
		e.scene = append(e.scene, s)
		e.commit(s)
	}
}

// commit snapshots, repaints and broadcasts a shape that is already in
// the scene.
func (e *Engine) commit(s shape.Shape) {
	e.history.Push(e.scene)
	e.renderer.Render(e.scene)
	e.broadcast(s)
}

// Undo steps back one snapshot. Safe no-op at the first entry.
func (e *Engine) Undo() {
	if e.closed {
		return
	}
	sc, ok := e.history.Undo()
	if !ok {
		return
	}
	e.scene = sc
	e.renderer.Render(e.scene)
}

// Redo steps forward one snapshot. Safe no-op at the last entry.
func (e *Engine) Redo() {
	if e.closed {
		return
	}
	sc, ok := e.history.Redo()
	if !ok {
		return
	}
	e.scene = sc
	e.renderer.Render(e.scene)
}

// HandleRemote applies one inbound room message. Remote shapes append
// in receipt order, repaint, and never touch history or re-broadcast.
// Anything malformed or foreign is logged and skipped.
func (e *Engine) HandleRemote(msg protocol.Message) {
	if e.closed {
		return
	}
	if msg.Kind != protocol.KindShapeBroadcast {
		log.Printf("[session] ignoring message kind %q", msg.Kind)
		return
	}
	if msg.RoomID != e.roomID {
		log.Printf("[session] ignoring message for room %q", msg.RoomID)
		return
	}
	s, err := msg.DecodeShape()
	if err != nil {
		log.Printf("[session] skipping malformed broadcast: %v", err)
		return
	}
	e.scene = append(e.scene, s)
	e.renderer.Render(e.scene)
}

// Close detaches the engine. Later events are ignored and any
// in-progress stroke or preview is discarded in memory.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	if e.stroke != nil {
		e.dropStroke()
	}
	e.pointerDown = false
	e.closed = true
}

// eraseAt removes every shape under p, preserving the order of the
// survivors.
func (e *Engine) eraseAt(p shape.Point) {
	kept := e.scene[:0]
	for _, s := range e.scene {
		if !geometry.Hit(s, p, e.tolerance) {
			kept = append(kept, s)
		}
	}
	// Clear the tail so removed shapes do not linger in the backing
	// array.
	for i := len(kept); i < len(e.scene); i++ {
		e.scene[i] = nil
	}
	e.scene = kept
}

// dropStroke removes the uncommitted pencil stroke from the scene.
// The stroke is tracked by reference, so remote appends after it do
// not confuse the removal.
func (e *Engine) dropStroke() {
	for i, s := range e.scene {
		if s == shape.Shape(e.stroke) {
			e.scene = append(e.scene[:i], e.scene[i+1:]...)
			break
		}
	}
	e.stroke = nil
}

func (e *Engine) broadcast(s shape.Shape) {
	if e.channel == nil {
		return
	}
	msg, err := protocol.ShapeBroadcast(e.roomID, s)
	if err != nil {
		log.Printf("[session] dropping broadcast: %v", err)
		return
	}
	e.channel.Send(msg)
}
