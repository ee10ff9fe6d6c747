// Package history keeps a linear undo/redo stack of full-scene
// snapshots. Every snapshot in and out is a deep copy: the live scene
// keeps mutating (a pencil stroke grows in place), so sharing slices
// with it would corrupt history.
package history

import "sketchroom/internal/shape"

// Stack is the undo/redo history of one session. The cursor always
// points at the snapshot that is currently rendered; -1 means nothing
// has been committed yet.
type Stack struct {
	snapshots []shape.Scene
	cursor    int
}

func New() *Stack {
	return &Stack{cursor: -1}
}

// Push records a new snapshot, discarding any redoable entries past
// the cursor.
func (h *Stack) Push(sc shape.Scene) {
	h.snapshots = append(h.snapshots[:h.cursor+1], sc.Clone())
	h.cursor++
}

// Undo steps the cursor back and returns that snapshot. It reports
// false, leaving everything untouched, when the cursor is already at
// the first entry (or the stack is empty).
func (h *Stack) Undo() (shape.Scene, bool) {
	if h.cursor <= 0 {
		return nil, false
	}
	h.cursor--
	return h.snapshots[h.cursor].Clone(), true
}

// Redo steps the cursor forward and returns that snapshot, reporting
// false at the last entry.
func (h *Stack) Redo() (shape.Scene, bool) {
	if h.cursor < 0 || h.cursor >= len(h.snapshots)-1 {
		return nil, false
	}
	h.cursor++
	return h.snapshots[h.cursor].Clone(), true
}

// Len returns the number of stored snapshots.
func (h *Stack) Len() int { return len(h.snapshots) }
