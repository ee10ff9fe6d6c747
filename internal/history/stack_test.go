package history

import (
	"reflect"
	"testing"

	"sketchroom/internal/shape"
)

func sceneWith(n int) shape.Scene {
	sc := make(shape.Scene, 0, n)
	for i := 0; i < n; i++ {
		sc = append(sc, &shape.Rect{X: float64(i)})
	}
	return sc
}

func TestEmptyStackIsNoOp(t *testing.T) {
	h := New()
	if _, ok := h.Undo(); ok {
		t.Error("undo on empty stack should be a no-op")
	}
	if _, ok := h.Redo(); ok {
		t.Error("redo on empty stack should be a no-op")
	}
}

func TestUndoFloorsAtFirstEntry(t *testing.T) {
	h := New()
	for n := 1; n <= 3; n++ {
		h.Push(sceneWith(n))
	}
	for i := 0; i < 2; i++ {
		if _, ok := h.Undo(); !ok {
			t.Fatalf("undo %d should succeed", i+1)
		}
	}
	// Cursor is now at the first entry; a third undo must not move it.
	if _, ok := h.Undo(); ok {
		t.Error("undo past the first entry should be a no-op")
	}
	got, ok := h.Redo()
	if !ok || len(got) != 2 {
		t.Errorf("redo after floored undo: got %d shapes, ok=%v", len(got), ok)
	}
}

func TestRedoImmediatelyAfterPushIsNoOp(t *testing.T) {
	h := New()
	h.Push(sceneWith(1))
	h.Push(sceneWith(2))
	if _, ok := h.Redo(); ok {
		t.Error("nothing beyond the cursor right after a push")
	}
}

func TestUndoRedoSymmetry(t *testing.T) {
	h := New()
	h.Push(sceneWith(1))
	current := sceneWith(2)
	h.Push(current)

	if _, ok := h.Undo(); !ok {
		t.Fatal("undo failed")
	}
	got, ok := h.Redo()
	if !ok {
		t.Fatal("redo failed")
	}
	if !reflect.DeepEqual(got, current) {
		t.Errorf("redo after undo: got %#v, want %#v", got, current)
	}
}

func TestPushTruncatesRedoableTail(t *testing.T) {
	h := New()
	h.Push(sceneWith(1))
	h.Push(sceneWith(2))
	h.Push(sceneWith(3))
	h.Undo()
	h.Undo()
	h.Push(sceneWith(9))

	if _, ok := h.Redo(); ok {
		t.Error("redoable entries must be discarded by the new push")
	}
	if h.Len() != 2 {
		t.Errorf("stack length = %d, want 2", h.Len())
	}
	got, ok := h.Undo()
	if !ok || len(got) != 1 {
		t.Errorf("undo after truncating push: got %d shapes, ok=%v", len(got), ok)
	}
}

// Snapshots must be insulated from the live scene in both directions.
func TestSnapshotsAreDeepCopies(t *testing.T) {
	h := New()
	stroke := &shape.Pencil{Points: []shape.Point{{X: 1, Y: 1}}}
	live := shape.Scene{stroke}
	h.Push(live)

	// The stroke keeps growing after the snapshot was taken.
	stroke.Points = append(stroke.Points, shape.Point{X: 2, Y: 2})

	h.Push(shape.Scene{})
	got, _ := h.Undo()
	if n := len(got[0].(*shape.Pencil).Points); n != 1 {
		t.Errorf("snapshot has %d points, want 1", n)
	}

	// And mutating what Undo returned must not corrupt the stored copy.
	got[0].(*shape.Pencil).Points[0] = shape.Point{X: 99, Y: 99}
	h.Redo()
	again, _ := h.Undo()
	if p := again[0].(*shape.Pencil).Points[0]; p.X != 1 {
		t.Errorf("stored snapshot mutated through returned copy: %v", p)
	}
}
