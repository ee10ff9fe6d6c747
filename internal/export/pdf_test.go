package export

import (
	"os"
	"path/filepath"
	"testing"

	"sketchroom/internal/shape"
)

func TestPDFWritesEveryVariant(t *testing.T) {
	sc := shape.Scene{
		&shape.Rect{X: 10, Y: 10, Width: 120, Height: 60},
		&shape.Rect{X: 200, Y: 200, Width: -30, Height: -30},
		&shape.Circle{CenterX: 300, CenterY: 100, Radius: 40},
		&shape.Diamond{X: 400, Y: 50, Width: 80, Height: 80},
		&shape.Line{StartX: 0, StartY: 0, EndX: 500, EndY: 300},
		&shape.Arrow{StartX: 50, StartY: 250, EndX: 200, EndY: 250},
		&shape.Pencil{Points: []shape.Point{{X: 1, Y: 1}, {X: 5, Y: 9}, {X: 9, Y: 1}}},
	}

	path := filepath.Join(t.TempDir(), "scene.pdf")
	if err := PDF(path, sc); err != nil {
		t.Fatalf("export: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported PDF is empty")
	}
}

func TestPDFHandlesEmptyScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := PDF(path, nil); err != nil {
		t.Fatalf("empty scene export: %v", err)
	}
}
