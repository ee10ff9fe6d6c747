// Package export writes the current scene to a PDF. It reuses the
// renderer's scene walk through a gofpdf-backed Surface, so the page
// shows exactly what the board shows.
package export

import (
	"math"

	"github.com/jung-kurt/gofpdf"

	"sketchroom/internal/render"
	"sketchroom/internal/shape"
)

// Canvas pixels per PDF millimetre.
const pxPerMM = 3

// PDF renders the scene onto a single A4 landscape page at path.
func PDF(path string, sc shape.Scene) error {
	doc := gofpdf.New("L", "mm", "A4", "")
	doc.AddPage()
	doc.SetDrawColor(0, 0, 0)
	doc.SetLineWidth(0.5)

	render.Draw(&pdfSurface{doc: doc}, sc)
	return doc.OutputFileAndClose(path)
}

type pdfSurface struct {
	doc *gofpdf.Fpdf
}

// Clear is a no-op: the page starts blank and is drawn exactly once.
func (s *pdfSurface) Clear() {}

func (s *pdfSurface) StrokeRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	s.doc.Rect(x/pxPerMM, y/pxPerMM, w/pxPerMM, h/pxPerMM, "D")
}

func (s *pdfSurface) StrokeCircle(cx, cy, r float64) {
	s.doc.Circle(cx/pxPerMM, cy/pxPerMM, math.Abs(r)/pxPerMM, "D")
}

func (s *pdfSurface) StrokeLine(x0, y0, x1, y1 float64) {
	s.doc.Line(x0/pxPerMM, y0/pxPerMM, x1/pxPerMM, y1/pxPerMM)
}
