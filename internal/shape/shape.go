package shape

// Point is a canvas coordinate in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Kind discriminates the shape variants on the wire.
type Kind string

const (
	KindRect    Kind = "rect"
	KindCircle  Kind = "circle"
	KindDiamond Kind = "diamond"
	KindLine    Kind = "line"
	KindArrow   Kind = "arrow"
	KindPencil  Kind = "pencil"
)

// Shape is the closed set of drawable primitives. A committed shape is
// immutable; only a Pencil that is still being drawn grows, and only
// through the engine that created it.
type Shape interface {
	Kind() Kind
	Clone() Shape
}

// Rect is an axis-aligned rectangle. Width and Height may be negative
// when the drag ran up or left of the anchor.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r *Rect) Kind() Kind   { return KindRect }
func (r *Rect) Clone() Shape { c := *r; return &c }

type Circle struct {
	CenterX float64 `json:"centerX"`
	CenterY float64 `json:"centerY"`
	Radius  float64 `json:"radius"`
}

func (c *Circle) Kind() Kind   { return KindCircle }
func (c *Circle) Clone() Shape { d := *c; return &d }

// Diamond is drawn through the midpoints of its bounding box edges.
// Same negative-extent rule as Rect.
type Diamond struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (d *Diamond) Kind() Kind   { return KindDiamond }
func (d *Diamond) Clone() Shape { c := *d; return &c }

type Line struct {
	StartX float64 `json:"startX"`
	StartY float64 `json:"startY"`
	EndX   float64 `json:"endX"`
	EndY   float64 `json:"endY"`
}

func (l *Line) Kind() Kind   { return KindLine }
func (l *Line) Clone() Shape { c := *l; return &c }

// Arrow renders as a line plus a fixed-length head at the end point.
type Arrow struct {
	StartX float64 `json:"startX"`
	StartY float64 `json:"startY"`
	EndX   float64 `json:"endX"`
	EndY   float64 `json:"endY"`
}

func (a *Arrow) Kind() Kind   { return KindArrow }
func (a *Arrow) Clone() Shape { c := *a; return &c }

// Pencil is a freehand stroke. Points are append-only while the stroke
// is in progress and frozen once committed.
type Pencil struct {
	Points []Point `json:"points"`
}

func (p *Pencil) Kind() Kind { return KindPencil }

func (p *Pencil) Clone() Shape {
	c := &Pencil{}
	if p.Points != nil {
		c.Points = make([]Point, len(p.Points))
		copy(c.Points, p.Points)
	}
	return c
}

// Scene is the ordered shape list of one room view. Insertion order is
// draw order is z-order.
type Scene []Shape

// Clone deep-copies the scene so a snapshot cannot be corrupted by a
// stroke that keeps growing after the copy was taken.
func (s Scene) Clone() Scene {
	if s == nil {
		return nil
	}
	out := make(Scene, len(s))
	for i, sh := range s {
		out[i] = sh.Clone()
	}
	return out
}
