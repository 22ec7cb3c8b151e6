package viz

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/topograph/internal/geom"
)

// Surface draws onto a braille Canvas. The logical view is stretched over
// the canvas dots, so the terminal size sets the resolution.
type Surface struct {
	Canvas        *Canvas
	Width, Height float64
}

func NewSurface(cols, rows int, width, height float64) *Surface {
	return &Surface{Canvas: NewCanvas(cols, rows), Width: width, Height: height}
}

// Resize replaces the canvas; the caller redraws.
func (s *Surface) Resize(cols, rows int) { s.Canvas = NewCanvas(cols, rows) }

// Scale is a no-op: the dot density is fixed by the terminal grid.
func (s *Surface) Scale(float64) {}

func (s *Surface) dot(p geom.Point) (float64, float64) {
	w, h := s.Canvas.Dots()
	return p.X * float64(w) / s.Width, p.Y * float64(h) / s.Height
}

// ToLogical maps the centre of a terminal cell to logical coordinates.
func (s *Surface) ToLogical(col, row int) geom.Point {
	return geom.Pt(
		(float64(col)+0.5)/float64(s.Canvas.Width)*s.Width,
		(float64(row)+0.5)/float64(s.Canvas.Height)*s.Height,
	)
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	x0, y0 := s.dot(geom.Pt(x, y))
	x1, y1 := s.dot(geom.Pt(x+w, y+h))
	s.Canvas.ClearRect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}

func (s *Surface) Line(a, b geom.Point, stroke color.Color, _ float64) {
	if stroke == nil {
		return
	}
	s.Canvas.Pen = hex(stroke)
	ax, ay := s.dot(a)
	bx, by := s.dot(b)
	s.Canvas.DrawLine(round(ax), round(ay), round(bx), round(by))
}

func (s *Surface) Polygon(pts []geom.Point, fill, stroke color.Color) {
	xs, ys := make([]float64, len(pts)), make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = s.dot(p)
	}
	if fill != nil {
		s.Canvas.Pen = hex(fill)
		s.Canvas.FillPolygon(xs, ys)
	}
	if stroke != nil {
		s.Canvas.Pen = hex(stroke)
		for i := range pts {
			j := (i + 1) % len(pts)
			s.Canvas.DrawLine(round(xs[i]), round(ys[i]), round(xs[j]), round(ys[j]))
		}
	}
}

// Circles are always filled; a one-dot outline reads as noise.
func (s *Surface) Circle(c geom.Point, r float64, fill, stroke color.Color) {
	cx, cy := s.dot(c)
	w, _ := s.Canvas.Dots()
	rd := max(1, round(r*float64(w)/s.Width))
	switch {
	case fill != nil:
		s.Canvas.Pen = hex(fill)
	case stroke != nil:
		s.Canvas.Pen = hex(stroke)
	default:
		return
	}
	s.Canvas.FillCircle(round(cx), round(cy), rd)
}

func hex(c color.Color) string {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cc.Hex()
}

func round(v float64) int { return int(math.Round(v)) }
