package render

import (
	"image/color"

	"github.com/san-kum/topograph/internal/geom"
)

type OpKind int

const (
	OpScale OpKind = iota
	OpClear
	OpLine
	OpPolygon
	OpCircle
)

func (k OpKind) String() string {
	switch k {
	case OpScale:
		return "scale"
	case OpClear:
		return "clear"
	case OpLine:
		return "line"
	case OpPolygon:
		return "polygon"
	case OpCircle:
		return "circle"
	}
	return "unknown"
}

// Op is one recorded Surface call. Value holds the scale factor, line
// width or circle radius depending on Kind; clear rectangles are stored as
// two corner points.
type Op struct {
	Kind   OpKind
	Points []geom.Point
	Fill   color.Color
	Stroke color.Color
	Value  float64
}

// Recorder is a Surface that stores every call in order.
type Recorder struct {
	ops []Op
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Scale(factor float64) {
	r.ops = append(r.ops, Op{Kind: OpScale, Value: factor})
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.ops = append(r.ops, Op{Kind: OpClear, Points: []geom.Point{{X: x, Y: y}, {X: x + w, Y: y + h}}})
}

func (r *Recorder) Line(a, b geom.Point, stroke color.Color, width float64) {
	r.ops = append(r.ops, Op{Kind: OpLine, Points: []geom.Point{a, b}, Stroke: stroke, Value: width})
}

func (r *Recorder) Polygon(pts []geom.Point, fill, stroke color.Color) {
	cp := make([]geom.Point, len(pts))
	copy(cp, pts)
	r.ops = append(r.ops, Op{Kind: OpPolygon, Points: cp, Fill: fill, Stroke: stroke})
}

func (r *Recorder) Circle(c geom.Point, radius float64, fill, stroke color.Color) {
	r.ops = append(r.ops, Op{Kind: OpCircle, Points: []geom.Point{c}, Fill: fill, Stroke: stroke, Value: radius})
}

func (r *Recorder) Ops() []Op { return r.ops }

func (r *Recorder) Reset() { r.ops = nil }

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}
