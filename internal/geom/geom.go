package geom

import "math"

// Bevel rotates the arrowhead frame so the right-angle corner of the
// triangle leads along the link direction.
const Bevel = math.Pi / 4

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Dist(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// Circle is a node's rendered disc.
type Circle struct {
	C Point
	R float64
}

// Angle returns the direction of the vector from a to b in radians, in
// (-π, π]. Coincident points yield 0.
func Angle(a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dy, dx)
}

// BoundaryOffset returns center + radius·(cos angle, sin angle).
func BoundaryOffset(center Point, radius, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{center.X + radius*cos, center.Y + radius*sin}
}

// TrimmedSource is where a link from src to dst leaves src's rim.
func TrimmedSource(src, dst Circle) Point {
	return BoundaryOffset(src.C, src.R, Angle(src.C, dst.C))
}

// TrimmedTarget is where a link from src to dst meets dst's rim.
func TrimmedTarget(src, dst Circle) Point {
	return BoundaryOffset(dst.C, dst.R, Angle(dst.C, src.C))
}

// Arrowhead returns the triangle tip, tip+R(φ)(-size,0), tip+R(φ)(0,-size)
// with φ = angle - Bevel. The 90° corner sits on tip and points along angle.
func Arrowhead(tip Point, angle, size float64) [3]Point {
	sin, cos := math.Sincos(angle - Bevel)
	return [3]Point{
		tip,
		{tip.X - size*cos, tip.Y - size*sin},
		{tip.X + size*sin, tip.Y - size*cos},
	}
}

// Clamp limits p to the rectangle [0,w]×[0,h].
func Clamp(p Point, w, h float64) Point {
	return Point{math.Max(0, math.Min(w, p.X)), math.Max(0, math.Min(h, p.Y))}
}
