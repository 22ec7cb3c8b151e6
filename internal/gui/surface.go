package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/topograph/internal/geom"
)

// Surface draws onto the raylib framebuffer. Logical coordinates are
// mapped to window pixels through a Camera2D whose zoom is the device
// scale; drawing calls must happen between Begin and End.
type Surface struct {
	Background rl.Color
	camera     rl.Camera2D
}

func NewSurface(bg rl.Color) *Surface {
	return &Surface{Background: bg, camera: rl.Camera2D{Zoom: 1}}
}

func (s *Surface) Scale(factor float64) { s.camera.Zoom = float32(factor) }

func (s *Surface) Begin() { rl.BeginMode2D(s.camera) }
func (s *Surface) End()   { rl.EndMode2D() }

// ToLogical converts a window position to logical coordinates.
func (s *Surface) ToLogical(v rl.Vector2) geom.Point {
	w := rl.GetScreenToWorld2D(v, s.camera)
	return geom.Pt(float64(w.X), float64(w.Y))
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), s.Background)
}

func (s *Surface) Line(a, b geom.Point, stroke color.Color, width float64) {
	rl.DrawLineEx(vec(a), vec(b), float32(width), rlColor(stroke))
}

func (s *Surface) Polygon(pts []geom.Point, fill, stroke color.Color) {
	if len(pts) < 3 {
		return
	}
	vs := make([]rl.Vector2, len(pts))
	for i, p := range pts {
		vs[i] = vec(p)
	}
	// raylib culls clockwise fans.
	if signedArea(pts) > 0 {
		for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
			vs[i], vs[j] = vs[j], vs[i]
		}
	}
	if fill != nil {
		rl.DrawTriangleFan(vs, rlColor(fill))
	}
	if stroke != nil {
		for i := range vs {
			rl.DrawLineV(vs[i], vs[(i+1)%len(vs)], rlColor(stroke))
		}
	}
}

func (s *Surface) Circle(c geom.Point, r float64, fill, stroke color.Color) {
	if fill != nil {
		rl.DrawCircleV(vec(c), float32(r), rlColor(fill))
	}
	if stroke != nil {
		rl.DrawCircleLines(int32(c.X), int32(c.Y), float32(r), rlColor(stroke))
	}
}

func vec(p geom.Point) rl.Vector2 { return rl.NewVector2(float32(p.X), float32(p.Y)) }

func rlColor(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// signedArea is positive for polygons wound clockwise on a y-down screen.
func signedArea(pts []geom.Point) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
