package render

import (
	"image/color"

	"github.com/san-kum/topograph/internal/geom"
)

// Surface is a 2D drawing target addressed in logical coordinates.
type Surface interface {
	// Scale sets the logical-to-device transform. Called once at setup.
	Scale(factor float64)
	ClearRect(x, y, w, h float64)
	Line(a, b geom.Point, stroke color.Color, width float64)
	Polygon(pts []geom.Point, fill, stroke color.Color)
	Circle(c geom.Point, r float64, fill, stroke color.Color)
}
