package export

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/san-kum/topograph/internal/geom"
	"github.com/san-kum/topograph/internal/render"
)

// PNG rasterises drawing calls into a backing store sized for the view.
type PNG struct {
	Background color.Color
	dc         *gg.Context
}

func NewPNG(v render.View) *PNG {
	w, h := v.Backing()
	return &PNG{Background: color.White, dc: gg.NewContext(int(w), int(h))}
}

func (p *PNG) Scale(factor float64) {
	p.dc.Identity()
	p.dc.Scale(factor, factor)
}

func (p *PNG) ClearRect(x, y, w, h float64) {
	p.dc.SetColor(p.Background)
	p.dc.DrawRectangle(x, y, w, h)
	p.dc.Fill()
}

func (p *PNG) Line(a, b geom.Point, stroke color.Color, width float64) {
	if stroke == nil {
		return
	}
	p.dc.SetColor(stroke)
	p.dc.SetLineWidth(width)
	p.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	p.dc.Stroke()
}

func (p *PNG) Polygon(pts []geom.Point, fill, stroke color.Color) {
	if len(pts) == 0 {
		return
	}
	p.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
	p.dc.ClosePath()
	p.paint(fill, stroke)
}

func (p *PNG) Circle(c geom.Point, r float64, fill, stroke color.Color) {
	p.dc.DrawCircle(c.X, c.Y, r)
	p.paint(fill, stroke)
}

func (p *PNG) paint(fill, stroke color.Color) {
	if fill != nil {
		p.dc.SetColor(fill)
		p.dc.FillPreserve()
	}
	if stroke != nil {
		p.dc.SetColor(stroke)
		p.dc.SetLineWidth(1)
		p.dc.StrokePreserve()
	}
	p.dc.ClearPath()
}

func (p *PNG) Image() image.Image { return p.dc.Image() }

func (p *PNG) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := p.dc.EncodePNG(cw)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
