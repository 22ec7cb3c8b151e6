package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/topograph/internal/geom"
)

// SVG records drawing calls as SVG elements in logical coordinates. The
// device scale becomes the document size over a logical viewBox.
type SVG struct {
	Width, Height float64
	Background    string

	scale float64
	body  strings.Builder
}

func NewSVG(width, height float64) *SVG {
	return &SVG{Width: width, Height: height, Background: "#ffffff", scale: 1}
}

func (s *SVG) Scale(factor float64) { s.scale = factor }

// ClearRect drops everything drawn so far when the rect covers the view,
// otherwise it paints the background over the rect.
func (s *SVG) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= s.Width && y+h >= s.Height {
		s.body.Reset()
		return
	}
	fmt.Fprintf(&s.body, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\"/>\n", x, y, w, h, s.Background)
}

func (s *SVG) Line(a, b geom.Point, stroke color.Color, width float64) {
	fmt.Fprintf(&s.body, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"%.2f\"/>\n",
		a.X, a.Y, b.X, b.Y, paint(stroke), width)
}

func (s *SVG) Polygon(pts []geom.Point, fill, stroke color.Color) {
	coords := make([]string, len(pts))
	for i, p := range pts {
		coords[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	fmt.Fprintf(&s.body, "<polygon points=\"%s\" fill=\"%s\" stroke=\"%s\"/>\n",
		strings.Join(coords, " "), paint(fill), paint(stroke))
}

func (s *SVG) Circle(c geom.Point, r float64, fill, stroke color.Color) {
	fmt.Fprintf(&s.body, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"%s\" stroke=\"%s\"/>\n",
		c.X, c.Y, r, paint(fill), paint(stroke))
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width*s.scale, s.Height*s.scale, s.Width, s.Height, s.Background)
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func (s *SVG) String() string {
	var sb strings.Builder
	s.WriteTo(&sb)
	return sb.String()
}

func paint(c color.Color) string {
	if c == nil {
		return "none"
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return "none"
	}
	return cc.Hex()
}
