package render

import (
	"image/color"

	"github.com/san-kum/topograph/internal/geom"
	"github.com/san-kum/topograph/internal/graph"
)

const (
	DefaultScale     = 2.0
	DefaultArrowSize = 6.0
	DefaultLineWidth = 1.0
)

// View is the logical size of the drawing area and the device pixel
// ratio of its backing store.
type View struct {
	Width, Height float64
	Scale         float64
}

// Backing returns the backing-store size in device pixels.
func (v View) Backing() (w, h float64) {
	return v.Width * v.Scale, v.Height * v.Scale
}

type Style struct {
	ArrowSize float64 `yaml:"arrow_size" toml:"arrow_size"`
	LineWidth float64 `yaml:"line_width" toml:"line_width"`
	Fallback  string  `yaml:"fallback_color" toml:"fallback_color"`
}

func DefaultStyle() Style {
	return Style{ArrowSize: DefaultArrowSize, LineWidth: DefaultLineWidth, Fallback: "#cccccc"}
}

// Pipeline redraws a graph on a surface. It never mutates the graph.
type Pipeline struct {
	surface Surface
	view    View
	style   Style
	colors  *palette
}

func NewPipeline(s Surface, v View, st Style) *Pipeline {
	fallback := ParseColor(st.Fallback, color.Gray{Y: 0xcc})
	return &Pipeline{surface: s, view: v, style: st, colors: newPalette(fallback)}
}

func (p *Pipeline) View() View { return p.view }

// Clear erases the whole backing-store rectangle.
func (p *Pipeline) Clear() {
	w, h := p.view.Backing()
	p.surface.ClearRect(0, 0, w, h)
}

func (p *Pipeline) DrawLinks(links []*graph.Link) {
	for _, l := range links {
		src, dst := l.Source.Circle(), l.Target.Circle()
		start := geom.TrimmedSource(src, dst)
		end := geom.TrimmedTarget(src, dst)
		c := p.colors.get(l.Color)

		p.surface.Line(start, end, c, p.style.LineWidth)
		tri := geom.Arrowhead(end, geom.Angle(src.C, dst.C), p.style.ArrowSize)
		p.surface.Polygon(tri[:], c, c)
	}
}

func (p *Pipeline) DrawNodes(nodes []*graph.Node) {
	for _, n := range nodes {
		c := p.colors.get(n.Color)
		p.surface.Circle(n.Pos(), n.Radius, c, c)
	}
}

// Redraw clears the surface then draws links before nodes.
func (p *Pipeline) Redraw(g *graph.Graph) {
	p.Clear()
	p.DrawLinks(g.Links)
	p.DrawNodes(g.Nodes)
}
