package layout

import (
	"math"

	"github.com/san-kum/topograph/internal/graph"
)

// LinkForce pulls linked nodes toward Distance apart. Each link's strength
// is 1/min(degree) of its endpoints, and the correction is split between
// the ends in proportion to their degree.
type LinkForce struct {
	Distance   float64
	Iterations int

	links     []*graph.Link
	strengths []float64
	bias      []float64
	rnd       Jiggler
}

func NewLink(links []*graph.Link, distance float64) *LinkForce {
	return &LinkForce{links: links, Distance: distance, Iterations: 1}
}

func (f *LinkForce) Initialize(nodes []*graph.Node, rnd Jiggler) {
	f.rnd = rnd
	count := make(map[*graph.Node]int, len(nodes))
	for _, l := range f.links {
		count[l.Source]++
		count[l.Target]++
	}

	f.strengths = make([]float64, len(f.links))
	f.bias = make([]float64, len(f.links))
	for i, l := range f.links {
		cs, ct := float64(count[l.Source]), float64(count[l.Target])
		f.strengths[i] = 1 / math.Min(cs, ct)
		f.bias[i] = cs / (cs + ct)
	}
}

func (f *LinkForce) Apply(alpha float64) {
	for k := 0; k < f.Iterations; k++ {
		for i, l := range f.links {
			src, dst := l.Source, l.Target
			x := dst.X + dst.VX - src.X - src.VX
			y := dst.Y + dst.VY - src.Y - src.VY
			if x == 0 {
				x = jiggle(f.rnd)
			}
			if y == 0 {
				y = jiggle(f.rnd)
			}
			d := math.Sqrt(x*x + y*y)
			d = (d - f.Distance) / d * alpha * f.strengths[i]
			x, y = x*d, y*d

			b := f.bias[i]
			dst.VX -= x * b
			dst.VY -= y * b
			b = 1 - b
			src.VX += x * b
			src.VY += y * b
		}
	}
}

// ManyBodyForce applies a pairwise inverse-distance force to every node
// pair closer than DistanceMax. Negative strength repels.
type ManyBodyForce struct {
	Strength    float64
	DistanceMin float64
	DistanceMax float64

	nodes []*graph.Node
	rnd   Jiggler
}

func NewManyBody(strength float64) *ManyBodyForce {
	return &ManyBodyForce{Strength: strength, DistanceMin: 1, DistanceMax: math.Inf(1)}
}

func (f *ManyBodyForce) Initialize(nodes []*graph.Node, rnd Jiggler) {
	f.nodes, f.rnd = nodes, rnd
}

func (f *ManyBodyForce) Apply(alpha float64) {
	min2 := f.DistanceMin * f.DistanceMin
	max2 := f.DistanceMax * f.DistanceMax

	for _, ni := range f.nodes {
		for _, nj := range f.nodes {
			if ni == nj {
				continue
			}
			x, y := nj.X-ni.X, nj.Y-ni.Y
			l := x*x + y*y
			if l >= max2 {
				continue
			}
			if x == 0 {
				x = jiggle(f.rnd)
				l += x * x
			}
			if y == 0 {
				y = jiggle(f.rnd)
				l += y * y
			}
			if l < min2 {
				l = math.Sqrt(min2 * l)
			}
			w := f.Strength * alpha / l
			ni.VX += x * w
			ni.VY += y * w
		}
	}
}

// CenterForce translates all nodes so their mean position is (X, Y). It
// moves positions directly and ignores alpha.
type CenterForce struct {
	X, Y     float64
	Strength float64

	nodes []*graph.Node
}

func NewCenter(x, y float64) *CenterForce {
	return &CenterForce{X: x, Y: y, Strength: 1}
}

func (f *CenterForce) Initialize(nodes []*graph.Node, _ Jiggler) { f.nodes = nodes }

func (f *CenterForce) Apply(float64) {
	if len(f.nodes) == 0 {
		return
	}
	var sx, sy float64
	for _, n := range f.nodes {
		sx += n.X
		sy += n.Y
	}
	n := float64(len(f.nodes))
	sx = (sx/n - f.X) * f.Strength
	sy = (sy/n - f.Y) * f.Strength
	for _, node := range f.nodes {
		node.X -= sx
		node.Y -= sy
	}
}

// AxisForce nudges nodes toward a target coordinate on one axis. Separate
// X and Y instances with different strengths give an anisotropic layout.
type AxisForce struct {
	Target   float64
	Strength float64
	Vertical bool

	nodes []*graph.Node
}

func NewX(x, strength float64) *AxisForce {
	return &AxisForce{Target: x, Strength: strength}
}

func NewY(y, strength float64) *AxisForce {
	return &AxisForce{Target: y, Strength: strength, Vertical: true}
}

func (f *AxisForce) Initialize(nodes []*graph.Node, _ Jiggler) { f.nodes = nodes }

func (f *AxisForce) Apply(alpha float64) {
	k := f.Strength * alpha
	for _, n := range f.nodes {
		if f.Vertical {
			n.VY += (f.Target - n.Y) * k
		} else {
			n.VX += (f.Target - n.X) * k
		}
	}
}

// CollideForce pushes apart nodes whose collision circles overlap. The
// collision radius is the node radius times Padding.
type CollideForce struct {
	Padding    float64
	Strength   float64
	Iterations int

	nodes []*graph.Node
	radii []float64
	rnd   Jiggler
}

func NewCollide(padding float64, iterations int) *CollideForce {
	if iterations < 1 {
		iterations = 1
	}
	return &CollideForce{Padding: padding, Strength: 1, Iterations: iterations}
}

func (f *CollideForce) Initialize(nodes []*graph.Node, rnd Jiggler) {
	f.nodes, f.rnd = nodes, rnd
	f.radii = make([]float64, len(nodes))
	for i, n := range nodes {
		f.radii[i] = n.Radius * f.Padding
	}
}

func (f *CollideForce) Apply(float64) {
	for k := 0; k < f.Iterations; k++ {
		for i, ni := range f.nodes {
			ri := f.radii[i]
			ri2 := ri * ri
			xi, yi := ni.X+ni.VX, ni.Y+ni.VY

			for j := i + 1; j < len(f.nodes); j++ {
				nj := f.nodes[j]
				rj := f.radii[j]
				r := ri + rj
				x := xi - nj.X - nj.VX
				y := yi - nj.Y - nj.VY
				l := x*x + y*y
				if l >= r*r {
					continue
				}
				if x == 0 {
					x = jiggle(f.rnd)
					l += x * x
				}
				if y == 0 {
					y = jiggle(f.rnd)
					l += y * y
				}
				l = math.Sqrt(l)
				l = (r - l) / l * f.Strength
				x, y = x*l, y*l

				rj2 := rj * rj
				w := rj2 / (ri2 + rj2)
				ni.VX += x * w
				ni.VY += y * w
				w = 1 - w
				nj.VX -= x * w
				nj.VY -= y * w
			}
		}
	}
}
