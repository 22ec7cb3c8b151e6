package metrics

import (
	"math"

	"github.com/san-kum/topograph/internal/graph"
)

// Metric observes the graph after each layout tick.
type Metric interface {
	Name() string
	Observe(g *graph.Graph)
	Value() float64
	Reset()
}

// KineticEnergy is the total ½|v|² of the free nodes at the last
// observation. It falls towards zero as the layout settles.
type KineticEnergy struct {
	value float64
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (e *KineticEnergy) Name() string { return "kinetic_energy" }

func (e *KineticEnergy) Observe(g *graph.Graph) {
	e.value = 0
	for _, n := range g.Nodes {
		if _, _, ok := n.Fixed(); ok {
			continue
		}
		e.value += 0.5 * (n.VX*n.VX + n.VY*n.VY)
	}
}

func (e *KineticEnergy) Value() float64 { return e.value }
func (e *KineticEnergy) Reset()         { e.value = 0 }

// LinkStress is the mean relative deviation of link lengths from the
// target distance. Self-loops are ignored.
type LinkStress struct {
	distance float64
	value    float64
}

func NewLinkStress(distance float64) *LinkStress {
	return &LinkStress{distance: distance}
}

func (s *LinkStress) Name() string { return "link_stress" }

func (s *LinkStress) Observe(g *graph.Graph) {
	var sum float64
	var count int
	for _, l := range g.Links {
		if l.SelfLoop() || s.distance <= 0 {
			continue
		}
		d := l.Source.Pos().Dist(l.Target.Pos())
		sum += math.Abs(d-s.distance) / s.distance
		count++
	}
	s.value = 0
	if count > 0 {
		s.value = sum / float64(count)
	}
}

func (s *LinkStress) Value() float64 { return s.value }
func (s *LinkStress) Reset()         { s.value = 0 }

// Overlap counts node pairs whose circles, grown by padding, intersect.
type Overlap struct {
	padding float64
	value   float64
}

func NewOverlap(padding float64) *Overlap {
	if padding <= 0 {
		padding = 1
	}
	return &Overlap{padding: padding}
}

func (o *Overlap) Name() string { return "overlap" }

func (o *Overlap) Observe(g *graph.Graph) {
	count := 0
	for i, a := range g.Nodes {
		for _, b := range g.Nodes[i+1:] {
			if a.Pos().Dist(b.Pos()) < (a.Radius+b.Radius)*o.padding {
				count++
			}
		}
	}
	o.value = float64(count)
}

func (o *Overlap) Value() float64 { return o.value }
func (o *Overlap) Reset()         { o.value = 0 }

// Containment is the fraction of observations in which every node lies
// inside the view.
type Containment struct {
	width, height float64
	violations    int
	samples       int
}

func NewContainment(width, height float64) *Containment {
	return &Containment{width: width, height: height}
}

func (c *Containment) Name() string { return "containment" }

func (c *Containment) Observe(g *graph.Graph) {
	c.samples++
	for _, n := range g.Nodes {
		if n.X < 0 || n.Y < 0 || n.X > c.width || n.Y > c.height {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}
