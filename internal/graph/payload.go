package graph

import (
	"fmt"
	"math"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Payload is the wire form of a graph. JSON documents decode too, since
// JSON is a subset of YAML.
type Payload struct {
	Nodes []NodeSpec `yaml:"nodes" json:"nodes"`
	Links []LinkSpec `yaml:"links" json:"links"`
}

type NodeSpec struct {
	ID     string   `yaml:"id" json:"id"`
	X      *float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y      *float64 `yaml:"y,omitempty" json:"y,omitempty"`
	FX     *float64 `yaml:"fx,omitempty" json:"fx,omitempty"`
	FY     *float64 `yaml:"fy,omitempty" json:"fy,omitempty"`
	Radius float64  `yaml:"radius,omitempty" json:"radius,omitempty"`
	Color  string   `yaml:"color,omitempty" json:"color,omitempty"`
}

type LinkSpec struct {
	Source string `yaml:"source" json:"source"`
	Target string `yaml:"target" json:"target"`
	Color  string `yaml:"color,omitempty" json:"color,omitempty"`
}

// Defaults fill in node and link attributes a payload leaves out.
type Defaults struct {
	Radius    float64
	NodeColor string
	LinkColor string
}

func DefaultDefaults() Defaults {
	return Defaults{Radius: 8, NodeColor: "#4c9be8", LinkColor: "#999999"}
}

// Decode parses a JSON or YAML payload. An empty document is an empty
// payload.
func Decode(data []byte) (Payload, error) {
	var p Payload
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("decode payload: %w", err)
	}
	return p, nil
}

func Load(path string) (Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, err
	}
	p, err := Decode(data)
	if err != nil {
		return Payload{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Build materialises a Graph from p. Nodes without coordinates get NaN so
// the layout engine places them; nodes without an id get a random one.
func Build(p Payload, d Defaults) (*Graph, error) {
	g := New()
	for _, spec := range p.Nodes {
		n := &Node{
			ID:     spec.ID,
			X:      math.NaN(),
			Y:      math.NaN(),
			Radius: spec.Radius,
			Color:  spec.Color,
		}
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		if n.Radius <= 0 {
			n.Radius = d.Radius
		}
		if n.Color == "" {
			n.Color = d.NodeColor
		}
		if spec.X != nil && spec.Y != nil {
			n.X, n.Y = *spec.X, *spec.Y
		}
		if spec.FX != nil && spec.FY != nil {
			n.Pin(*spec.FX, *spec.FY)
		}
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}

	for _, spec := range p.Links {
		color := spec.Color
		if color == "" {
			color = d.LinkColor
		}
		if _, err := g.Connect(spec.Source, spec.Target, color); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Sample is a small hub-and-ring graph used when no payload is given.
func Sample() Payload {
	palette := []string{"#e8674c", "#4c9be8", "#5cc46a", "#e8c14c"}
	var p Payload
	p.Nodes = append(p.Nodes, NodeSpec{ID: "hub", Radius: 14, Color: "#dddddd"})
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("n%d", i)
		p.Nodes = append(p.Nodes, NodeSpec{ID: id, Radius: 6 + float64(i%3)*2, Color: palette[i%len(palette)]})
		p.Links = append(p.Links, LinkSpec{Source: "hub", Target: id})
		p.Links = append(p.Links, LinkSpec{Source: id, Target: fmt.Sprintf("n%d", (i+1)%12)})
	}
	return p
}
