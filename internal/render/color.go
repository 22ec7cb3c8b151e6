package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// palette caches parsed colours by their source string.
type palette struct {
	fallback color.Color
	cache    map[string]color.Color
}

func newPalette(fallback color.Color) *palette {
	return &palette{fallback: fallback, cache: make(map[string]color.Color)}
}

// get parses hex colours such as "#4c9be8" or "#fff". Unparsable input
// yields the fallback.
func (p *palette) get(s string) color.Color {
	if c, ok := p.cache[s]; ok {
		return c
	}
	c := ParseColor(s, p.fallback)
	p.cache[s] = c
	return c
}

func ParseColor(s string, fallback color.Color) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
