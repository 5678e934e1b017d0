// Package landing holds the scroll state of the three marketing pages.
package landing

import (
	"fmt"
	"math"

	"github.com/nfrund/oncampus/internal/domain"
)

// Scroll thresholds of the landing pages.
const (
	EmphasisThreshold = 0.3
	InvertThreshold   = 0.4
)

type rgb struct{ r, g, b float64 }

// Background stops sit at 0, 0.3 and 0.5 of the scroll range.
var stops = [3]float64{0, 0.3, 0.5}

var palettes = map[domain.Role][3]rgb{
	domain.RoleUniversity: {{238, 242, 255}, {249, 250, 251}, {255, 255, 255}},
	domain.RoleEmployer:   {{0x1B, 0x1F, 0x3B}, {0x2A, 0x2F, 0x4F}, {255, 255, 255}},
	domain.RoleStudent:    {{0x1B, 0x1F, 0x3B}, {0x2A, 0x2F, 0x4F}, {255, 255, 255}},
}

// Page is the only state a landing page keeps: how far it has been scrolled.
type Page struct {
	role     domain.Role
	progress float64
}

// New creates a page scrolled to the top.
func New(role domain.Role) *Page {
	return &Page{role: role}
}

func (p *Page) Role() domain.Role { return p.role }
func (p *Page) Progress() float64 { return p.progress }

// SetScrollProgress stores the scroll fraction, clamped to [0, 1].
func (p *Page) SetScrollProgress(v float64) {
	switch {
	case v < 0 || math.IsNaN(v):
		v = 0
	case v > 1:
		v = 1
	}
	p.progress = v
}

// Emphasised reports whether the feature section is shown at full opacity.
func (p *Page) Emphasised() bool {
	return p.progress > EmphasisThreshold
}

// Inverted reports whether headings switch to dark text on the light background.
func (p *Page) Inverted() bool {
	return p.progress > InvertThreshold
}

// Background returns the page color for the current progress as #rrggbb.
func (p *Page) Background() string {
	palette, ok := palettes[p.role]
	if !ok {
		palette = palettes[domain.RoleUniversity]
	}

	c := palette[len(palette)-1]
	for i := 0; i < len(stops)-1; i++ {
		if p.progress <= stops[i+1] {
			t := (p.progress - stops[i]) / (stops[i+1] - stops[i])
			c = lerp(palette[i], palette[i+1], t)
			break
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", int(c.r+0.5), int(c.g+0.5), int(c.b+0.5))
}

func lerp(a, b rgb, t float64) rgb {
	return rgb{
		r: a.r + (b.r-a.r)*t,
		g: a.g + (b.g-a.g)*t,
		b: a.b + (b.b-a.b)*t,
	}
}
