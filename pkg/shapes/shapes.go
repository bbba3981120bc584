// Package shapes provides drawable leaf content for layout trees.
//
// Every shape reports its intrinsic bounding-box size, which is all the
// layout engine needs: a circle of radius 60 occupies a 120x120 box and is
// stacked, aligned and positioned through that box like any other element.
// The actual outline only matters at render time, where the shape fits its
// path into the resolved content box.
package shapes

import (
	"fmt"
	"math"
	"strings"

	"github.com/grzegorzj/easel/pkg/geom"
)

// Style carries the paint attributes a renderer applies to a shape's
// outline. Zero values fall back to the renderer's defaults.
type Style struct {
	Fill        string  `json:"fill,omitempty" toml:"fill"`
	Stroke      string  `json:"stroke,omitempty" toml:"stroke"`
	StrokeWidth float64 `json:"stroke_width,omitempty" toml:"stroke_width"`
	Opacity     float64 `json:"opacity,omitempty" toml:"opacity"`
}

// Shape is drawable leaf content: an intrinsic size for the layout engine
// and an SVG path fitted to the resolved content box for the renderer.
type Shape interface {
	IntrinsicSize() geom.Size
	// Path returns SVG path data for the shape's outline fitted to box,
	// in absolute coordinates.
	Path(box geom.Rect) string
	// Paint returns the shape's style.
	Paint() Style
}

// =============================================================================
// Circle
// =============================================================================

// Circle is a circle of fixed radius. When the resolved box is not square
// the outline becomes the inscribed ellipse.
type Circle struct {
	Radius float64
	Style  Style
}

func (c Circle) IntrinsicSize() geom.Size {
	return geom.Size{Width: 2 * c.Radius, Height: 2 * c.Radius}
}

func (c Circle) Path(box geom.Rect) string {
	rx, ry := box.Width/2, box.Height/2
	cx, cy := box.X+rx, box.Y+ry
	// Two half-ellipse arcs make a closed outline.
	return fmt.Sprintf("M %s %s A %s %s 0 1 0 %s %s A %s %s 0 1 0 %s %s Z",
		f(cx-rx), f(cy), f(rx), f(ry), f(cx+rx), f(cy),
		f(rx), f(ry), f(cx-rx), f(cy))
}

func (c Circle) Paint() Style { return c.Style }

// =============================================================================
// Rectangle
// =============================================================================

// Rectangle is an axis-aligned rectangle, optionally with rounded corners.
type Rectangle struct {
	Width        float64
	Height       float64
	CornerRadius float64
	Style        Style
}

func (r Rectangle) IntrinsicSize() geom.Size {
	return geom.Size{Width: r.Width, Height: r.Height}
}

func (r Rectangle) Path(box geom.Rect) string {
	cr := r.CornerRadius
	if max := math.Min(box.Width, box.Height) / 2; cr > max {
		cr = max
	}
	if cr <= 0 {
		return fmt.Sprintf("M %s %s H %s V %s H %s Z",
			f(box.X), f(box.Y), f(box.Right()), f(box.Bottom()), f(box.X))
	}
	return fmt.Sprintf(
		"M %s %s H %s A %s %s 0 0 1 %s %s V %s A %s %s 0 0 1 %s %s H %s A %s %s 0 0 1 %s %s V %s A %s %s 0 0 1 %s %s Z",
		f(box.X+cr), f(box.Y),
		f(box.Right()-cr),
		f(cr), f(cr), f(box.Right()), f(box.Y+cr),
		f(box.Bottom()-cr),
		f(cr), f(cr), f(box.Right()-cr), f(box.Bottom()),
		f(box.X+cr),
		f(cr), f(cr), f(box.X), f(box.Bottom()-cr),
		f(box.Y+cr),
		f(cr), f(cr), f(box.X+cr), f(box.Y))
}

func (r Rectangle) Paint() Style { return r.Style }

// =============================================================================
// Triangle
// =============================================================================

// Triangle is an isoceles triangle with its apex at the top-center of its
// box and its base along the bottom edge.
type Triangle struct {
	Width  float64
	Height float64
	Style  Style
}

func (t Triangle) IntrinsicSize() geom.Size {
	return geom.Size{Width: t.Width, Height: t.Height}
}

func (t Triangle) Path(box geom.Rect) string {
	return fmt.Sprintf("M %s %s L %s %s L %s %s Z",
		f(box.X+box.Width/2), f(box.Y),
		f(box.Right()), f(box.Bottom()),
		f(box.X), f(box.Bottom()))
}

func (t Triangle) Paint() Style { return t.Style }

// =============================================================================
// Regular polygon
// =============================================================================

// Polygon is a regular polygon with the given number of sides, inscribed in
// the circle of the given radius, first vertex at the top.
type Polygon struct {
	Sides  int
	Radius float64
	Style  Style
}

func (p Polygon) IntrinsicSize() geom.Size {
	return geom.Size{Width: 2 * p.Radius, Height: 2 * p.Radius}
}

func (p Polygon) Path(box geom.Rect) string {
	n := p.Sides
	if n < 3 {
		n = 3
	}
	rx, ry := box.Width/2, box.Height/2
	cx, cy := box.X+rx, box.Y+ry

	var b strings.Builder
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		x := cx + rx*math.Cos(angle)
		y := cy + ry*math.Sin(angle)
		if i == 0 {
			fmt.Fprintf(&b, "M %s %s", f(x), f(y))
		} else {
			fmt.Fprintf(&b, " L %s %s", f(x), f(y))
		}
	}
	b.WriteString(" Z")
	return b.String()
}

func (p Polygon) Paint() Style { return p.Style }

// f formats a coordinate compactly, trimming trailing zeros so path data
// stays stable across runs.
func f(v float64) string {
	// Rounding keeps float noise like 59.99999999999999 out of the output.
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
