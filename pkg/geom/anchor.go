package geom

import "fmt"

// Anchor names a reference point on a rectangle.
//
// The string values double as the wire format used by scene files and the
// JSON layout export.
type Anchor string

// The nine anchors of a rectangle.
const (
	AnchorTopLeft      Anchor = "top-left"
	AnchorTopCenter    Anchor = "top-center"
	AnchorTopRight     Anchor = "top-right"
	AnchorCenterLeft   Anchor = "center-left"
	AnchorCenter       Anchor = "center"
	AnchorCenterRight  Anchor = "center-right"
	AnchorBottomLeft   Anchor = "bottom-left"
	AnchorBottomCenter Anchor = "bottom-center"
	AnchorBottomRight  Anchor = "bottom-right"
)

// AnchorNames lists all anchors in reading order (left to right, top to
// bottom). The order is stable for deterministic iteration.
var AnchorNames = []Anchor{
	AnchorTopLeft, AnchorTopCenter, AnchorTopRight,
	AnchorCenterLeft, AnchorCenter, AnchorCenterRight,
	AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight,
}

// ParseAnchor validates a wire-format anchor name.
func ParseAnchor(s string) (Anchor, error) {
	a := Anchor(s)
	switch a {
	case AnchorTopLeft, AnchorTopCenter, AnchorTopRight,
		AnchorCenterLeft, AnchorCenter, AnchorCenterRight,
		AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight:
		return a, nil
	}
	return "", fmt.Errorf("unknown anchor %q", s)
}

// factors returns the (fx, fy) interpolation factors of the anchor, each in
// {0, 0.5, 1}, measuring from the top-left corner.
func (a Anchor) factors() (fx, fy float64) {
	switch a {
	case AnchorTopLeft:
		return 0, 0
	case AnchorTopCenter:
		return 0.5, 0
	case AnchorTopRight:
		return 1, 0
	case AnchorCenterLeft:
		return 0, 0.5
	case AnchorCenter:
		return 0.5, 0.5
	case AnchorCenterRight:
		return 1, 0.5
	case AnchorBottomLeft:
		return 0, 1
	case AnchorBottomCenter:
		return 0.5, 1
	case AnchorBottomRight:
		return 1, 1
	default:
		return 0, 0
	}
}

// Anchor returns the absolute position of the named anchor on r.
func (r Rect) Anchor(a Anchor) Point {
	fx, fy := a.factors()
	return Point{X: r.X + r.Width*fx, Y: r.Y + r.Height*fy}
}

// Offset returns the anchor's position relative to the rectangle's top-left
// corner, i.e. independent of where the rectangle sits.
func (a Anchor) Offset(s Size) Point {
	fx, fy := a.factors()
	return Point{X: s.Width * fx, Y: s.Height * fy}
}

// Anchors resolves all nine anchors of r at once.
func Anchors(r Rect) map[Anchor]Point {
	out := make(map[Anchor]Point, len(AnchorNames))
	for _, a := range AnchorNames {
		out[a] = r.Anchor(a)
	}
	return out
}
