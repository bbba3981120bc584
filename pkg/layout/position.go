package layout

import (
	"github.com/grzegorzj/easel/pkg/errors"
	"github.com/grzegorzj/easel/pkg/geom"
)

// BoxRef selects the coordinate geometry a PositionSpec is measured against.
type BoxRef string

const (
	// RefBorderBox measures anchors on border boxes (the default).
	RefBorderBox BoxRef = "border"
	// RefContentBox measures anchors on content boxes.
	RefContentBox BoxRef = "content"
	// RefArtboard measures against the artboard's coordinate space
	// regardless of nesting. Target anchors use border-box geometry;
	// literal points are artboard coordinates. Used for cross-subtree
	// annotation positioning.
	RefArtboard BoxRef = "artboard"
)

// ParseBoxRef converts a wire-format box reference. The empty string maps to
// RefBorderBox.
func ParseBoxRef(s string) (BoxRef, bool) {
	switch BoxRef(s) {
	case "":
		return RefBorderBox, true
	case RefBorderBox, RefContentBox, RefArtboard:
		return BoxRef(s), true
	}
	return "", false
}

// Target is what a PositionSpec positions against: a named anchor of another
// element, or a literal point in artboard coordinates.
type Target struct {
	Element *Element    // nil for literal points
	Anchor  geom.Anchor // anchor on Element, ignored for literal points
	Point   geom.Point  // literal point when Element is nil
}

// AnchorOf targets the named anchor of another element.
func AnchorOf(el *Element, a geom.Anchor) Target {
	return Target{Element: el, Anchor: a}
}

// At targets a literal point in artboard coordinates.
func At(p geom.Point) Target {
	return Target{Point: p}
}

// PositionSpec is the declarative positioning instruction: place Self (an
// anchor of the positioned element) at Target plus Offset, measured against
// the geometry selected by Ref.
type PositionSpec struct {
	Self   geom.Anchor
	Target Target
	Offset geom.Point
	Ref    BoxRef
}

func (s PositionSpec) validate() error {
	if s.Self == "" {
		return errors.New(errors.ErrCodeUnknownOption, "position spec: missing self anchor")
	}
	if _, err := geom.ParseAnchor(string(s.Self)); err != nil {
		return errors.Wrap(errors.ErrCodeUnknownOption, err, "position spec self anchor")
	}
	if s.Target.Element != nil {
		if _, err := geom.ParseAnchor(string(s.Target.Anchor)); err != nil {
			return errors.Wrap(errors.ErrCodeUnknownOption, err, "position spec target anchor")
		}
	}
	switch s.Ref {
	case "", RefBorderBox, RefContentBox, RefArtboard:
		return nil
	}
	return errors.New(errors.ErrCodeUnknownOption, "position spec: unknown box reference %q", s.Ref)
}

// ref returns the effective box reference, defaulting to RefBorderBox.
func (s PositionSpec) ref() BoxRef {
	if s.Ref == "" {
		return RefBorderBox
	}
	return s.Ref
}

// targetRect selects the target geometry from its border box per the spec's
// box reference.
func (s PositionSpec) targetRect(border geom.Rect, insets geom.Insets) geom.Rect {
	if s.ref() == RefContentBox {
		return border.Inset(insets)
	}
	return border
}

// topLeftFor solves for the border-box top-left corner of the positioned
// element, given its border-box size and the resolved target point. The self
// anchor is measured on the content box when the spec references content
// geometry, on the border box otherwise.
func (s PositionSpec) topLeftFor(size geom.Size, insets geom.Insets, at geom.Point) geom.Point {
	if s.ref() == RefContentBox {
		content := geom.RectOf(geom.Point{}, size).Inset(insets)
		anchor := content.Anchor(s.Self) // offset of the anchor from border top-left
		return at.Sub(anchor)
	}
	return at.Sub(s.Self.Offset(size))
}
