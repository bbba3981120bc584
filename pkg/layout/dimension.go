package layout

import "github.com/grzegorzj/easel/pkg/errors"

// DimensionUnit specifies how a Dimension is interpreted.
type DimensionUnit uint8

const (
	// UnitAuto sizes the dimension from content: children for containers,
	// the intrinsic size for leaves.
	UnitAuto DimensionUnit = iota
	// UnitFixed is an absolute length.
	UnitFixed
	// UnitPercent is a percentage of the parent's content-box span.
	UnitPercent
)

// Dimension is one axis of an element's size: an explicit length, a
// percentage of the parent content box, or the auto sentinel. Explicit
// dimensions describe the border box.
type Dimension struct {
	Amount float64
	Unit   DimensionUnit
}

// Auto returns a Dimension computed from content.
func Auto() Dimension {
	return Dimension{Unit: UnitAuto}
}

// Fixed returns an absolute Dimension.
func Fixed(v float64) Dimension {
	return Dimension{Amount: v, Unit: UnitFixed}
}

// Percent returns a Dimension relative to the parent's content span, on a
// 0-100 scale (50.0 = half the parent).
func Percent(p float64) Dimension {
	return Dimension{Amount: p, Unit: UnitPercent}
}

// Validate rejects amounts that cannot describe a box span. Auto carries no
// amount to check.
func (d Dimension) Validate() error {
	if d.Unit != UnitAuto && d.Amount < 0 {
		return errors.New(errors.ErrCodeInvalidDimension, "negative dimension %g", d.Amount)
	}
	return nil
}

// IsAuto reports whether the dimension is computed from content.
func (d Dimension) IsAuto() bool {
	return d.Unit == UnitAuto
}

// Resolve computes the concrete length. Percent dimensions resolve against
// available (the parent's content span; zero when the parent is itself still
// auto). Auto dimensions return the fallback, which callers derive from
// content.
func (d Dimension) Resolve(available, fallback float64) float64 {
	switch d.Unit {
	case UnitFixed:
		return d.Amount
	case UnitPercent:
		return available * d.Amount / 100.0
	default:
		return fallback
	}
}

// Alignment positions content within leftover space on one axis.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// Factor returns the leftover-space multiplier: 0, 0.5 or 1.
func (a Alignment) Factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignEnd:
		return 1
	default:
		return 0
	}
}

// String returns the wire-format name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// ParseAlignment converts a wire-format alignment name.
func ParseAlignment(s string) (Alignment, bool) {
	switch s {
	case "start":
		return AlignStart, true
	case "center":
		return AlignCenter, true
	case "end":
		return AlignEnd, true
	}
	return AlignStart, false
}

// Direction specifies the main axis of a stack container.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

// String returns the wire-format name of the direction.
func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection converts a wire-format direction name.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "horizontal":
		return Horizontal, true
	case "vertical":
		return Vertical, true
	}
	return Horizontal, false
}
