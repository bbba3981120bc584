// Package boxmodel resolves padding/border/margin configuration into edge
// insets.
//
// Configuration values arrive in three shapes, mirroring what scene files and
// programmatic callers provide:
//
//   - a single number, applied to all four sides
//   - a per-side table/map (unspecified sides default to 0)
//   - a unit string such as "12px" (the unit is advisory; only px, pt and mm
//     are recognized)
//
// Resolution is strict: negative insets and unrecognized keys or units are
// rejected at construction time rather than silently ignored, so a malformed
// box model never reaches the layout engine.
//
// A [Model] aggregates the three edge groups of one element. The layout
// engine consumes [Model.ContentInsets] (border + padding) to derive the
// content box from the border box; margin stays outside the border box and is
// consumed by layout directors when arranging siblings.
package boxmodel

import (
	"regexp"
	"strconv"

	"github.com/grzegorzj/easel/pkg/errors"
	"github.com/grzegorzj/easel/pkg/geom"
)

// Model holds the resolved box model of one element.
type Model struct {
	Padding geom.Insets
	Border  geom.Insets
	Margin  geom.Insets
}

// ContentInsets returns the insets separating the border box from the content
// box: border + padding. Margin is excluded; it lives outside the border box.
func (m Model) ContentInsets() geom.Insets {
	return m.Border.Add(m.Padding)
}

// New validates and assembles a model from resolved insets.
func New(padding, border, margin geom.Insets) (Model, error) {
	m := Model{Padding: padding, Border: border, Margin: margin}
	for _, g := range []struct {
		name string
		in   geom.Insets
	}{
		{"padding", padding},
		{"border", border},
		{"margin", margin},
	} {
		if err := validate(g.name, g.in); err != nil {
			return Model{}, err
		}
	}
	return m, nil
}

// Uniform returns insets with the same value on all four sides.
func Uniform(v float64) geom.Insets {
	return geom.Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// Symmetric returns insets with vertical (top/bottom) and horizontal
// (left/right) values.
func Symmetric(vertical, horizontal float64) geom.Insets {
	return geom.Insets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Sides returns insets in CSS order: top, right, bottom, left.
func Sides(top, right, bottom, left float64) geom.Insets {
	return geom.Insets{Top: top, Right: right, Bottom: bottom, Left: left}
}

// unitRe matches a decimal number with an optional recognized unit suffix.
var unitRe = regexp.MustCompile(`^\s*(-?[0-9]+(?:\.[0-9]+)?)\s*(px|pt|mm)?\s*$`)

// sideKeys enumerates the recognized per-side keys.
var sideKeys = map[string]bool{"top": true, "right": true, "bottom": true, "left": true}

// Resolve converts a raw configuration value into edge insets.
//
// Accepted forms: a number (uniform), a string with an optional unit
// ("12", "12px"), a map with top/right/bottom/left keys (each a number or
// unit string; missing sides are 0), or geom.Insets passed through verbatim.
// The name identifies the edge group ("padding", "border", "margin") in
// error messages.
func Resolve(name string, raw any) (geom.Insets, error) {
	switch v := raw.(type) {
	case nil:
		return geom.Insets{}, nil
	case geom.Insets:
		if err := validate(name, v); err != nil {
			return geom.Insets{}, err
		}
		return v, nil
	case map[string]any:
		return resolveSides(name, v)
	default:
		n, err := scalar(name, raw)
		if err != nil {
			return geom.Insets{}, err
		}
		in := Uniform(n)
		if err := validate(name, in); err != nil {
			return geom.Insets{}, err
		}
		return in, nil
	}
}

// ResolveModel resolves a raw box-model table with padding/border/margin keys.
// Unknown keys are rejected.
func ResolveModel(raw map[string]any) (Model, error) {
	var m Model
	for key, value := range raw {
		var dst *geom.Insets
		switch key {
		case "padding":
			dst = &m.Padding
		case "border":
			dst = &m.Border
		case "margin":
			dst = &m.Margin
		default:
			return Model{}, errors.New(errors.ErrCodeUnknownOption, "unknown box model key %q", key)
		}
		in, err := Resolve(key, value)
		if err != nil {
			return Model{}, err
		}
		*dst = in
	}
	return m, nil
}

func resolveSides(name string, raw map[string]any) (geom.Insets, error) {
	var in geom.Insets
	for key, value := range raw {
		if !sideKeys[key] {
			return geom.Insets{}, errors.New(errors.ErrCodeUnknownOption, "unknown %s side %q", name, key)
		}
		n, err := scalar(name, value)
		if err != nil {
			return geom.Insets{}, err
		}
		switch key {
		case "top":
			in.Top = n
		case "right":
			in.Right = n
		case "bottom":
			in.Bottom = n
		case "left":
			in.Left = n
		}
	}
	if err := validate(name, in); err != nil {
		return geom.Insets{}, err
	}
	return in, nil
}

// scalar converts a single numeric or unit-string value.
func scalar(name string, raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		m := unitRe.FindStringSubmatch(v)
		if m == nil {
			return 0, errors.New(errors.ErrCodeInvalidBoxModel, "invalid %s value %q", name, v)
		}
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidBoxModel, err, "invalid %s value %q", name, v)
		}
		return n, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidBoxModel, "invalid %s value of type %T", name, raw)
	}
}

func validate(name string, in geom.Insets) error {
	for _, side := range []struct {
		side string
		v    float64
	}{
		{"top", in.Top},
		{"right", in.Right},
		{"bottom", in.Bottom},
		{"left", in.Left},
	} {
		if side.v < 0 {
			return errors.New(errors.ErrCodeInvalidBoxModel, "negative %s on %s side: %g", name, side.side, side.v)
		}
	}
	return nil
}
