// Package scene loads declarative TOML scene files into layout trees and
// exports resolved layouts as JSON.
//
// A scene file declares one artboard and a flat list of elements wired
// together by parent references:
//
//	[artboard]
//	width = 840
//	height = 620
//	[artboard.box]
//	padding = 40
//
//	[[element]]
//	id = "cols"
//	kind = "columns"
//	count = 2
//	column_width = 250
//	column_height = 500
//	gutter = 30
//	[element.position]
//	self = "top-left"
//	target = "root"
//	anchor = "top-left"
//	ref = "content"
//
//	[[element]]
//	id = "dot"
//	kind = "leaf"
//	parent = "cols.col.0"
//	[element.shape]
//	type = "circle"
//	radius = 60
//
// Parents must be declared before their children; position targets may point
// anywhere in the file since specs are applied after the whole tree exists.
// Unknown keys are rejected rather than ignored.
package scene

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/grzegorzj/easel/pkg/boxmodel"
	"github.com/grzegorzj/easel/pkg/errors"
	"github.com/grzegorzj/easel/pkg/geom"
	"github.com/grzegorzj/easel/pkg/layout"
	"github.com/grzegorzj/easel/pkg/shapes"
	"github.com/grzegorzj/easel/pkg/textmetrics"
)

// RootTarget is the reserved position-target name for the artboard root.
const RootTarget = "root"

type sceneFile struct {
	Artboard artboardConfig  `toml:"artboard"`
	Elements []elementConfig `toml:"element"`
}

type artboardConfig struct {
	ID     string         `toml:"id"`
	Width  float64        `toml:"width"`
	Height float64        `toml:"height"`
	Strict bool           `toml:"strict"`
	Box    map[string]any `toml:"box"`
}

type elementConfig struct {
	ID     string         `toml:"id"`
	Kind   string         `toml:"kind"`
	Parent string         `toml:"parent"`
	Width  any            `toml:"width"`
	Height any            `toml:"height"`
	Box    map[string]any `toml:"box"`

	// stack
	Direction string  `toml:"direction"`
	Spacing   float64 `toml:"spacing"`
	Justify   string  `toml:"justify"`
	Align     string  `toml:"align"`

	// grid
	Rows       int     `toml:"rows"`
	Columns    int     `toml:"columns"`
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`

	// columns
	Count        int     `toml:"count"`
	ColumnWidth  float64 `toml:"column_width"`
	ColumnHeight float64 `toml:"column_height"`

	// grid and columns
	Gutter float64 `toml:"gutter"`

	Shape    *shapeConfig    `toml:"shape"`
	Text     *textConfig     `toml:"text"`
	Position *positionConfig `toml:"position"`
}

type shapeConfig struct {
	Type         string  `toml:"type"`
	Radius       float64 `toml:"radius"`
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	CornerRadius float64 `toml:"corner_radius"`
	Sides        int     `toml:"sides"`
	Fill         string  `toml:"fill"`
	Stroke       string  `toml:"stroke"`
	StrokeWidth  float64 `toml:"stroke_width"`
	Opacity      float64 `toml:"opacity"`
}

type textConfig struct {
	Content    string  `toml:"content"`
	FontSize   float64 `toml:"font_size"`
	LineHeight float64 `toml:"line_height"`
	MaxWidth   float64 `toml:"max_width"`
	Fill       string  `toml:"fill"`
}

type positionConfig struct {
	Self   string    `toml:"self"`
	Target string    `toml:"target"`
	Anchor string    `toml:"anchor"`
	Point  []float64 `toml:"point"`
	Offset []float64 `toml:"offset"`
	Ref    string    `toml:"ref"`
}

// Load reads and parses a scene file.
func Load(path string) (*layout.Artboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "reading scene file %s", path)
	}
	return Parse(data)
}

// Parse builds an artboard from scene file content. The returned artboard is
// unresolved; resolution runs on first read or via Resolve.
func Parse(data []byte) (*layout.Artboard, error) {
	var file sceneFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "parsing scene")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeUnknownOption,
			"unknown scene keys: %s", strings.Join(keys, ", "))
	}

	if file.Artboard.Width <= 0 || file.Artboard.Height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidScene,
			"artboard needs positive dimensions, got %gx%g", file.Artboard.Width, file.Artboard.Height)
	}

	opts := []layout.ArtboardOption{}
	if file.Artboard.ID != "" {
		opts = append(opts, layout.WithID(file.Artboard.ID))
	}
	if file.Artboard.Strict {
		opts = append(opts, layout.WithStrictAutoSize())
	}
	if file.Artboard.Box != nil {
		model, err := boxmodel.ResolveModel(file.Artboard.Box)
		if err != nil {
			return nil, err
		}
		opts = append(opts, layout.WithBoxModel(model))
	}
	a := layout.NewArtboard(file.Artboard.Width, file.Artboard.Height, opts...)

	// First pass: build and attach every element.
	for i, cfg := range file.Elements {
		if err := addElement(a, i, cfg); err != nil {
			return nil, err
		}
	}

	// Second pass: apply position specs, now that every target exists.
	for i, cfg := range file.Elements {
		if cfg.Position == nil {
			continue
		}
		el, ok := a.Element(elementID(i, cfg))
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "element %q vanished after construction", cfg.ID)
		}
		spec, err := buildSpec(a, *cfg.Position)
		if err != nil {
			return nil, err
		}
		if err := el.Position(spec); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// elementID returns the stable ID an element was registered under, deriving
// the same fallback addElement used for anonymous elements.
func elementID(index int, cfg elementConfig) string {
	if cfg.ID != "" {
		return cfg.ID
	}
	return fmt.Sprintf("element.%d", index)
}

func addElement(a *layout.Artboard, index int, cfg elementConfig) error {
	id := elementID(index, cfg)

	parent := a.Root()
	if cfg.Parent != "" {
		p, ok := a.Element(cfg.Parent)
		if !ok {
			return errors.New(errors.ErrCodeInvalidScene,
				"element %q: parent %q is not declared above it", id, cfg.Parent)
		}
		parent = p
	}

	width, err := parseDimension(id, "width", cfg.Width)
	if err != nil {
		return err
	}
	height, err := parseDimension(id, "height", cfg.Height)
	if err != nil {
		return err
	}
	var box boxmodel.Model
	if cfg.Box != nil {
		if box, err = boxmodel.ResolveModel(cfg.Box); err != nil {
			return err
		}
	}
	base := layout.ElementConfig{ID: id, Width: width, Height: height, Box: box}

	el, err := buildElement(id, cfg, base)
	if err != nil {
		return err
	}
	return parent.Add(el)
}

func buildElement(id string, cfg elementConfig, base layout.ElementConfig) (*layout.Element, error) {
	switch cfg.Kind {
	case "leaf", "":
		content, err := buildContent(id, cfg)
		if err != nil {
			return nil, err
		}
		return layout.NewLeaf(layout.LeafConfig{ElementConfig: base, Content: content}), nil

	case "stack":
		direction, ok := layout.ParseDirection(orDefault(cfg.Direction, "vertical"))
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownOption,
				"element %q: unknown direction %q", id, cfg.Direction)
		}
		justify, ok := layout.ParseAlignment(orDefault(cfg.Justify, "start"))
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownOption,
				"element %q: unknown justify %q", id, cfg.Justify)
		}
		align, ok := layout.ParseAlignment(orDefault(cfg.Align, "start"))
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownOption,
				"element %q: unknown align %q", id, cfg.Align)
		}
		return layout.NewStack(layout.StackConfig{
			ElementConfig: base,
			Direction:     direction,
			Spacing:       cfg.Spacing,
			Justify:       justify,
			Align:         align,
		}), nil

	case "grid":
		return layout.NewGrid(layout.GridConfig{
			ID:         id,
			Box:        base.Box,
			Rows:       cfg.Rows,
			Columns:    cfg.Columns,
			CellWidth:  cfg.CellWidth,
			CellHeight: cfg.CellHeight,
			Gutter:     cfg.Gutter,
		})

	case "columns":
		return layout.NewColumns(layout.ColumnsConfig{
			ID:          id,
			Box:         base.Box,
			Count:       cfg.Count,
			ColumnWidth: cfg.ColumnWidth,
			Height:      cfg.ColumnHeight,
			Gutter:      cfg.Gutter,
		})

	case "freeform":
		return layout.NewFreeform(layout.FreeformConfig{ElementConfig: base}), nil
	}
	return nil, errors.New(errors.ErrCodeUnknownOption, "element %q: unknown kind %q", id, cfg.Kind)
}

func buildContent(id string, cfg elementConfig) (layout.Sizer, error) {
	if cfg.Shape != nil && cfg.Text != nil {
		return nil, errors.New(errors.ErrCodeInvalidScene,
			"element %q declares both shape and text content", id)
	}
	if cfg.Shape != nil {
		return buildShape(id, *cfg.Shape)
	}
	if cfg.Text != nil {
		t := *cfg.Text
		return textmetrics.Text{
			Content: t.Content,
			Options: textmetrics.Options{
				FontSize:   t.FontSize,
				LineHeight: t.LineHeight,
				MaxWidth:   t.MaxWidth,
			},
			Fill: t.Fill,
		}, nil
	}
	return nil, nil
}

func buildShape(id string, cfg shapeConfig) (shapes.Shape, error) {
	style := shapes.Style{
		Fill:        cfg.Fill,
		Stroke:      cfg.Stroke,
		StrokeWidth: cfg.StrokeWidth,
		Opacity:     cfg.Opacity,
	}
	switch cfg.Type {
	case "circle":
		return shapes.Circle{Radius: cfg.Radius, Style: style}, nil
	case "rectangle":
		return shapes.Rectangle{
			Width: cfg.Width, Height: cfg.Height,
			CornerRadius: cfg.CornerRadius, Style: style,
		}, nil
	case "triangle":
		return shapes.Triangle{Width: cfg.Width, Height: cfg.Height, Style: style}, nil
	case "polygon":
		return shapes.Polygon{Sides: cfg.Sides, Radius: cfg.Radius, Style: style}, nil
	}
	return nil, errors.New(errors.ErrCodeUnknownOption, "element %q: unknown shape type %q", id, cfg.Type)
}

func buildSpec(a *layout.Artboard, cfg positionConfig) (layout.PositionSpec, error) {
	var spec layout.PositionSpec
	spec.Self = geom.Anchor(orDefault(cfg.Self, string(geom.AnchorTopLeft)))

	switch {
	case cfg.Target != "" && len(cfg.Point) > 0:
		return spec, errors.New(errors.ErrCodeInvalidScene,
			"position declares both a target element and a literal point")
	case cfg.Target == RootTarget:
		spec.Target = layout.AnchorOf(a.Root(), geom.Anchor(orDefault(cfg.Anchor, string(geom.AnchorTopLeft))))
	case cfg.Target != "":
		t, ok := a.Element(cfg.Target)
		if !ok {
			return spec, errors.New(errors.ErrCodeUnresolvedTarget,
				"position target %q is not declared in the scene", cfg.Target)
		}
		spec.Target = layout.AnchorOf(t, geom.Anchor(orDefault(cfg.Anchor, string(geom.AnchorTopLeft))))
	case len(cfg.Point) == 2:
		spec.Target = layout.At(geom.Point{X: cfg.Point[0], Y: cfg.Point[1]})
	default:
		return spec, errors.New(errors.ErrCodeInvalidScene,
			"position needs a target element or a two-element point")
	}

	if len(cfg.Offset) > 0 {
		if len(cfg.Offset) != 2 {
			return spec, errors.New(errors.ErrCodeInvalidScene,
				"position offset needs exactly two values, got %d", len(cfg.Offset))
		}
		spec.Offset = geom.Point{X: cfg.Offset[0], Y: cfg.Offset[1]}
	}

	switch cfg.Ref {
	case "", "border":
		spec.Ref = layout.RefBorderBox
	case "content":
		spec.Ref = layout.RefContentBox
	case "artboard":
		spec.Ref = layout.RefArtboard
	default:
		return spec, errors.New(errors.ErrCodeUnknownOption, "unknown box reference %q", cfg.Ref)
	}
	return spec, nil
}

var dimensionRe = regexp.MustCompile(`^\s*([0-9]+(?:\.[0-9]+)?)\s*(px|pt|mm|%)?\s*$`)

// parseDimension accepts a non-negative number (fixed), "auto", a percent
// string like "50%", or a unit string like "12px" (units are advisory).
// Absent values are auto; negative amounts are rejected.
func parseDimension(id, field string, raw any) (layout.Dimension, error) {
	switch v := raw.(type) {
	case nil:
		return layout.Auto(), nil
	case int64:
		if v < 0 {
			return layout.Dimension{}, errors.New(errors.ErrCodeInvalidDimension,
				"element %q: %s must not be negative, got %d", id, field, v)
		}
		return layout.Fixed(float64(v)), nil
	case float64:
		if v < 0 {
			return layout.Dimension{}, errors.New(errors.ErrCodeInvalidDimension,
				"element %q: %s must not be negative, got %g", id, field, v)
		}
		return layout.Fixed(v), nil
	case string:
		if strings.TrimSpace(v) == "auto" {
			return layout.Auto(), nil
		}
		m := dimensionRe.FindStringSubmatch(v)
		if m == nil {
			return layout.Dimension{}, errors.New(errors.ErrCodeInvalidDimension,
				"element %q: cannot parse %s %q", id, field, v)
		}
		amount, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return layout.Dimension{}, errors.Wrap(errors.ErrCodeInvalidDimension, err,
				"element %q: %s", id, field)
		}
		if m[2] == "%" {
			return layout.Percent(amount), nil
		}
		return layout.Fixed(amount), nil
	}
	return layout.Dimension{}, errors.New(errors.ErrCodeInvalidDimension,
		"element %q: %s must be a number or string, got %T", id, field, raw)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
