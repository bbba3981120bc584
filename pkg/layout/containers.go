package layout

import (
	"fmt"

	"github.com/grzegorzj/easel/pkg/boxmodel"
	"github.com/grzegorzj/easel/pkg/errors"
	"github.com/grzegorzj/easel/pkg/geom"
)

// =============================================================================
// Leaf
// =============================================================================

// LeafConfig configures a leaf element.
type LeafConfig struct {
	ElementConfig

	// Content reports the leaf's intrinsic size, consumed when a dimension
	// is auto. Shape and measured-text providers implement Sizer.
	Content Sizer
}

// NewLeaf creates a leaf element. With explicit dimensions the content sizer
// is optional; with auto dimensions and no sizer the leaf measures zero (or
// fails under strict auto-sizing).
func NewLeaf(cfg LeafConfig) *Element {
	e := newElement(KindLeaf, cfg.ElementConfig, nil)
	e.sizer = cfg.Content
	return e
}

// =============================================================================
// Stack
// =============================================================================

// StackConfig configures a linear stack container.
type StackConfig struct {
	ElementConfig

	Direction Direction
	Spacing   float64
	// Justify packs the run of children within leftover main-axis space.
	Justify Alignment
	// Align positions each child within leftover cross-axis space.
	Align Alignment
}

// NewStack creates a linear stack container.
func NewStack(cfg StackConfig) *Element {
	return newElement(KindStack, cfg.ElementConfig, &stackDirector{
		direction: cfg.Direction,
		spacing:   cfg.Spacing,
		justify:   cfg.Justify,
		align:     cfg.Align,
	})
}

// SetAlignment updates a stack's main-axis (justify) and cross-axis (align)
// alignment, invalidating any resolved layout. This is how individual grid
// cells and columns get independent content alignment.
func (e *Element) SetAlignment(justify, align Alignment) error {
	d, ok := e.director.(*stackDirector)
	if !ok {
		return errors.New(errors.ErrCodeUnknownOption, "element %q (%s) has no stack alignment", e.id, e.kind)
	}
	d.justify = justify
	d.align = align
	e.invalidate()
	return nil
}

// SetSpacing updates a stack's inter-child spacing.
func (e *Element) SetSpacing(spacing float64) error {
	d, ok := e.director.(*stackDirector)
	if !ok {
		return errors.New(errors.ErrCodeUnknownOption, "element %q (%s) has no spacing", e.id, e.kind)
	}
	d.spacing = spacing
	e.invalidate()
	return nil
}

// =============================================================================
// Grid
// =============================================================================

// GridConfig configures a grid container. All fields are required except ID,
// Box and Gutter; a grid's size is always derived from the configuration,
// never from content.
type GridConfig struct {
	ID  string
	Box boxmodel.Model

	Rows       int
	Columns    int
	CellWidth  float64
	CellHeight float64
	Gutter     float64

	// CellBox is applied to every generated cell container.
	CellBox boxmodel.Model
}

// NewGrid creates a grid of Rows x Columns equal cells. Each cell is a
// vertical stack container of the configured cell size, retrievable with
// [Element.Cell].
func NewGrid(cfg GridConfig) (*Element, error) {
	if cfg.Rows <= 0 || cfg.Columns <= 0 {
		return nil, errors.New(errors.ErrCodeUnknownOption,
			"grid needs positive rows and columns, got %dx%d", cfg.Rows, cfg.Columns)
	}
	if cfg.CellWidth <= 0 || cfg.CellHeight <= 0 {
		return nil, errors.New(errors.ErrCodeUnknownOption,
			"grid needs positive cell dimensions, got %gx%g", cfg.CellWidth, cfg.CellHeight)
	}
	if cfg.Gutter < 0 {
		return nil, errors.New(errors.ErrCodeUnknownOption, "negative grid gutter %g", cfg.Gutter)
	}

	d := &gridDirector{
		rows:       cfg.Rows,
		cols:       cfg.Columns,
		cellWidth:  cfg.CellWidth,
		cellHeight: cfg.CellHeight,
		gutter:     cfg.Gutter,
	}

	// The border box is fully determined by cells, gutters and the box model.
	content := d.contentSize()
	in := cfg.Box.ContentInsets()
	e := newElement(KindGrid, ElementConfig{
		ID:     cfg.ID,
		Width:  Fixed(content.Width + in.Horizontal()),
		Height: Fixed(content.Height + in.Vertical()),
		Box:    cfg.Box,
	}, d)

	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Columns; col++ {
			cell := NewStack(StackConfig{
				ElementConfig: ElementConfig{
					ID:     fmt.Sprintf("%s.cell.%d.%d", e.id, row, col),
					Width:  Fixed(cfg.CellWidth),
					Height: Fixed(cfg.CellHeight),
					Box:    cfg.CellBox,
				},
				Direction: Vertical,
			})
			cell.parent = e
			e.children = append(e.children, cell)
		}
	}
	return e, nil
}

// Cell returns the grid cell container at (row, col).
func (e *Element) Cell(row, col int) (*Element, error) {
	d, ok := e.director.(*gridDirector)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownOption, "element %q (%s) has no cells", e.id, e.kind)
	}
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return nil, errors.New(errors.ErrCodeUnknownOption,
			"cell (%d, %d) out of range for %dx%d grid %q", row, col, d.rows, d.cols, e.id)
	}
	return e.children[row*d.cols+col], nil
}

// =============================================================================
// Columns
// =============================================================================

// ColumnsConfig configures a columns container.
type ColumnsConfig struct {
	ID  string
	Box boxmodel.Model

	Count       int
	ColumnWidth float64
	// Height fixes each column's height. Zero lets columns auto-expand to
	// their content, and the container's height follow the tallest column.
	Height float64
	Gutter float64

	// ColumnBox is applied to every generated column container.
	ColumnBox boxmodel.Model
	// VerticalAlign packs each column's children along its vertical main
	// axis; HorizontalAlign positions them across the column's width.
	// Individual columns can override both via [Element.SetAlignment].
	VerticalAlign   Alignment
	HorizontalAlign Alignment
}

// NewColumns creates Count equal-width columns separated by Gutter. Each
// column is a vertical stack container, retrievable with [Element.Column].
func NewColumns(cfg ColumnsConfig) (*Element, error) {
	if cfg.Count <= 0 {
		return nil, errors.New(errors.ErrCodeUnknownOption, "columns need a positive count, got %d", cfg.Count)
	}
	if cfg.ColumnWidth <= 0 {
		return nil, errors.New(errors.ErrCodeUnknownOption, "columns need a positive width, got %g", cfg.ColumnWidth)
	}
	if cfg.Height < 0 || cfg.Gutter < 0 {
		return nil, errors.New(errors.ErrCodeUnknownOption,
			"columns height and gutter must be non-negative, got %g and %g", cfg.Height, cfg.Gutter)
	}

	d := &columnsDirector{
		count:       cfg.Count,
		columnWidth: cfg.ColumnWidth,
		gutter:      cfg.Gutter,
	}

	in := cfg.Box.ContentInsets()
	width := Fixed(float64(cfg.Count)*cfg.ColumnWidth + float64(cfg.Count-1)*cfg.Gutter + in.Horizontal())
	height := Auto()
	colHeight := Auto()
	if cfg.Height > 0 {
		height = Fixed(cfg.Height + in.Vertical())
		colHeight = Fixed(cfg.Height)
	}

	e := newElement(KindColumns, ElementConfig{
		ID:     cfg.ID,
		Width:  width,
		Height: height,
		Box:    cfg.Box,
	}, d)

	for i := 0; i < cfg.Count; i++ {
		col := NewStack(StackConfig{
			ElementConfig: ElementConfig{
				ID:     fmt.Sprintf("%s.col.%d", e.id, i),
				Width:  Fixed(cfg.ColumnWidth),
				Height: colHeight,
				Box:    cfg.ColumnBox,
			},
			Direction: Vertical,
			Justify:   cfg.VerticalAlign,
			Align:     cfg.HorizontalAlign,
		})
		col.parent = e
		e.children = append(e.children, col)
	}
	return e, nil
}

// Column returns the i-th column container.
func (e *Element) Column(i int) (*Element, error) {
	d, ok := e.director.(*columnsDirector)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownOption, "element %q (%s) has no columns", e.id, e.kind)
	}
	if i < 0 || i >= d.count {
		return nil, errors.New(errors.ErrCodeUnknownOption,
			"column %d out of range for %d-column layout %q", i, d.count, e.id)
	}
	return e.children[i], nil
}

// =============================================================================
// Freeform
// =============================================================================

// FreeformConfig configures a freeform container.
type FreeformConfig struct {
	ElementConfig
}

// NewFreeform creates a container without automatic arrangement: children
// place themselves via position specs relative to their siblings or the
// container.
func NewFreeform(cfg FreeformConfig) *Element {
	return newElement(KindFreeform, cfg.ElementConfig, freeformDirector{})
}

// FinalizeFreeform computes the container's auto size now: it measures the
// subtree, evaluates the children's local position specs, and returns the
// union bounding box of their local boxes as the content size. Attached
// containers are finalized implicitly during resolution; this entry point
// serves detached construction and callers that want the size early.
func (e *Element) FinalizeFreeform() (geom.Size, error) {
	if e.kind != KindFreeform {
		return geom.Size{}, errors.New(errors.ErrCodeUnknownOption,
			"element %q (%s) is not a freeform container", e.id, e.kind)
	}
	strict := e.artboard != nil && e.artboard.strict
	if err := measure(e, geom.Size{}, strict); err != nil {
		return geom.Size{}, err
	}
	in := e.box.ContentInsets()
	return geom.Size{
		Width:  e.size.Width - in.Horizontal(),
		Height: e.size.Height - in.Vertical(),
	}, nil
}
