package layout

import "github.com/grzegorzj/easel/pkg/geom"

// gridDirector lays out a fixed rows x columns matrix of equal-sized cells
// separated by a gutter. The cells themselves are ordinary containers
// created with the grid; callers fill them through [Element.Cell]. A grid's
// border box is always explicit — cells, gutters, padding and border fully
// determine it — so a grid never participates in auto-sizing from content.
type gridDirector struct {
	rows       int
	cols       int
	cellWidth  float64
	cellHeight float64
	gutter     float64
}

func (d *gridDirector) contentSize() geom.Size {
	return geom.Size{
		Width:  float64(d.cols)*d.cellWidth + float64(d.cols-1)*d.gutter,
		Height: float64(d.rows)*d.cellHeight + float64(d.rows-1)*d.gutter,
	}
}

func (d *gridDirector) measureContent(e *Element) (geom.Size, error) {
	return d.contentSize(), nil
}

func (d *gridDirector) arrange(e *Element, content geom.Size) error {
	for i, cell := range e.children {
		row := i / d.cols
		col := i % d.cols
		cell.localOffset = geom.Point{
			X: float64(col) * (d.cellWidth + d.gutter),
			Y: float64(row) * (d.cellHeight + d.gutter),
		}
	}
	return nil
}
