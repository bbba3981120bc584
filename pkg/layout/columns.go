package layout

import "github.com/grzegorzj/easel/pkg/geom"

// columnsDirector lays out a fixed number of equal-width columns separated
// by a gutter. Each column is itself a vertical stack container with its own
// box model and alignment; callers fill columns through [Element.Column] and
// may give individual columns independent content alignment.
type columnsDirector struct {
	count       int
	columnWidth float64
	gutter      float64
}

func (d *columnsDirector) measureContent(e *Element) (geom.Size, error) {
	var height float64
	for _, col := range e.children {
		height = max(height, col.size.Height)
	}
	return geom.Size{
		Width:  float64(d.count)*d.columnWidth + float64(d.count-1)*d.gutter,
		Height: height,
	}, nil
}

func (d *columnsDirector) arrange(e *Element, content geom.Size) error {
	for i, col := range e.children {
		col.localOffset = geom.Point{X: float64(i) * (d.columnWidth + d.gutter)}
	}
	return nil
}
