package layout

import "github.com/grzegorzj/easel/pkg/geom"

// stackDirector arranges children sequentially along one axis.
//
// Main-axis placement is sequential: the first in-flow child starts at 0 and
// each following child starts at the previous child's end plus spacing.
// Margins participate: a child occupies marginStart + size + marginEnd of the
// main axis. Justify shifts the whole run within leftover main-axis space;
// Align positions each child individually within leftover cross-axis space.
type stackDirector struct {
	direction Direction
	spacing   float64
	justify   Alignment
	align     Alignment
}

func (d *stackDirector) measureContent(e *Element) (geom.Size, error) {
	var main, cross float64
	n := 0
	for _, c := range inFlowChildren(e) {
		cm, cc := mainAxis(c.size, d.direction)
		ms, me, cs, ce := marginAxes(c, d.direction)
		main += ms + cm + me
		cross = max(cross, cs+cc+ce)
		n++
	}
	if n > 1 {
		main += d.spacing * float64(n-1)
	}
	w, h := main, cross
	if d.direction == Vertical {
		w, h = cross, main
	}
	return geom.Size{Width: w, Height: h}, nil
}

func (d *stackDirector) arrange(e *Element, content geom.Size) error {
	children := inFlowChildren(e)
	if len(children) == 0 {
		return nil
	}

	used, err := d.measureContent(e)
	if err != nil {
		return err
	}
	contentMain, contentCross := mainAxis(content, d.direction)
	usedMain, _ := mainAxis(used, d.direction)

	cursor := (contentMain - usedMain) * d.justify.Factor()
	for _, c := range children {
		cm, cc := mainAxis(c.size, d.direction)
		ms, me, cs, ce := marginAxes(c, d.direction)

		crossOff := (contentCross-cc-cs-ce)*d.align.Factor() + cs
		c.localOffset = fromAxes(cursor+ms, crossOff, d.direction)
		cursor += ms + cm + me + d.spacing
	}
	return nil
}
