package layout

import (
	"sort"
	"strings"

	"github.com/grzegorzj/easel/pkg/errors"
	"github.com/grzegorzj/easel/pkg/geom"
)

// freeformDirector performs no automatic arrangement: children place
// themselves through position specs evaluated against their siblings or the
// container, in the container's local coordinate space. Children without a
// spec sit at the content-box origin.
//
// When the container is auto-sized its content box is the tight union
// bounding box of all local child boxes, computed before the container
// itself is placed; child offsets are normalized so the union's top-left
// becomes the content-box origin. A child anchored to the container's own
// top-left pins the frame instead: offsets stay as declared and the content
// box extends from the origin to cover the children.
type freeformDirector struct{}

func (freeformDirector) measureContent(e *Element) (geom.Size, error) {
	children := inFlowChildren(e)
	if len(children) == 0 {
		return geom.Size{}, nil
	}

	// The container's own size is being derived from the children, so specs
	// may target siblings or the container's size-independent top-left;
	// anchors that need the container's extent are a dependency cycle.
	anchored, err := placeLocal(e, children, geom.Size{}, false)
	if err != nil {
		return geom.Size{}, err
	}

	union := geom.Rect{}
	for _, c := range children {
		union = union.Union(geom.RectOf(c.localOffset, c.size))
	}
	if union.IsEmpty() && len(children) > 0 {
		// Zero-sized children still pin the origin.
		union = geom.RectOf(children[0].localOffset, geom.Size{})
	}

	if anchored {
		// A child anchored to the container's origin fixes the coordinate
		// frame, so offsets are already final content-box coordinates. The
		// content box grows to cover the children from the pinned origin.
		for _, c := range children {
			c.localPlaced = true
		}
		return geom.Size{
			Width:  max(union.Right(), 0),
			Height: max(union.Bottom(), 0),
		}, nil
	}

	// Normalize: the union's top-left becomes the content-box origin.
	shift := union.Origin()
	for _, c := range children {
		c.localOffset = c.localOffset.Sub(shift)
		c.localPlaced = true
	}
	return union.Size(), nil
}

func (freeformDirector) arrange(e *Element, content geom.Size) error {
	children := inFlowChildren(e)
	if len(children) == 0 {
		return nil
	}
	// Offsets fixed during auto measurement stay put.
	if children[0].localPlaced {
		return nil
	}
	_, err := placeLocal(e, children, content, true)
	return err
}

// placeLocal evaluates the children's position specs in the container's
// local content-box coordinate space, iterating until every child has an
// offset. containerKnown reports whether the container's own content size is
// final, which is what makes any container anchor a legal target; before
// that, only the size-independent top-left is. The returned flag reports
// whether any spec targeted the container.
//
// The iteration is a topological evaluation in disguise: a child is placed
// as soon as its target is, and a round without progress means the remaining
// specs form a cycle.
func placeLocal(e *Element, children []*Element, content geom.Size, containerKnown bool) (bool, error) {
	placed := make(map[*Element]geom.Rect, len(children))
	var pending []*Element

	for _, c := range children {
		if c.pos == nil {
			c.localOffset = geom.Point{}
			placed[c] = geom.RectOf(geom.Point{}, c.size)
			continue
		}
		pending = append(pending, c)
	}

	anchored := false
	for len(pending) > 0 {
		progress := false
		next := pending[:0]
		for _, c := range pending {
			spec := *c.pos
			t := spec.Target.Element

			var target geom.Rect
			switch {
			case t == e:
				if !containerKnown && spec.Target.Anchor != geom.AnchorTopLeft {
					return false, errors.New(errors.ErrCodeCyclicPosition,
						"element %q anchors to %q of auto-sized container %q, whose size depends on it",
						c.id, spec.Target.Anchor, e.id)
				}
				anchored = true
				target = spec.targetRect(localBorderRect(e, content), e.box.ContentInsets())
			default:
				border, ok := placed[t]
				if !ok {
					next = append(next, c)
					continue
				}
				target = spec.targetRect(border, t.box.ContentInsets())
			}

			at := target.Anchor(spec.Target.Anchor).Add(spec.Offset)
			c.localOffset = spec.topLeftFor(c.size, c.box.ContentInsets(), at)
			placed[c] = geom.RectOf(c.localOffset, c.size)
			progress = true
		}
		pending = next
		if !progress {
			ids := make([]string, len(pending))
			for i, c := range pending {
				ids[i] = c.id
			}
			sort.Strings(ids)
			return false, errors.New(errors.ErrCodeCyclicPosition,
				"position cycle among children of %q: %s", e.id, strings.Join(ids, ", "))
		}
	}
	return anchored, nil
}

// localBorderRect expresses the container's border box in its own
// content-box coordinate space: the content box spans (0,0)..(w,h), so the
// border box extends beyond the origin by the content insets.
func localBorderRect(e *Element, content geom.Size) geom.Rect {
	in := e.box.ContentInsets()
	return geom.Rect{
		X:      -in.Left,
		Y:      -in.Top,
		Width:  content.Width + in.Horizontal(),
		Height: content.Height + in.Vertical(),
	}
}
