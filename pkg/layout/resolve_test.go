package layout

import (
	"testing"
	"time"

	"github.com/grzegorzj/easel/pkg/errors"
	"github.com/grzegorzj/easel/pkg/geom"
	"github.com/grzegorzj/easel/pkg/observability"
)

func TestResolveMemoization(t *testing.T) {
	a := NewArtboard(400, 400)
	stack := NewStack(StackConfig{ElementConfig: ElementConfig{ID: "stack"}, Direction: Vertical})
	e := leaf("e", 50, 50)
	if err := stack.Add(e); err != nil {
		t.Fatal(err)
	}
	if err := a.Add(stack); err != nil {
		t.Fatal(err)
	}

	first, err := e.AbsolutePosition()
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.AbsolutePosition()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("repeated reads differ: %v vs %v", first, second)
	}

	// Mutation invalidates; the next read re-resolves.
	if err := stack.SetSpacing(10); err != nil {
		t.Fatal(err)
	}
	if err := stack.Add(leaf("sibling", 50, 30)); err != nil {
		t.Fatal(err)
	}
	moved, err := e.AbsolutePosition()
	if err != nil {
		t.Fatal(err)
	}
	if moved != first {
		// e stays first in flow, so its box is unchanged even after the
		// mutation; the point is that the read still succeeds and agrees
		// with a fresh resolution.
		t.Errorf("first child moved unexpectedly: %v vs %v", moved, first)
	}
	sib, _ := a.Element("sibling")
	sb, err := sib.AbsolutePosition()
	if err != nil {
		t.Fatal(err)
	}
	if sb.Y != moved.Bottom()+10 {
		t.Errorf("sibling Y = %v, want %v", sb.Y, moved.Bottom()+10)
	}
}

func TestPercentDimensions(t *testing.T) {
	a := NewArtboard(500, 400)
	free := NewFreeform(FreeformConfig{
		ElementConfig: ElementConfig{ID: "free", Width: Fixed(200), Height: Fixed(100)},
	})
	half := NewLeaf(LeafConfig{
		ElementConfig: ElementConfig{ID: "half", Width: Percent(50), Height: Percent(25)},
	})
	if err := free.Add(half); err != nil {
		t.Fatal(err)
	}
	if err := a.Add(free); err != nil {
		t.Fatal(err)
	}

	// Percent resolves against the parent's content span.
	size, err := half.Size()
	if err != nil {
		t.Fatal(err)
	}
	if size.Width != 100 || size.Height != 25 {
		t.Errorf("size = %v, want 100x25", size)
	}
}

func TestPercentOfAutoParent(t *testing.T) {
	a := NewArtboard(500, 400)
	free := NewFreeform(FreeformConfig{ElementConfig: ElementConfig{ID: "free"}})
	dep := NewLeaf(LeafConfig{
		ElementConfig: ElementConfig{ID: "dep", Width: Percent(50), Height: Fixed(20)},
	})
	if err := free.Add(dep); err != nil {
		t.Fatal(err)
	}
	if err := a.Add(free); err != nil {
		t.Fatal(err)
	}

	// A percent of an auto parent has nothing to resolve against and
	// collapses to zero rather than erroring.
	size, err := dep.Size()
	if err != nil {
		t.Fatal(err)
	}
	if size.Width != 0 {
		t.Errorf("percent of auto parent = %v, want 0", size.Width)
	}
}

func TestStrictAutoSize(t *testing.T) {
	a := NewArtboard(400, 400, WithStrictAutoSize())
	bare := NewLeaf(LeafConfig{ElementConfig: ElementConfig{ID: "bare"}})
	if err := a.Add(bare); err != nil {
		t.Fatal(err)
	}

	_, err := bare.Size()
	if !errors.Is(err, errors.ErrCodeUnmeasurableAutoSize) {
		t.Errorf("strict artboard should reject unmeasurable auto size, got %v", err)
	}

	// The default mode measures the same leaf as zero.
	b := NewArtboard(400, 400)
	loose := NewLeaf(LeafConfig{ElementConfig: ElementConfig{ID: "loose"}})
	if err := b.Add(loose); err != nil {
		t.Fatal(err)
	}
	size, err := loose.Size()
	if err != nil {
		t.Fatal(err)
	}
	if !size.IsZero() {
		t.Errorf("unmeasurable leaf = %v, want zero", size)
	}
}

func TestArtboardReferencePositioning(t *testing.T) {
	a := NewArtboard(600, 600)

	// Two separate subtrees; the annotation pins itself to a leaf buried in
	// the other one, in artboard coordinates.
	stack := NewStack(StackConfig{ElementConfig: ElementConfig{ID: "stack"}, Direction: Vertical})
	target := leaf("target", 100, 40)
	if err := stack.Add(leaf("filler", 100, 40), target); err != nil {
		t.Fatal(err)
	}
	if err := a.Add(stack); err != nil {
		t.Fatal(err)
	}

	note := leaf("note", 30, 30)
	if err := a.Add(note); err != nil {
		t.Fatal(err)
	}
	err := note.Position(PositionSpec{
		Self:   geom.AnchorCenterLeft,
		Target: AnchorOf(target, geom.AnchorCenterRight),
		Offset: geom.Point{X: 12},
		Ref:    RefArtboard,
	})
	if err != nil {
		t.Fatal(err)
	}

	tb, _ := target.BorderBox()
	nb, _ := note.BorderBox()
	if nb.X != tb.Right()+12 {
		t.Errorf("note X = %v, want %v", nb.X, tb.Right()+12)
	}
	wantY := tb.Y + tb.Height/2 - nb.Height/2
	if nb.Y != wantY {
		t.Errorf("note Y = %v, want %v", nb.Y, wantY)
	}
}

func TestClearPositionReturnsToFlow(t *testing.T) {
	a := NewArtboard(400, 400)
	stack := NewStack(StackConfig{ElementConfig: ElementConfig{ID: "stack"}, Direction: Vertical})
	e := leaf("e", 50, 50)
	if err := stack.Add(leaf("head", 50, 50), e); err != nil {
		t.Fatal(err)
	}
	if err := a.Add(stack); err != nil {
		t.Fatal(err)
	}

	inFlowBox, err := e.BorderBox()
	if err != nil {
		t.Fatal(err)
	}

	err = e.Position(PositionSpec{
		Self:   geom.AnchorTopLeft,
		Target: At(geom.Point{X: 200, Y: 200}),
		Ref:    RefArtboard,
	})
	if err != nil {
		t.Fatal(err)
	}
	floated, _ := e.BorderBox()
	if floated.X != 200 || floated.Y != 200 {
		t.Errorf("floated to (%v, %v), want (200, 200)", floated.X, floated.Y)
	}

	e.ClearPosition()
	back, err := e.BorderBox()
	if err != nil {
		t.Fatal(err)
	}
	if back != inFlowBox {
		t.Errorf("after ClearPosition box = %v, want original %v", back, inFlowBox)
	}
}

func TestBuilder(t *testing.T) {
	a := NewArtboard(400, 400)
	b := a.Builder()

	stack, err := b.Stack(StackConfig{ElementConfig: ElementConfig{ID: "stack"}, Direction: Vertical})
	if err != nil {
		t.Fatal(err)
	}
	if stack.Parent() != a.Root() {
		t.Error("builder should attach to the artboard root")
	}

	item, err := b.In(stack).Leaf(LeafConfig{
		ElementConfig: ElementConfig{ID: "item"},
		Content:       fixedSizer{w: 20, h: 20},
	})
	if err != nil {
		t.Fatal(err)
	}
	if item.Parent() != stack {
		t.Error("In should redirect attachment to the given container")
	}
	if _, ok := a.Element("item"); !ok {
		t.Error("builder-made elements should register with the artboard")
	}
}

func TestDependencyEdges(t *testing.T) {
	a := NewArtboard(400, 400)
	anchor := leaf("anchor", 50, 50)
	satellite := leaf("satellite", 20, 20)
	if err := a.Add(anchor, satellite); err != nil {
		t.Fatal(err)
	}
	err := satellite.Position(PositionSpec{
		Self:   geom.AnchorTopLeft,
		Target: AnchorOf(anchor, geom.AnchorBottomRight),
	})
	if err != nil {
		t.Fatal(err)
	}

	edges, err := a.DependencyEdges()
	if err != nil {
		t.Fatal(err)
	}

	var foundTarget, foundFlow bool
	for _, e := range edges {
		if e.From == "satellite" && e.To == "anchor" && e.Kind == "target" {
			foundTarget = true
		}
		if e.From == "anchor" && e.To == a.Root().ID() && e.Kind == "flow" {
			foundFlow = true
		}
	}
	if !foundTarget {
		t.Errorf("missing target edge satellite -> anchor in %v", edges)
	}
	if !foundFlow {
		t.Errorf("missing flow edge anchor -> root in %v", edges)
	}
}

type recordingLayoutHooks struct {
	events []string
}

func (h *recordingLayoutHooks) OnResolveStart(string, int) {
	h.events = append(h.events, "resolve-start")
}

func (h *recordingLayoutHooks) OnResolveComplete(string, int, time.Duration, error) {
	h.events = append(h.events, "resolve-complete")
}

func (h *recordingLayoutHooks) OnMeasureStart(string, int) {
	h.events = append(h.events, "measure-start")
}

func (h *recordingLayoutHooks) OnMeasureComplete(string, int, time.Duration, error) {
	h.events = append(h.events, "measure-complete")
}

func TestResolveEmitsMeasureEvents(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	hooks := &recordingLayoutHooks{}
	observability.SetLayoutHooks(hooks)

	a := NewArtboard(400, 400)
	if err := a.Add(leaf("box", 50, 50)); err != nil {
		t.Fatal(err)
	}
	if err := a.Resolve(); err != nil {
		t.Fatal(err)
	}

	want := []string{"resolve-start", "measure-start", "measure-complete", "resolve-complete"}
	if len(hooks.events) != len(want) {
		t.Fatalf("events = %v, want %v", hooks.events, want)
	}
	for i, ev := range want {
		if hooks.events[i] != ev {
			t.Fatalf("events = %v, want %v", hooks.events, want)
		}
	}

	// Memoized reads must not re-emit.
	if err := a.Resolve(); err != nil {
		t.Fatal(err)
	}
	if len(hooks.events) != len(want) {
		t.Errorf("clean resolve emitted extra events: %v", hooks.events)
	}
}
