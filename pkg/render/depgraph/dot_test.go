package depgraph

import (
	"strings"
	"testing"

	"github.com/grzegorzj/easel/pkg/geom"
	"github.com/grzegorzj/easel/pkg/layout"
)

type fixedSize struct {
	w, h float64
}

func (s fixedSize) IntrinsicSize() geom.Size {
	return geom.Size{Width: s.w, Height: s.h}
}

func buildBoard(t *testing.T) *layout.Artboard {
	t.Helper()
	a := layout.NewArtboard(300, 300, layout.WithID("board"))
	b := a.Builder()

	anchor, err := b.Leaf(layout.LeafConfig{
		ElementConfig: layout.ElementConfig{ID: "anchor"},
		Content:       fixedSize{w: 50, h: 50},
	})
	if err != nil {
		t.Fatal(err)
	}
	note, err := b.Leaf(layout.LeafConfig{
		ElementConfig: layout.ElementConfig{ID: "note"},
		Content:       fixedSize{w: 20, h: 20},
	})
	if err != nil {
		t.Fatal(err)
	}
	err = note.Position(layout.PositionSpec{
		Self:   geom.AnchorTopLeft,
		Target: layout.AnchorOf(anchor, geom.AnchorBottomRight),
		Ref:    layout.RefArtboard,
	})
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestToDOT(t *testing.T) {
	dot, err := ToDOT(buildBoard(t), Options{})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}

	if !strings.HasPrefix(dot, "digraph layout {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("malformed document:\n%s", dot)
	}
	for _, node := range []string{`"anchor"`, `"note"`} {
		if !strings.Contains(dot, node) {
			t.Errorf("missing node %s", node)
		}
	}
	if !strings.Contains(dot, `"note" -> "anchor" [style=dashed`) {
		t.Errorf("missing styled target edge:\n%s", dot)
	}
	if !strings.Contains(dot, `"anchor" -> "board";`) {
		t.Errorf("missing flow edge to the root:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot, err := ToDOT(buildBoard(t), Options{Detailed: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(dot, "50x50") {
		t.Errorf("detailed labels should carry resolved boxes:\n%s", dot)
	}
	if !strings.Contains(dot, "leaf") {
		t.Errorf("detailed labels should carry kinds:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="103pt" height="84pt" viewBox="0.00 0.00 103.09 84.00" xmlns="http://www.w3.org/2000/svg">`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 103.09 84.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="103" height="84"`) {
		t.Errorf("pixel dimensions missing: %s", out)
	}

	// Documents without a viewBox pass through untouched.
	plain := []byte("<svg><rect/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Error("document without viewBox should pass through")
	}
}
