package layout

import (
	"testing"

	"github.com/grzegorzj/easel/pkg/boxmodel"
	"github.com/grzegorzj/easel/pkg/geom"
)

func TestColumnsGeometry(t *testing.T) {
	a := NewArtboard(1000, 1000)
	cols, err := NewColumns(ColumnsConfig{
		ID:          "cols",
		Count:       3,
		ColumnWidth: 150,
		Height:      400,
		Gutter:      25,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Add(cols); err != nil {
		t.Fatal(err)
	}

	size, err := cols.Size()
	if err != nil {
		t.Fatal(err)
	}
	if size.Width != 3*150+2*25 {
		t.Errorf("columns width = %v, want 500", size.Width)
	}
	if size.Height != 400 {
		t.Errorf("columns height = %v, want 400", size.Height)
	}

	origin, _ := cols.ContentBox()
	for i := 0; i < 3; i++ {
		col, err := cols.Column(i)
		if err != nil {
			t.Fatalf("Column(%d): %v", i, err)
		}
		b, err := col.BorderBox()
		if err != nil {
			t.Fatal(err)
		}
		wantX := origin.X + float64(i)*(150+25)
		if b.X != wantX || b.Y != origin.Y {
			t.Errorf("column %d at (%v, %v), want (%v, %v)", i, b.X, b.Y, wantX, origin.Y)
		}
		if b.Width != 150 || b.Height != 400 {
			t.Errorf("column %d size %vx%v, want 150x400", i, b.Width, b.Height)
		}
	}
}

func TestColumnsAutoHeight(t *testing.T) {
	a := NewArtboard(1000, 1000)
	cols, err := NewColumns(ColumnsConfig{
		ID:          "cols",
		Count:       2,
		ColumnWidth: 100,
		Gutter:      10,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Add(cols); err != nil {
		t.Fatal(err)
	}

	short, _ := cols.Column(0)
	tall, _ := cols.Column(1)
	if err := short.Add(leaf("a", 80, 50)); err != nil {
		t.Fatal(err)
	}
	if err := tall.Add(leaf("b", 80, 90), leaf("c", 80, 90)); err != nil {
		t.Fatal(err)
	}

	// The container follows the tallest column.
	size, err := cols.Size()
	if err != nil {
		t.Fatal(err)
	}
	if size.Height != 180 {
		t.Errorf("columns height = %v, want 180 (tallest column)", size.Height)
	}
}

func TestColumnsValidation(t *testing.T) {
	if _, err := NewColumns(ColumnsConfig{Count: 0, ColumnWidth: 100}); err == nil {
		t.Error("zero count should fail")
	}
	if _, err := NewColumns(ColumnsConfig{Count: 2, ColumnWidth: -1}); err == nil {
		t.Error("negative column width should fail")
	}

	cols, err := NewColumns(ColumnsConfig{Count: 2, ColumnWidth: 100})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cols.Column(5); err == nil {
		t.Error("out-of-range column index should fail")
	}
}

// TestPosterScenario walks a complete composition: a padded artboard, a
// columns layout pinned to the artboard's content corner, and circles
// stacked inside the first column.
func TestPosterScenario(t *testing.T) {
	board, err := boxmodel.New(boxmodel.Uniform(40), geom.Insets{}, geom.Insets{})
	if err != nil {
		t.Fatal(err)
	}
	a := NewArtboard(840, 620, WithBoxModel(board))

	cols, err := NewColumns(ColumnsConfig{
		ID:          "cols",
		Count:       2,
		ColumnWidth: 250,
		Height:      500,
		Gutter:      30,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Add(cols); err != nil {
		t.Fatal(err)
	}
	err = cols.Position(PositionSpec{
		Self:   geom.AnchorTopLeft,
		Target: AnchorOf(a.Root(), geom.AnchorTopLeft),
		Ref:    RefContentBox,
	})
	if err != nil {
		t.Fatal(err)
	}

	// The artboard's padding pushes its content box to (40, 40).
	cb, err := cols.BorderBox()
	if err != nil {
		t.Fatal(err)
	}
	if cb.X != 40 || cb.Y != 40 {
		t.Errorf("columns at (%v, %v), want (40, 40)", cb.X, cb.Y)
	}

	first, err := cols.Column(0)
	if err != nil {
		t.Fatal(err)
	}
	circleA := leaf("circle-a", 120, 120) // radius 60
	circleB := leaf("circle-b", 120, 120)
	if err := first.Add(circleA, circleB); err != nil {
		t.Fatal(err)
	}

	colContent, err := first.ContentBox()
	if err != nil {
		t.Fatal(err)
	}
	if colContent.Height < 240 {
		t.Errorf("column content height = %v, want at least 240", colContent.Height)
	}

	// Stacked with zero spacing, the centers sit one diameter apart.
	centerA, err := circleA.Anchor(geom.AnchorCenter)
	if err != nil {
		t.Fatal(err)
	}
	centerB, err := circleB.Anchor(geom.AnchorCenter)
	if err != nil {
		t.Fatal(err)
	}
	if centerB.Y != centerA.Y+120 {
		t.Errorf("second circle center.y = %v, want %v", centerB.Y, centerA.Y+120)
	}
	if centerB.X != centerA.X {
		t.Errorf("stacked circles should share center.x: %v vs %v", centerA.X, centerB.X)
	}
}
