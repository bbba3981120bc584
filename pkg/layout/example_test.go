package layout_test

import (
	"fmt"

	"github.com/grzegorzj/easel/pkg/boxmodel"
	"github.com/grzegorzj/easel/pkg/geom"
	"github.com/grzegorzj/easel/pkg/layout"
)

type circle struct {
	radius float64
}

func (c circle) IntrinsicSize() geom.Size {
	return geom.Size{Width: 2 * c.radius, Height: 2 * c.radius}
}

func ExampleArtboard() {
	board, _ := boxmodel.New(boxmodel.Uniform(40), geom.Insets{}, geom.Insets{})
	a := layout.NewArtboard(840, 620, layout.WithBoxModel(board))
	b := a.Builder()

	cols, _ := b.Columns(layout.ColumnsConfig{
		ID:          "cols",
		Count:       2,
		ColumnWidth: 250,
		Height:      500,
		Gutter:      30,
	})
	_ = cols.Position(layout.PositionSpec{
		Self:   geom.AnchorTopLeft,
		Target: layout.AnchorOf(a.Root(), geom.AnchorTopLeft),
		Ref:    layout.RefContentBox,
	})

	first, _ := cols.Column(0)
	dot, _ := b.In(first).Leaf(layout.LeafConfig{
		ElementConfig: layout.ElementConfig{ID: "dot"},
		Content:       circle{radius: 60},
	})

	box, _ := cols.BorderBox()
	center, _ := dot.Anchor(geom.AnchorCenter)
	fmt.Printf("columns at (%.0f, %.0f)\n", box.X, box.Y)
	fmt.Printf("dot center (%.0f, %.0f)\n", center.X, center.Y)
	// Output:
	// columns at (40, 40)
	// dot center (100, 100)
}

func ExampleElement_Position() {
	a := layout.NewArtboard(400, 300)
	b := a.Builder()

	card, _ := b.Leaf(layout.LeafConfig{
		ElementConfig: layout.ElementConfig{
			ID: "card", Width: layout.Fixed(120), Height: layout.Fixed(80),
		},
	})
	badge, _ := b.Leaf(layout.LeafConfig{
		ElementConfig: layout.ElementConfig{
			ID: "badge", Width: layout.Fixed(24), Height: layout.Fixed(24),
		},
	})

	// Pin the badge's center on the card's top-right corner.
	_ = badge.Position(layout.PositionSpec{
		Self:   geom.AnchorCenter,
		Target: layout.AnchorOf(card, geom.AnchorTopRight),
	})

	box, _ := badge.BorderBox()
	fmt.Printf("badge at (%.0f, %.0f)\n", box.X, box.Y)
	// Output:
	// badge at (108, -12)
}
