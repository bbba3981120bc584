package shapes

import (
	"strings"
	"testing"

	"github.com/grzegorzj/easel/pkg/geom"
)

func TestIntrinsicSizes(t *testing.T) {
	cases := []struct {
		name  string
		shape Shape
		want  geom.Size
	}{
		{"circle", Circle{Radius: 60}, geom.Size{Width: 120, Height: 120}},
		{"rectangle", Rectangle{Width: 80, Height: 30}, geom.Size{Width: 80, Height: 30}},
		{"triangle", Triangle{Width: 50, Height: 40}, geom.Size{Width: 50, Height: 40}},
		{"polygon", Polygon{Sides: 6, Radius: 25}, geom.Size{Width: 50, Height: 50}},
	}
	for _, tc := range cases {
		if got := tc.shape.IntrinsicSize(); got != tc.want {
			t.Errorf("%s intrinsic size = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCirclePath(t *testing.T) {
	p := Circle{Radius: 50}.Path(geom.NewRect(10, 20, 100, 100))
	if !strings.HasPrefix(p, "M 10 70") {
		t.Errorf("circle path should start at the left edge midpoint: %q", p)
	}
	if !strings.HasSuffix(p, "Z") {
		t.Errorf("circle path should close: %q", p)
	}
	if !strings.Contains(p, "A 50 50") {
		t.Errorf("circle path should carry the radii: %q", p)
	}
}

func TestRectanglePath(t *testing.T) {
	p := Rectangle{Width: 80, Height: 30}.Path(geom.NewRect(0, 0, 80, 30))
	if p != "M 0 0 H 80 V 30 H 0 Z" {
		t.Errorf("rectangle path = %q", p)
	}

	// A corner radius larger than half the box clamps instead of folding
	// the outline over itself.
	rounded := Rectangle{Width: 80, Height: 30, CornerRadius: 100}.Path(geom.NewRect(0, 0, 80, 30))
	if !strings.Contains(rounded, "A 15 15") {
		t.Errorf("oversized corner radius should clamp to 15: %q", rounded)
	}
}

func TestTrianglePath(t *testing.T) {
	p := Triangle{Width: 40, Height: 40}.Path(geom.NewRect(0, 0, 40, 40))
	if p != "M 20 0 L 40 40 L 0 40 Z" {
		t.Errorf("triangle path = %q", p)
	}
}

func TestPolygonPath(t *testing.T) {
	p := Polygon{Sides: 4, Radius: 10}.Path(geom.NewRect(0, 0, 20, 20))
	// Four vertices, first at the top.
	if !strings.HasPrefix(p, "M 10 0") {
		t.Errorf("polygon should start at the top vertex: %q", p)
	}
	if got := strings.Count(p, "L "); got != 3 {
		t.Errorf("4-gon should have 3 line segments, got %d: %q", got, p)
	}

	// Degenerate side counts fall back to a triangle.
	tri := Polygon{Sides: 1, Radius: 10}.Path(geom.NewRect(0, 0, 20, 20))
	if got := strings.Count(tri, "L "); got != 2 {
		t.Errorf("degenerate polygon should draw a triangle, got %d segments", got)
	}
}

func TestPathsScaleWithBox(t *testing.T) {
	// The layout engine may hand a shape a box that differs from its
	// intrinsic size; the path must follow the box.
	small := Circle{Radius: 10}.Path(geom.NewRect(0, 0, 200, 100))
	if !strings.Contains(small, "A 100 50") {
		t.Errorf("circle should stretch to its box: %q", small)
	}
}
